// core/align/mode.go
package align

import "fmt"

// Mode selects the alignment semantics, expressed as boundary conditions on
// the dynamic-programming table.
type Mode int

const (
	// Global (NW): both sequences consumed end to end.
	Global Mode = iota
	// Prefix (SHW): query aligned against a prefix of the target; the
	// target's tail is free.
	Prefix
	// Infix (HW): query aligned against any substring of the target; both
	// target ends are free.
	Infix
)

// ParseMode accepts the conventional NW/SHW/HW spellings.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "NW":
		return Global, nil
	case "SHW":
		return Prefix, nil
	case "HW":
		return Infix, nil
	}
	return 0, fmt.Errorf("invalid mode %q (want NW, SHW or HW)", s)
}

func (m Mode) String() string {
	switch m {
	case Global:
		return "NW"
	case Prefix:
		return "SHW"
	case Infix:
		return "HW"
	}
	return "?"
}

// freeTargetStart reports whether row 0 is zero-initialized, i.e. the
// alignment may begin at any target offset.
func (m Mode) freeTargetStart() bool { return m == Infix }

// freeTargetEnd reports whether every cell of the last row is eligible as the
// optimum, i.e. the target may extend past the aligned region.
func (m Mode) freeTargetEnd() bool { return m != Global }
