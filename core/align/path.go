// core/align/path.go
package align

import "fmt"

// Op is a single alignment step.
type Op uint8

const (
	// OpAlign consumes one symbol of both sequences (match or mismatch).
	OpAlign Op = iota
	// OpInsert consumes one query symbol against a gap in the target.
	OpInsert
	// OpDelete consumes one target symbol against a gap in the query.
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpAlign:
		return "M"
	case OpInsert:
		return "I"
	case OpDelete:
		return "D"
	}
	return "?"
}

// Path is an ordered sequence of edit operations covering the full aligned
// region. Replaying it from its start position reproduces the recorded score
// and end position.
type Path []Op

// Replay walks p forward from the given target start position and returns the
// score it accrues and the target position it ends on. It errors if the path
// runs past either sequence or leaves the query unconsumed.
func (p Path) Replay(query, target []uint8, start int) (score, end int, err error) {
	qi, tj := 0, start
	for _, op := range p {
		switch op {
		case OpAlign:
			if qi >= len(query) || tj >= len(target) {
				return 0, 0, fmt.Errorf("path overruns sequences at q=%d t=%d", qi, tj)
			}
			if query[qi] != target[tj] {
				score++
			}
			qi++
			tj++
		case OpInsert:
			if qi >= len(query) {
				return 0, 0, fmt.Errorf("path overruns query at q=%d", qi)
			}
			score++
			qi++
		case OpDelete:
			if tj >= len(target) {
				return 0, 0, fmt.Errorf("path overruns target at t=%d", tj)
			}
			score++
			tj++
		default:
			return 0, 0, fmt.Errorf("unknown op %d", op)
		}
	}
	if qi != len(query) {
		return 0, 0, fmt.Errorf("path consumes %d of %d query symbols", qi, len(query))
	}
	return score, tj, nil
}
