// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"aligner-core/align"
	"aligner/internal/version"
)

// Alignment path print formats
const (
	FormatNice     = "NICE"
	FormatCigar    = "CIG_STD"
	FormatCigarExt = "CIG_EXT"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Positional input
	QueriesFile string
	TargetFile  string

	// Alignment parameters
	Mode        string
	NumBest     int // keep N best (smallest-score) queries; 0 = all
	MaxDistance int // discard scores above this; -1 = unbounded

	// Path / location reconstruction
	FindPath      bool
	FindStartLocs bool
	Format        string
	Width         int

	// Engine selection and output
	Simple     bool // naive reference implementation, for testing
	Silent     bool
	Output     string // text | json
	ConfigFile string

	Version bool
}

// NewFlagSet returns a configured FlagSet that reports errors instead of
// exiting.
func NewFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// Usage writes the full help text.
func Usage(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w,
		`aligner: approximate alignment of FASTA queries against a target sequence

Version: %s

Usage:
  aligner [flags] <queries.fasta> <target.fasta>

Flags:
%s`, version.Version, fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Enum-valued options are checked by Validate, which the caller runs after
// any config-file defaults have been applied.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVarP(&opt.Mode, "mode", "m", "NW", "alignment mode: NW | SHW | HW")
	fs.IntVarP(&opt.NumBest, "num-best", "n", 0, "score only the N best (smallest-score) queries; 0 = all")
	fs.IntVarP(&opt.MaxDistance, "max-distance", "k", -1, "discard scores above K; -1 = unbounded")

	fs.BoolVarP(&opt.FindPath, "path", "p", false, "reconstruct and print the alignment path (may significantly slow down the calculation)")
	fs.BoolVarP(&opt.FindStartLocs, "start-locations", "l", false, "also report start locations, one per end location")
	fs.StringVarP(&opt.Format, "format", "f", FormatNice, "path print format: NICE | CIG_STD | CIG_EXT")
	fs.IntVar(&opt.Width, "width", 50, "column width of the NICE alignment block")

	fs.BoolVarP(&opt.Simple, "simple", "t", false, "use the simple reference implementation instead of the banded engine (for testing)")
	fs.BoolVarP(&opt.Silent, "silent", "s", false, "suppress score and alignment output")
	fs.StringVarP(&opt.Output, "output", "o", "text", "result stream format: text | json")
	fs.StringVarP(&opt.ConfigFile, "config", "c", "", "YAML file supplying defaults for unset flags")

	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	args := fs.Args()
	if len(args) != 2 {
		return opt, fmt.Errorf("expected <queries.fasta> <target.fasta>, got %d positional arguments", len(args))
	}
	opt.QueriesFile, opt.TargetFile = args[0], args[1]
	return opt, nil
}

// Validate rejects malformed option values. Run after config-file defaults
// are merged so file-supplied values get the same checks as flags.
func Validate(opt *Options) error {
	if _, err := align.ParseMode(opt.Mode); err != nil {
		return err
	}
	switch opt.Format {
	case FormatNice, FormatCigar, FormatCigarExt:
	default:
		return fmt.Errorf("invalid alignment path format %q (want NICE, CIG_STD or CIG_EXT)", opt.Format)
	}
	if opt.Output != "text" && opt.Output != "json" {
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.NumBest < 0 {
		return errors.New("--num-best must be >= 0")
	}
	if opt.MaxDistance < -1 {
		return errors.New("--max-distance must be >= -1")
	}
	if opt.Width <= 0 {
		return errors.New("--width must be > 0")
	}
	return nil
}
