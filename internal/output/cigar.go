// internal/output/cigar.go
package output

import (
	"fmt"
	"strings"

	"aligner-core/align"
)

// Cigar run-length-encodes the path. Standard form uses M/I/D; the extended
// form splits M into = (match) and X (mismatch) by consulting the sequences.
// I consumes query against a target gap, D consumes target against a query
// gap, matching the usual read-vs-reference convention.
func Cigar(path align.Path, query, target []uint8, start int, extended bool) string {
	if len(path) == 0 {
		return ""
	}

	sym := func(op align.Op, qi, tj int) byte {
		switch op {
		case align.OpAlign:
			if !extended {
				return 'M'
			}
			if query[qi] == target[tj] {
				return '='
			}
			return 'X'
		case align.OpInsert:
			return 'I'
		default:
			return 'D'
		}
	}

	var b strings.Builder
	qi, tj := 0, start
	last := byte(0)
	run := 0
	flush := func() {
		if run > 0 {
			fmt.Fprintf(&b, "%d%c", run, last)
		}
	}
	for _, op := range path {
		c := sym(op, qi, tj)
		if c != last {
			flush()
			last, run = c, 0
		}
		run++
		switch op {
		case align.OpAlign:
			qi++
			tj++
		case align.OpInsert:
			qi++
		case align.OpDelete:
			tj++
		}
	}
	flush()
	return b.String()
}
