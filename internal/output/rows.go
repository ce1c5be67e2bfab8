// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"aligner-core/align"
)

// Row carries one query's outcome to the writers. Path is nil unless
// reconstruction was requested; PathStart is only meaningful alongside it.
type Row struct {
	QueryID   string
	Found     bool
	Score     int
	Ends      []int
	Starts    []int
	Path      align.Path
	PathStart int
}

func intsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(ss, ",")
}
