// internal/output/nice.go
package output

import (
	"fmt"
	"strings"

	"aligner-core/align"
	"aligner-core/alphabet"
)

// RenderNice prints the alignment path as fixed-width blocks, a target row
// over a query row with gaps drawn as underscores and the consumed index
// range of each block on the right:
//
//	T: AAC_GT (3 - 8)
//	Q: AACGGT (0 - 5)
func RenderNice(query, target []uint8, path align.Path, start int, tbl *alphabet.Table, width int) string {
	if len(path) == 0 {
		return ""
	}
	if width <= 0 {
		width = 50
	}

	n := len(path)
	tRow := make([]byte, n)
	qRow := make([]byte, n)
	tPos := make([]int, n) // target index consumed up to and including column x
	qPos := make([]int, n)

	tIdx, qIdx := start-1, -1
	for x, op := range path {
		if op == align.OpInsert {
			tRow[x] = '_'
		} else {
			tIdx++
			tRow[x] = tbl.Symbol(target[tIdx])
		}
		tPos[x] = tIdx
		if op == align.OpDelete {
			qRow[x] = '_'
		} else {
			qIdx++
			qRow[x] = tbl.Symbol(query[qIdx])
		}
		qPos[x] = qIdx
	}

	var b strings.Builder
	for blk := 0; blk < n; blk += width {
		end := blk + width
		if end > n {
			end = n
		}
		fmt.Fprintf(&b, "T: %s (%d - %d)\n", tRow[blk:end], max0(tPos[blk]), tPos[end-1])
		fmt.Fprintf(&b, "Q: %s (%d - %d)\n\n", qRow[blk:end], max0(qPos[blk]), qPos[end-1])
	}
	return b.String()
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
