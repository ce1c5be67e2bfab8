// core/align/traceback.go
package align

import "fmt"

// fillTable materializes the full (n+1)x(m+1) table for mode. The banded
// forward pass keeps only two rows, so path reconstruction recomputes the
// table; that cost is opt-in and accepted by the caller.
func fillTable(query, target []uint8, mode Mode) [][]int {
	n, m := len(query), len(target)
	tab := make([][]int, n+1)
	for i := range tab {
		tab[i] = make([]int, m+1)
	}
	for j := 0; j <= m; j++ {
		if mode.freeTargetStart() {
			tab[0][j] = 0
		} else {
			tab[0][j] = j
		}
	}
	for i := 1; i <= n; i++ {
		tab[i][0] = i
		for j := 1; j <= m; j++ {
			v := tab[i-1][j-1]
			if query[i-1] != target[j-1] {
				v++
			}
			if up := tab[i-1][j] + 1; up < v {
				v = up
			}
			if left := tab[i][j-1] + 1; left < v {
				v = left
			}
			tab[i][j] = v
		}
	}
	return tab
}

// BuildPath reconstructs one optimal path ending at the given (half-open) end
// location and returns it with the corresponding start location. Ties break
// deterministically: diagonal over insert over delete, so repeated runs on
// identical input reproduce byte-for-byte.
//
// The built path is replay-verified against the table; a mismatch means the
// recurrence and the walk disagree, which is an implementation bug, so it
// panics rather than returning a quietly wrong alignment.
func BuildPath(query, target []uint8, mode Mode, end int) (Path, int) {
	n := len(query)
	if end < 0 || end > len(target) {
		panic(fmt.Sprintf("align: end location %d outside target of length %d", end, len(target)))
	}
	tab := fillTable(query, target, mode)

	rev := make(Path, 0, n+abs(n-end))
	i, j := n, end
	for {
		if i == 0 {
			if mode.freeTargetStart() || j == 0 {
				break
			}
			rev = append(rev, OpDelete)
			j--
			continue
		}
		switch {
		case j > 0 && tab[i][j] == tab[i-1][j-1]+sub(query[i-1], target[j-1]):
			rev = append(rev, OpAlign)
			i--
			j--
		case tab[i][j] == tab[i-1][j]+1:
			rev = append(rev, OpInsert)
			i--
		default:
			rev = append(rev, OpDelete)
			j--
		}
	}
	start := j

	path := make(Path, len(rev))
	for x := range rev {
		path[x] = rev[len(rev)-1-x]
	}

	score, gotEnd, err := path.Replay(query, target, start)
	if err != nil || score != tab[n][end] || gotEnd != end {
		panic(fmt.Sprintf("align: traceback replay mismatch (score %d vs %d, end %d vs %d, err %v)",
			score, tab[n][end], gotEnd, end, err))
	}
	return path, start
}

func sub(a, b uint8) int {
	if a == b {
		return 0
	}
	return 1
}
