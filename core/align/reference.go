// core/align/reference.go
package align

// reference is the intentionally naive oracle: full O(n*m) table, no band,
// no early termination. It honors the bound only by discarding the final
// score, so it can never prune its way into a wrong answer.
type reference struct {
	cfg Config
}

// NewReference creates the naive engine used to cross-check the banded one.
func NewReference(cfg Config) Aligner { return &reference{cfg: cfg} }

// SetMaxDistance updates the bound after creation.
func (e *reference) SetMaxDistance(k int) { e.cfg.MaxDistance = k }

func (e *reference) Distance(query, target []uint8) Result {
	n, m := len(query), len(target)
	mode := e.cfg.Mode
	tab := fillTable(query, target, mode)

	best := inf
	var ends []int
	if mode.freeTargetEnd() {
		for j := 0; j <= m; j++ {
			switch v := tab[n][j]; {
			case v < best:
				best = v
				ends = append(ends[:0], j)
			case v == best && e.cfg.WantLocations:
				ends = append(ends, j)
			}
		}
	} else {
		best = tab[n][m]
		ends = []int{m}
	}

	if k := e.cfg.MaxDistance; k >= 0 && best > k {
		return Result{}
	}
	res := Result{Score: best, Found: true, EndLocations: ends}
	if e.cfg.WantStartLocations {
		res.StartLocations = startLocations(query, target, mode, ends)
	}
	return res
}
