// core/align/banded.go
package align

// banded is the production engine: two rolling rows, a diagonal band of
// half-width k when a bound is set, and early termination once no remaining
// cell can score within the bound.
type banded struct {
	cfg Config
}

// New creates the banded engine.
func New(cfg Config) Aligner { return &banded{cfg: cfg} }

// SetMaxDistance updates the bound after creation.
func (e *banded) SetMaxDistance(k int) { e.cfg.MaxDistance = k }

func (e *banded) Distance(query, target []uint8) Result {
	n, m := len(query), len(target)
	mode, k := e.cfg.Mode, e.cfg.MaxDistance

	// Length difference alone already exceeds the bound.
	if k >= 0 && mode == Global && abs(n-m) > k {
		return Result{}
	}

	// Cells on a path of cost <= k satisfy |i-j| <= k only when the target
	// start is anchored; Infix rows start from a free row 0, so the band
	// does not apply there (early termination below still does).
	useBand := k >= 0 && !mode.freeTargetStart()

	prev := make([]int, m+1)
	curr := make([]int, m+1)

	for j := 0; j <= m; j++ {
		switch {
		case mode.freeTargetStart():
			prev[j] = 0
		case useBand && j > k:
			prev[j] = inf
		default:
			prev[j] = j
		}
	}

	for i := 1; i <= n; i++ {
		lo, hi := 0, m
		if useBand {
			if lo < i-k {
				lo = i - k
			}
			if hi > i+k {
				hi = i + k
			}
			if lo > hi {
				return Result{}
			}
		}

		rowMin := inf
		if lo == 0 {
			curr[0] = i
			rowMin = i
			lo = 1
		} else {
			curr[lo-1] = inf
		}
		for j := lo; j <= hi; j++ {
			v := prev[j-1]
			if query[i-1] != target[j-1] {
				v++
			}
			if up := prev[j] + 1; up < v {
				v = up
			}
			if left := curr[j-1] + 1; left < v {
				v = left
			}
			curr[j] = v
			if v < rowMin {
				rowMin = v
			}
		}
		if hi < m {
			// keep the cell just right of the band poisoned for the next row
			curr[hi+1] = inf
		}

		// Row minima never decrease under unit costs, so once a whole row
		// is over the bound no later cell can come back under it.
		if k >= 0 && rowMin > k {
			return Result{}
		}

		prev, curr = curr, prev
	}

	last := prev // row n after the final swap
	best := inf
	var ends []int
	if mode.freeTargetEnd() {
		lo, hi := 0, m
		if useBand {
			if lo < n-k {
				lo = n - k
			}
			if hi > n+k {
				hi = n + k
			}
		}
		for j := lo; j <= hi; j++ {
			switch v := last[j]; {
			case v < best:
				best = v
				ends = append(ends[:0], j)
			case v == best && e.cfg.WantLocations:
				ends = append(ends, j)
			}
		}
	} else {
		best = last[m]
		ends = []int{m}
	}

	if best >= inf || (k >= 0 && best > k) {
		return Result{}
	}
	res := Result{Score: best, Found: true, EndLocations: ends}
	if e.cfg.WantStartLocations {
		res.StartLocations = startLocations(query, target, mode, ends)
	}
	return res
}
