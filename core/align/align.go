// core/align/align.go
package align

// Config holds the per-run alignment parameters.
type Config struct {
	Mode Mode
	// MaxDistance discards scores above it and lets the banded engine prune;
	// negative means unbounded.
	MaxDistance int
	// WantLocations keeps every tying end location instead of just the first.
	WantLocations bool
	// WantStartLocations pairs a start location with every reported end.
	WantStartLocations bool
}

// Result is the outcome of aligning one query against the target.
//
// Scores count unit-cost edits (Go int, at least 32 bits — ample for any
// input the tool accepts). End locations are half-open: the index just past
// the last aligned target symbol. Start locations are 0-based inclusive and
// paired 1:1 with EndLocations when requested.
//
// Found == false means the distance exceeds the configured bound. That is a
// valid outcome, not an error: the query is non-matching at this stringency.
type Result struct {
	Score          int
	Found          bool
	EndLocations   []int
	StartLocations []int
}

// Aligner computes the edit distance of one query against a target. The
// banded engine (New) and the naive reference engine (NewReference) implement
// the same contract; the reference exists as a correctness oracle.
//
// SetMaxDistance tightens (or lifts) the bound between queries, which is how
// the best-subset selector feeds back into the loop.
type Aligner interface {
	Distance(query, target []uint8) Result
	SetMaxDistance(k int)
}

const inf = int(1) << 30

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// startLocations derives the start paired with each end location by tracing
// one optimal path back from it. Ends trace independently: different ends may
// resolve to different starts.
func startLocations(query, target []uint8, mode Mode, ends []int) []int {
	out := make([]int, len(ends))
	for i, e := range ends {
		_, out[i] = BuildPath(query, target, mode, e)
	}
	return out
}
