// core/align/traceback_test.go
package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aligner-core/alphabet"
)

func TestGlobalPathDiagonalPreference(t *testing.T) {
	tbl := alphabet.New()
	q := enc(t, tbl, "ACGT")
	tgt := enc(t, tbl, "ACGGT")

	path, start := BuildPath(q, tgt, Global, len(tgt))
	assert.Equal(t, 0, start)
	// one optimal path with the diagonal-first tie break: the gap lands on
	// the first G of the GG run
	assert.Equal(t, Path{OpAlign, OpAlign, OpDelete, OpAlign, OpAlign}, path)

	score, end, err := path.Replay(q, tgt, start)
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, len(tgt), end)
}

func TestPathIsDeterministic(t *testing.T) {
	tbl := alphabet.New()
	q := enc(t, tbl, "GATTACA")
	tgt := enc(t, tbl, "GCATGCU")

	first, s1 := BuildPath(q, tgt, Global, len(tgt))
	for i := 0; i < 10; i++ {
		again, s2 := BuildPath(q, tgt, Global, len(tgt))
		assert.Equal(t, first, again)
		assert.Equal(t, s1, s2)
	}
}

func TestInfixPathStopsAtFreeBoundary(t *testing.T) {
	tbl := alphabet.New()
	q := enc(t, tbl, "GGT")
	tgt := enc(t, tbl, "AACGGTAA")

	path, start := BuildPath(q, tgt, Infix, 6)
	assert.Equal(t, 3, start)
	assert.Equal(t, Path{OpAlign, OpAlign, OpAlign}, path)
}

func TestPrefixPathAnchoredAtTargetStart(t *testing.T) {
	tbl := alphabet.New()
	q := enc(t, tbl, "ACG")
	tgt := enc(t, tbl, "TACGTT")

	res := New(Config{Mode: Prefix, MaxDistance: -1, WantLocations: true}).Distance(q, tgt)
	require.True(t, res.Found)
	require.NotEmpty(t, res.EndLocations)

	path, start := BuildPath(q, tgt, Prefix, res.EndLocations[0])
	assert.Equal(t, 0, start, "prefix alignments are anchored to the target start")

	score, end, err := path.Replay(q, tgt, start)
	require.NoError(t, err)
	assert.Equal(t, res.Score, score)
	assert.Equal(t, res.EndLocations[0], end)
}

// Distinct end locations trace back independently to their own starts.
func TestPerEndLocationStarts(t *testing.T) {
	tbl := alphabet.New()
	q := enc(t, tbl, "TT")
	tgt := enc(t, tbl, "TTATT")

	res := New(Config{Mode: Infix, MaxDistance: -1, WantLocations: true, WantStartLocations: true}).Distance(q, tgt)
	require.True(t, res.Found)
	require.Equal(t, len(res.EndLocations), len(res.StartLocations))
	for i, end := range res.EndLocations {
		_, start := BuildPath(q, tgt, Infix, end)
		assert.Equal(t, res.StartLocations[i], start)
		assert.LessOrEqual(t, start, end)
	}
	assert.Equal(t, []int{2, 5}, res.EndLocations)
	assert.Equal(t, []int{0, 3}, res.StartLocations)
}

func TestReplayRejectsBrokenPaths(t *testing.T) {
	tbl := alphabet.New()
	q := enc(t, tbl, "AC")
	tgt := enc(t, tbl, "AC")

	// leaves the query unconsumed
	_, _, err := Path{OpAlign}.Replay(q, tgt, 0)
	assert.Error(t, err)

	// runs past the target
	_, _, err = Path{OpAlign, OpAlign, OpDelete}.Replay(q, tgt, 0)
	assert.Error(t, err)
}
