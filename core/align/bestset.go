// core/align/bestset.go
package align

import (
	"container/heap"
	"sort"
)

// BestSet keeps the N smallest scores observed so far and, once N are held,
// exposes the worst of them as a bound for queries not yet processed. N == 0
// keeps everything and never bounds. It is the only cross-query mutable state
// in the engine and assumes sequential access.
type BestSet struct {
	capacity int
	h        maxHeap
}

// NewBestSet creates a selector with the given capacity.
func NewBestSet(n int) *BestSet { return &BestSet{capacity: n} }

// Observe records one query's score. A score equal to the current worst held
// score is just as good as what we hold, so nothing is evicted for it.
func (s *BestSet) Observe(score int) {
	if s.capacity <= 0 {
		return
	}
	if s.h.Len() < s.capacity {
		heap.Push(&s.h, score)
		return
	}
	if score < s.h[0] {
		s.h[0] = score
		heap.Fix(&s.h, 0)
	}
}

// Bound returns the effective bound for subsequent queries: the worst held
// score once the set is full, -1 (unbounded) until then.
func (s *BestSet) Bound() int {
	if s.capacity <= 0 || s.h.Len() < s.capacity {
		return -1
	}
	return s.h[0]
}

// Held returns the held scores in ascending order.
func (s *BestSet) Held() []int {
	out := make([]int, len(s.h))
	copy(out, s.h)
	sort.Ints(out)
	return out
}

// EffectiveBound combines a user-supplied bound with a selector bound; the
// tighter non-negative one wins, -1 meaning unbounded.
func EffectiveBound(userK, setBound int) int {
	switch {
	case userK < 0:
		return setBound
	case setBound < 0:
		return userK
	case setBound < userK:
		return setBound
	}
	return userK
}

type maxHeap []int

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
