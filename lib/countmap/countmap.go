// Package countmap stores a non-negative count per key.
package countmap

import "fmt"

// CountMap is not safe for concurrent use.
type CountMap[K comparable] struct {
	counts map[K]int
}

func New[K comparable]() *CountMap[K] {
	return &CountMap[K]{
		counts: make(map[K]int),
	}
}

// Get returns the count for k, 0 if k was never incremented.
func (cm *CountMap[K]) Get(k K) int {
	return cm.counts[k]
}

func (cm *CountMap[K]) IncrementAndGet(k K) int {
	cm.counts[k]++
	return cm.counts[k]
}

// Decrement panics if the count for k is already 0. An unmatched decrement means the
// caller's bookkeeping is broken, there is nothing to recover.
func (cm *CountMap[K]) Decrement(k K) {
	c := cm.counts[k]
	if c <= 0 {
		panic(fmt.Sprintf("countmap: unexpected decrement of %v with count=0", k))
	}
	if c == 1 {
		delete(cm.counts, k)
		return
	}
	cm.counts[k] = c - 1
}
