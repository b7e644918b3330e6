package seqconstraint

import (
	"errors"
	"fmt"
)

var ErrUnknownKey = errors.New("unknown layout key")

// TypedLayout maps arbitrary keys onto an IndexedLayout. Keys are ordered as given to NewTyped.
type TypedLayout[K comparable] struct {
	indexed *IndexedLayout
	keys    []K
	indices map[K]int
}

// NewTyped panics on duplicate keys.
func NewTyped[K comparable](keys []K, opts Options) *TypedLayout[K] {
	indices := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, ok := indices[k]; ok {
			panic(fmt.Sprintf("seqconstraint: duplicate key %v", k))
		}
		indices[k] = i
	}
	return &TypedLayout[K]{
		indexed: NewIndexed(len(keys), opts),
		keys:    append([]K(nil), keys...),
		indices: indices,
	}
}

func (l *TypedLayout[K]) index(k K) (int, error) {
	i, ok := l.indices[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}
	return i, nil
}

func (l *TypedLayout[K]) ApplyDimension(k K, dim float64) error {
	i, err := l.index(k)
	if err != nil {
		return err
	}
	l.indexed.ApplyDimension(i, dim)
	return nil
}

func (l *TypedLayout[K]) ApplyBefore(k K, space float64) error {
	i, err := l.index(k)
	if err != nil {
		return err
	}
	l.indexed.ApplyBefore(i, space)
	return nil
}

func (l *TypedLayout[K]) ApplyBetween(a, b K, space float64) error {
	ia, err := l.index(a)
	if err != nil {
		return err
	}
	ib, err := l.index(b)
	if err != nil {
		return err
	}
	l.indexed.ApplyBetween(ia, ib, space)
	return nil
}

type TypedComputed[K comparable] struct {
	Items map[K]Item
	Total float64
}

// Item returns the computed position of k.
func (c TypedComputed[K]) Item(k K) (Item, error) {
	it, ok := c.Items[k]
	if !ok {
		return Item{}, fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}
	return it, nil
}

func (l *TypedLayout[K]) Compute() TypedComputed[K] {
	c := l.indexed.Compute()
	items := make(map[K]Item, len(c.Items))
	for i, it := range c.Items {
		items[l.keys[i]] = it
	}
	return TypedComputed[K]{
		Items: items,
		Total: c.Total,
	}
}
