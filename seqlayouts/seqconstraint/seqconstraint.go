// Package seqconstraint positions items along one axis.
//
// Items are laid out in index order. Each item has a dimension and may require a minimum
// distance between its center and the center of an earlier item (or the origin). Compute does a
// single forward sweep and only ever pushes items further along the axis.
package seqconstraint

type Options struct {
	// ItemMargin is the gap kept between the edges of neighboring items.
	ItemMargin float64
}

type Item struct {
	Start     float64 `json:"start"`
	Center    float64 `json:"center"`
	Dimension float64 `json:"dimension"`
}

type Computed struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// origin is the pseudo index used by ApplyBefore for the first item.
const origin = -1

type constraintItem struct {
	dim float64
	// pre maps the index of an earlier item to the minimum distance between centers.
	pre map[int]float64
}

// IndexedLayout identifies items by their dense index.
// Passing an index outside [0, n) panics.
type IndexedLayout struct {
	items  []constraintItem
	margin float64
}

func NewIndexed(n int, opts Options) *IndexedLayout {
	items := make([]constraintItem, n)
	for i := range items {
		items[i].pre = make(map[int]float64)
	}
	return &IndexedLayout{
		items:  items,
		margin: opts.ItemMargin,
	}
}

func (l *IndexedLayout) Len() int {
	return len(l.items)
}

// ApplyDimension keeps the largest dimension ever applied for id.
func (l *IndexedLayout) ApplyDimension(id int, dim float64) {
	it := &l.items[id]
	if dim > it.dim {
		it.dim = dim
	}
}

// ApplyBefore requires space between the center of id and the center of the previous item, or
// the origin for the first item.
func (l *IndexedLayout) ApplyBefore(id int, space float64) {
	l.applyPre(id, id-1, space)
}

// ApplyBetween requires space between the centers of a and b. Argument order does not matter.
func (l *IndexedLayout) ApplyBetween(a, b int, space float64) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	l.applyPre(b, a, space)
}

func (l *IndexedLayout) applyPre(id, other int, space float64) {
	it := &l.items[id]
	if space > it.pre[other] {
		it.pre[other] = space
	}
}

func (l *IndexedLayout) Compute() Computed {
	computed := make([]Item, 0, len(l.items))

	offset := 0.
	for i, it := range l.items {
		if i > 0 {
			offset += computed[i-1].Dimension/2 + l.margin
		}
		offset += it.dim / 2
		for other, between := range it.pre {
			otherCenter := 0.
			if other != origin {
				otherCenter = computed[other].Center
			}
			if otherCenter+between > offset {
				offset = otherCenter + between
			}
		}
		computed = append(computed, Item{
			Start:     offset - it.dim/2,
			Center:    offset,
			Dimension: it.dim,
		})
	}

	total := 0.
	if len(computed) > 0 {
		last := computed[len(computed)-1]
		total = last.Start + last.Dimension
	}
	return Computed{
		Items: computed,
		Total: total,
	}
}
