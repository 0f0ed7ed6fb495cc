package devon

// Store holds the rendered items and a prefix-sum table mapping an item to
// the global offset of its first row.
type Store struct {
	items   []Item
	offsets []int // offsets[i] = sum of len(items[j].Lines) for j < i
	total   int
}

// NewStore concatenates the item groups in argument order.
func NewStore(groups ...[]Item) *Store {
	var n int
	for _, g := range groups {
		n += len(g)
	}

	s := &Store{
		items:   make([]Item, 0, n),
		offsets: make([]int, 0, n),
	}
	for _, g := range groups {
		for _, item := range g {
			s.offsets = append(s.offsets, s.total)
			s.items = append(s.items, item)
			s.total += len(item.Lines)
		}
	}
	return s
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Item returns the i-th item.
func (s *Store) Item(i int) Item {
	return s.items[i]
}

// Lines returns the number of rows in the i-th item.
func (s *Store) Lines(i int) int {
	return len(s.items[i].Lines)
}

// LineOffset returns the global offset of row subline of item i.
func (s *Store) LineOffset(i, subline int) int {
	return s.offsets[i] + subline
}

// LineOffsets returns a copy of the prefix-sum table.
func (s *Store) LineOffsets() []int {
	return append([]int(nil), s.offsets...)
}

// TotalLines returns the number of rows across all items.
func (s *Store) TotalLines() int {
	return s.total
}
