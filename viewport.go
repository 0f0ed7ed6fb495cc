package devon

// Viewport tracks which part of a Store is on screen and which item is
// selected.
//
// After every transition the selected item is never above the viewport
// (FirstItem <= Selected, and FirstSubline == 0 when they are equal), and
// the last row of the selected item is on screen whenever the item fits in
// Height rows. An item taller than the screen is shown from its first row.
type Viewport struct {
	FirstItem    int
	FirstSubline int
	Selected     int
	Width        int
	Height       int

	store *Store
}

// NewViewport returns a viewport at the top of store with the first item
// selected.
func NewViewport(store *Store, width, height int) Viewport {
	return Viewport{Width: width, Height: height, store: store}
}

// Store returns the items the viewport moves over.
func (v *Viewport) Store() *Store {
	return v.store
}

// FirstOffset returns the global offset of the first visible row.
func (v *Viewport) FirstOffset() int {
	if v.store.Len() == 0 {
		return 0
	}
	return v.store.LineOffset(v.FirstItem, v.FirstSubline)
}

// MoveUp selects the previous item and scrolls up to its first row if it
// starts above the viewport. It reports whether anything changed.
func (v *Viewport) MoveUp() bool {
	if v.Selected == 0 {
		return false
	}
	v.Selected--
	if v.Selected <= v.FirstItem {
		v.FirstItem = v.Selected
		v.FirstSubline = 0
	}
	return true
}

// MoveDown selects the next item and scrolls down one row at a time until
// its last row is visible. It reports whether anything changed. Scrolling
// is not rewound by a later MoveUp.
func (v *Viewport) MoveDown() bool {
	if v.Selected+1 >= v.store.Len() {
		return false
	}
	v.Selected++

	height := max(v.Height, 1)
	last := v.FirstOffset() + height - 1
	want := v.store.LineOffset(v.Selected, v.store.Lines(v.Selected)-1)
	for last < want && v.FirstItem < v.Selected {
		v.FirstSubline++
		if v.FirstSubline >= v.store.Lines(v.FirstItem) {
			v.FirstItem++
			v.FirstSubline = 0
		}
		last++
	}
	return true
}

// Resize records new terminal dimensions. Items are not re-rendered and the
// scroll position is kept.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}
