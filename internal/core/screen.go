package core

// Screen is an in-memory colour raster. It implements Surface, which lets
// platforms without a pixel framebuffer (and tests) draw the game into it
// and convert the cells afterwards.
type Screen struct {
	width  int
	height int
	cells  [][]Color
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a Rect at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills area, in screen cells, with c.
func (s *Screen) Clear(c Color, area Rect) {
	s.FillRect(area, c, Identity)
}

// FillRect fills r, mapped through t, with c. Out-of-bounds cells are skipped.
func (s *Screen) FillRect(r Rect, c Color, t Transform) {
	dr := t.Apply(r).Intersect(s.Bounds())
	if dr.Empty() {
		return
	}
	for y := dr.Y; y < dr.Bottom(); y++ {
		for x := dr.X; x < dr.Right(); x++ {
			s.cells[y][x] = c
		}
	}
}

// Get returns the colour at the given position.
// Returns the zero Color for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}
	}
	return s.cells[y][x]
}

// Count returns how many cells hold exactly c.
func (s *Screen) Count(c Color) int {
	n := 0
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}
