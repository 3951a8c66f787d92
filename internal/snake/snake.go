// Package snake holds the snake's body and heading and the rules that move,
// steer and draw it.
package snake

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/snake-game/internal/core"
)

// Segment is one grid cell occupied by the snake, in unscaled grid units.
type Segment struct {
	X, Y int
}

// Snake is an ordered run of segments, head at the front, plus a heading.
// The body is never empty.
type Snake struct {
	body  deque.Deque[Segment]
	dir   Direction
	color core.Color
}

// New creates the starting snake: segments (0,0) and (0,1), heading right,
// drawn in color.
func New(color core.Color) *Snake {
	s := &Snake{dir: DirRight, color: color}
	s.body.PushBack(Segment{X: 0, Y: 0})
	s.body.PushBack(Segment{X: 0, Y: 1})
	return s
}

// Update advances the snake one cell along its heading: a new head is pushed
// at the front and the tail is dropped, so the length never changes.
// It panics if the body is empty, which no exported operation can cause.
func (s *Snake) Update() {
	if s.body.Len() == 0 {
		panic("snake: update on empty body")
	}

	head := s.body.Front()
	dx, dy := s.dir.Delta()
	s.body.PushFront(Segment{X: head.X + dx, Y: head.Y + dy})
	s.body.PopBack()
}

// Pressed steers the snake from a key press: K up, J down, H left, L right.
// Other keys are ignored, and so is a turn straight back onto the body.
// The new heading is applied on the next Update.
func (s *Snake) Pressed(k core.Key) {
	dir, ok := directionForKey(k)
	if !ok || dir == s.dir.Opposite() {
		return
	}
	s.dir = dir
}

// Render draws one CellSize square per segment onto surface.
func (s *Snake) Render(surface core.Surface, vp core.Viewport) {
	t := vp.Transform()
	for i := range s.body.Len() {
		seg := s.body.At(i)
		sq := core.Square(seg.X*core.CellSize, seg.Y*core.CellSize, core.CellSize)
		surface.FillRect(sq, s.color, t)
	}
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Head returns the front segment.
func (s *Snake) Head() Segment {
	return s.body.Front()
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Segment {
	out := make([]Segment, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}
