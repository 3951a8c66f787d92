package snake

import "github.com/vovakirdan/snake-game/internal/core"

// Direction represents the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset applied to the head when moving in d.
// The y axis grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionForKey maps the vi-style movement keys to headings.
func directionForKey(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyK:
		return DirUp, true
	case core.KeyJ:
		return DirDown, true
	case core.KeyH:
		return DirLeft, true
	case core.KeyL:
		return DirRight, true
	}
	return 0, false
}
