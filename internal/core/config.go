package core

// Fixed window and grid parameters. The grid is not configurable.
const (
	WindowWidth  = 400 // Window width in logical units
	WindowHeight = 400 // Window height in logical units
	CellSize     = 20  // Side of one grid cell in logical units
)

// RuntimeConfig contains configuration passed to platforms at startup.
type RuntimeConfig struct {
	Title            string // Window title
	Width            int    // Logical width of the play area
	Height           int    // Logical height of the play area
	UpdatesPerSecond int    // Logical updates per second, independent of rendering
	Background       Color  // Colour the viewport is cleared to on each render
	SnakeColor       Color  // Colour of snake segments
}

// DefaultConfig returns the RuntimeConfig the game ships with.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:            "Snake Game",
		Width:            WindowWidth,
		Height:           WindowHeight,
		UpdatesPerSecond: 8,
		Background:       ColorGreen,
		SnakeColor:       ColorRed,
	}
}
