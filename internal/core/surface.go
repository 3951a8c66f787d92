package core

// Surface is the drawing target handed to the game by a platform.
// Only two primitives are needed to draw the game.
type Surface interface {
	// Clear fills area, given in device units, with c.
	// Parts falling outside the target are clipped.
	Clear(c Color, area Rect)

	// FillRect fills r, mapped through t, with c.
	// Parts falling outside the target are clipped.
	FillRect(r Rect, c Color, t Transform)
}
