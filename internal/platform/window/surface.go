package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-game/internal/core"
)

// imageSurface draws onto the screen image of the current frame.
type imageSurface struct {
	img *ebiten.Image
}

// Clear fills area of the image with c.
func (s *imageSurface) Clear(c core.Color, area core.Rect) {
	s.fill(area, c)
}

// FillRect fills the transformed rect, clipped to the image bounds.
func (s *imageSurface) FillRect(r core.Rect, c core.Color, t core.Transform) {
	s.fill(t.Apply(r), c)
}

func (s *imageSurface) fill(r core.Rect, c core.Color) {
	if s.img == nil {
		return
	}
	area := clip(r, s.img.Bounds())
	if area.Empty() {
		return
	}
	s.img.SubImage(area).(*ebiten.Image).Fill(c)
}

// clip converts a device-space rect to an image rectangle inside b.
func clip(r core.Rect, b image.Rectangle) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(b)
}
