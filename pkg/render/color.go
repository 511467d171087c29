// pkg/render/color.go
package render

import "image/color"

// Palette holds every color a frontend needs to draw a frame.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Player     color.RGBA
	Bullet     color.RGBA
	Laser      color.RGBA
	Enemy      color.RGBA
	Comb       color.RGBA
	Eye        color.RGBA
	Beak       color.RGBA
	Egg        color.RGBA
	Mana       color.RGBA
	BarBack    color.RGBA
	BarFill    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FillWidth returns how many of width pixels a bar shows for value out of max,
// clamped to [0, width].
func FillWidth(width, value, max int) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	w := width * value / max
	if w > width {
		return width
	}
	return w
}
