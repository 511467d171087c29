// internal/component/rect.go
package component

// Rect is an axis-aligned bounding box in arena pixels.
// Touching edges count as overlap: every collision in the game uses Intersects.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center, rounded down like the sprite math.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// Intersects reports whether r and o overlap, edges inclusive.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.Right() && o.X <= r.Right() &&
		r.Y <= o.Bottom() && o.Y <= r.Bottom()
}
