package gamemath

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports a strict overlap. Boxes that only share an edge do not
// overlap, so a box resolved flush against another stays resolved.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// InsideBand reports whether r lies entirely within the vertical band [top, bottom].
func (r Rect) InsideBand(top, bottom float64) bool {
	return r.Y >= top && r.Y+r.H <= bottom
}

// CircleIntersectsRect tests a circle against a box using the closest point
// of the box to the circle center.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nx := Clamp(cx, r.X, r.X+r.W)
	ny := Clamp(cy, r.Y, r.Y+r.H)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= radius*radius
}
