package components

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// FragmentShape is the procedural family a fragment outline comes from.
type FragmentShape int

const (
	ShapeTriangle FragmentShape = iota
	ShapeStrip
	ShapeMulti
	shapeCount
)

// Fragment is one broken piece of a platform. Poly and Hairlines are
// relative to Pos and rotated by Angle when drawn.
type Fragment struct {
	Shape     FragmentShape
	Poly      []dmath.Vec2
	Hairlines [][2]dmath.Vec2
	Pos       dmath.Vec2
	Vel       dmath.Vec2
	Angle     float64
	Spin      float64
	Life      float64
	MaxLife   float64
}

// Update integrates gravity, drag (velocity fraction kept per second) and spin.
func (f *Fragment) Update(dtMs, gravity, drag float64) {
	dt := dtMs / 1000
	f.Vel.Y += gravity * dt
	keep := math.Pow(drag, dt)
	f.Vel.X *= keep
	f.Vel.Y *= keep
	f.Pos.X += f.Vel.X * dt
	f.Pos.Y += f.Vel.Y * dt
	f.Angle += f.Spin * dt
	f.Life += dtMs
}

func (f *Fragment) Expired() bool {
	return f.Life >= f.MaxLife
}

// Alpha fades linearly with elapsed life.
func (f *Fragment) Alpha() float64 {
	if f.MaxLife <= 0 {
		return 0
	}
	return gamemath.Clamp(1-f.Life/f.MaxLife, 0, 1)
}

// WorldPoly returns the outline rotated and translated into world space.
func (f *Fragment) WorldPoly() []dmath.Vec2 {
	out := make([]dmath.Vec2, len(f.Poly))
	for i, v := range f.Poly {
		x, y := gamemath.Rotate(v.X, v.Y, f.Angle)
		out[i] = dmath.Vec2{X: f.Pos.X + x, Y: f.Pos.Y + y}
	}
	return out
}

// buildFragments slices the slab into vertical pieces with jagged seams and
// gives every piece an outline from a random shape family.
func buildFragments(rng *rand.Rand, x, y, w, h, impactX float64) []Fragment {
	n := gamemath.RandInt(rng, cfg.Platform.FragmentsMin, cfg.Platform.FragmentsMax)

	cuts := make([]float64, n+1)
	seams := make([]float64, n+1)
	slot := w / float64(n)
	for i := 1; i < n; i++ {
		cuts[i] = slot*float64(i) + gamemath.RandRange(rng, -0.3, 0.3)*slot
		seams[i] = gamemath.RandRange(rng, -0.35, 0.35) * slot
	}
	cuts[n] = w

	frags := make([]Fragment, 0, n)
	for i := 0; i < n; i++ {
		x0, x1 := cuts[i], cuts[i+1]
		shape := FragmentShape(rng.Intn(int(shapeCount)))
		poly := fragmentOutline(rng, shape, x0, x1, x0+seams[i], x1+seams[i+1], h)

		cx, cy := centroid(poly)
		for j := range poly {
			poly[j].X -= cx
			poly[j].Y -= cy
		}

		dir := 1.0
		if cx < impactX {
			dir = -1
		}
		frags = append(frags, Fragment{
			Shape:     shape,
			Poly:      poly,
			Hairlines: hairlines(rng, x1-x0, h),
			Pos:       dmath.Vec2{X: x + cx, Y: y + cy},
			Vel: dmath.Vec2{
				X: dir * gamemath.RandRange(rng, 40, 140),
				Y: -gamemath.RandRange(rng, 60, 220),
			},
			Spin:    gamemath.RandRange(rng, -4, 4),
			MaxLife: gamemath.RandRange(rng, cfg.Platform.FragmentLifeMinMs, cfg.Platform.FragmentLifeMaxMs),
		})
	}
	return frags
}

// fragmentOutline builds the polygon of one slot [x0, x1]. m0 and m1 are the
// seam x positions at mid height.
func fragmentOutline(rng *rand.Rand, shape FragmentShape, x0, x1, m0, m1, h float64) []dmath.Vec2 {
	switch shape {
	case ShapeTriangle:
		apex := gamemath.Lerp(x0, x1, gamemath.RandRange(rng, 0.2, 0.8))
		if rng.Intn(2) == 0 {
			return []dmath.Vec2{{X: x0, Y: 0}, {X: x1, Y: 0}, {X: apex, Y: h}}
		}
		return []dmath.Vec2{{X: x0, Y: h}, {X: apex, Y: 0}, {X: x1, Y: h}}
	case ShapeStrip:
		return []dmath.Vec2{
			{X: x0, Y: 0},
			{X: x1, Y: 0},
			{X: m1, Y: h / 2},
			{X: x1, Y: h},
			{X: x0, Y: h},
			{X: m0, Y: h / 2},
		}
	default:
		k := gamemath.RandInt(rng, 5, 7)
		cx, cy := (x0+x1)/2, h/2
		rx, ry := (x1-x0)/2, h/2
		base := gamemath.RandRange(rng, 0, 2*math.Pi)
		pts := make([]dmath.Vec2, k)
		for i := 0; i < k; i++ {
			a := base + float64(i)*2*math.Pi/float64(k) + gamemath.RandRange(rng, -0.25, 0.25)
			r := gamemath.RandRange(rng, 0.75, 1.05)
			pts[i] = dmath.Vec2{X: cx + math.Cos(a)*rx*r, Y: cy + math.Sin(a)*ry*r}
		}
		return pts
	}
}

// hairlines returns one or two short internal cracks near the piece center.
func hairlines(rng *rand.Rand, w, h float64) [][2]dmath.Vec2 {
	n := gamemath.RandInt(rng, 1, 2)
	out := make([][2]dmath.Vec2, n)
	for i := range out {
		a := dmath.Vec2{X: gamemath.RandRange(rng, -0.3, 0.3) * w, Y: gamemath.RandRange(rng, -0.3, 0.3) * h}
		b := dmath.Vec2{X: a.X + gamemath.RandRange(rng, -0.4, 0.4)*w, Y: a.Y + gamemath.RandRange(rng, -0.4, 0.4)*h}
		out[i] = [2]dmath.Vec2{a, b}
	}
	return out
}

func centroid(pts []dmath.Vec2) (float64, float64) {
	var sx, sy float64
	for _, v := range pts {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(pts))
	return sx / n, sy / n
}
