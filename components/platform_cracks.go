package components

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Crack is a jagged polyline in platform-local coordinates. Progress is the
// visible fraction of its length.
type Crack struct {
	Points   []dmath.Vec2
	Branches []CrackBranch
	Progress float64
	Speed    float64
}

// CrackBranch forks off its parent at point index From and becomes visible
// once the parent has grown past that point.
type CrackBranch struct {
	From   int
	Points []dmath.Vec2
}

// Visible returns the grown part of the crack.
func (c *Crack) Visible() []dmath.Vec2 {
	return partialPolyline(c.Points, c.Progress)
}

// VisibleBranch returns the grown part of branch i.
func (c *Crack) VisibleBranch(i int) []dmath.Vec2 {
	b := c.Branches[i]
	if len(c.Points) < 2 {
		return nil
	}
	start := float64(b.From) / float64(len(c.Points)-1)
	if c.Progress <= start {
		return nil
	}
	local := (c.Progress - start) / (1 - start)
	return partialPolyline(b.Points, local)
}

// Tip is the current growth front.
func (c *Crack) Tip() dmath.Vec2 {
	v := c.Visible()
	if len(v) == 0 {
		if len(c.Points) > 0 {
			return c.Points[0]
		}
		return dmath.Vec2{}
	}
	return v[len(v)-1]
}

// partialPolyline cuts pts at fraction t of its total length.
func partialPolyline(pts []dmath.Vec2, t float64) []dmath.Vec2 {
	if len(pts) < 2 || t <= 0 {
		return nil
	}
	if t >= 1 {
		return pts
	}

	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += segLen(pts[i-1], pts[i])
	}
	want := total * t

	out := []dmath.Vec2{pts[0]}
	acc := 0.0
	for i := 1; i < len(pts); i++ {
		l := segLen(pts[i-1], pts[i])
		if acc+l >= want {
			k := 0.0
			if l > 0 {
				k = (want - acc) / l
			}
			out = append(out, dmath.Vec2{
				X: gamemath.Lerp(pts[i-1].X, pts[i].X, k),
				Y: gamemath.Lerp(pts[i-1].Y, pts[i].Y, k),
			})
			return out
		}
		acc += l
		out = append(out, pts[i])
	}
	return out
}

func segLen(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// generateCracks radiates lines from the impact point, alternating left and
// right so they run along the slab.
func generateCracks(rng *rand.Rand, ix, iy, w, h float64) []Crack {
	n := gamemath.RandInt(rng, cfg.Platform.CrackLinesMin, cfg.Platform.CrackLinesMax)
	cracks := make([]Crack, 0, n)
	start := dmath.Vec2{X: ix, Y: iy}

	for i := 0; i < n; i++ {
		angle := gamemath.RandRange(rng, -0.6, 0.6)
		if i%2 == 1 {
			angle += math.Pi
		}
		segments := gamemath.RandInt(rng, cfg.Platform.CrackSegmentsMin, cfg.Platform.CrackSegmentsMax)
		step := w / 2 / float64(segments) * gamemath.RandRange(rng, 0.6, 1.1)
		pts := crackPath(rng, start, angle, segments, step, w, h)

		c := Crack{
			Points: pts,
			Speed:  gamemath.RandRange(rng, 0.85, 1.25),
		}

		branches := gamemath.RandInt(rng, 0, cfg.Platform.CrackBranchesMax)
		for b := 0; b < branches && len(pts) > 3; b++ {
			from := gamemath.RandInt(rng, 1, len(pts)-2)
			bAngle := angle + gamemath.RandSign(rng)*gamemath.RandRange(rng, 0.4, 0.9)
			c.Branches = append(c.Branches, CrackBranch{
				From:   from,
				Points: crackPath(rng, pts[from], bAngle, gamemath.RandInt(rng, 2, 3), step*0.6, w, h),
			})
		}
		cracks = append(cracks, c)
	}
	return cracks
}

// crackPath walks a jittered heading, bouncing off the slab's top and bottom.
func crackPath(rng *rand.Rand, start dmath.Vec2, angle float64, segments int, step, w, h float64) []dmath.Vec2 {
	pts := make([]dmath.Vec2, 0, segments+1)
	pts = append(pts, start)
	cur := start
	for s := 0; s < segments; s++ {
		angle += gamemath.RandRange(rng, -0.5, 0.5)
		l := step * gamemath.RandRange(rng, 0.7, 1.3)
		next := dmath.Vec2{
			X: gamemath.Clamp(cur.X+math.Cos(angle)*l, 0, w),
			Y: gamemath.Clamp(cur.Y+math.Sin(angle)*l, 0, h),
		}
		if next.Y <= 0 || next.Y >= h {
			angle = -angle
		}
		pts = append(pts, next)
		cur = next
	}
	return pts
}
