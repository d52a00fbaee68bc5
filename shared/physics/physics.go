// Package physics resolves a moving box against axis-aligned surfaces.
// It holds no state; movers and surfaces own their data and expose the
// narrow set of methods the resolver needs.
package physics

import "github.com/automoto/skyfolio/shared/gamemath"

// Side is the face of the surface the mover was pushed out of.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Mover is the moving box, in practice the player.
type Mover interface {
	Bounds() gamemath.Rect
	Velocity() (vx, vy float64)
	// WasGrounded reports the ground flag of the previous frame.
	WasGrounded() bool
	// LandOn rests the box on surfaceY and zeroes vertical speed. It returns
	// true only for the first landing of the current frame.
	LandOn(surfaceY float64) bool
	// HitCeiling places the box top at y and zeroes vertical speed.
	HitCeiling(y float64)
	// StopAtX places the box left edge at x and zeroes horizontal speed.
	StopAtX(x float64)
}

// Surface is anything the mover can stand on.
type Surface interface {
	Bounds() gamemath.Rect
	IsCollidable() bool
	// NotifyLanded is the one-shot landing signal.
	NotifyLanded()
}

// SurfaceQuery supplies the surfaces a mover is resolved against. Near is the
// broad phase of the discrete pass and may return any superset of the
// surfaces overlapping r.
type SurfaceQuery interface {
	All() []Surface
	Near(r gamemath.Rect) []Surface
}

// Surfaces is a SurfaceQuery with no broad phase.
type Surfaces []Surface

func (s Surfaces) All() []Surface { return s }

func (s Surfaces) Near(gamemath.Rect) []Surface { return s }

// CheckCollision is a strict AABB overlap test. Non-collidable surfaces never
// collide.
func CheckCollision(m Mover, s Surface) bool {
	if !s.IsCollidable() {
		return false
	}
	return m.Bounds().Overlaps(s.Bounds())
}

// ResolveCollision pushes the mover out of s along one axis, picked by
// comparing the half-extent weighted center offsets. It returns the face of s
// that was hit.
func ResolveCollision(m Mover, s Surface) Side {
	mb := m.Bounds()
	sb := s.Bounds()

	dx := mb.CenterX() - sb.CenterX()
	dy := mb.CenterY() - sb.CenterY()
	width := (mb.W + sb.W) / 2
	height := (mb.H + sb.H) / 2

	if abs(dx) > width || abs(dy) > height {
		return SideNone
	}

	crossWidth := width * dy
	crossHeight := height * dx

	if crossWidth > crossHeight {
		if crossWidth > -crossHeight {
			m.HitCeiling(sb.Bottom())
			return SideBottom
		}
		m.StopAtX(sb.X - mb.W)
		return SideLeft
	}
	if crossWidth > -crossHeight {
		m.StopAtX(sb.Right())
		return SideRight
	}

	land(m, s, sb.Y)
	return SideTop
}

// SweepLanding catches a fall that crossed a surface top between frames.
// prevBottom is the mover's bottom edge before this frame's integration.
// Among all crossed surfaces the highest one wins. It returns the surface
// landed on, or nil.
func SweepLanding(m Mover, prevBottom float64, surfaces []Surface) Surface {
	_, vy := m.Velocity()
	if vy <= 0 {
		return nil
	}

	mb := m.Bounds()
	var hit Surface
	best := 0.0
	for _, s := range surfaces {
		if !s.IsCollidable() {
			continue
		}
		sb := s.Bounds()
		if prevBottom > sb.Y || mb.Bottom() < sb.Y {
			continue
		}
		if mb.X >= sb.Right() || mb.Right() <= sb.X {
			continue
		}
		if hit == nil || sb.Y < best {
			hit = s
			best = sb.Y
		}
	}

	if hit != nil {
		land(m, hit, best)
	}
	return hit
}

// land rests the mover on the surface and fires the landing signal when the
// mover was airborne last frame, is falling, and has not landed this frame.
func land(m Mover, s Surface, top float64) {
	_, vy := m.Velocity()
	first := m.LandOn(top)
	if first && vy > 0 && !m.WasGrounded() {
		s.NotifyLanded()
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
