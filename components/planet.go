package components

import (
	"math"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Rider is what a circular platform needs from the player.
type Rider interface {
	Bounds() gamemath.Rect
	Velocity() (vx, vy float64)
	Facing() Facing
	IsGrounded() bool
	SnapTo(x, y float64)
}

// PlanetData is a rotating circular platform centered at (X, Y).
type PlanetData struct {
	Name          string
	X, Y          float64
	Radius        float64
	Angle         float64
	RotationSpeed float64
}

func NewPlanet(name string, x, y, radius float64) *PlanetData {
	return &PlanetData{
		Name:          name,
		X:             x,
		Y:             y,
		Radius:        radius,
		RotationSpeed: cfg.Planet.RotationStep,
	}
}

// Top returns the point a player should stand on to sit at the top of the
// planet: the bottom-center of the player box.
func (c *PlanetData) Top() (float64, float64) {
	return c.X, c.Y - c.Radius
}

// Update lands the rider on the surface when it comes from above, spins the
// planet while the rider walks on it and damps the spin otherwise.
func (c *PlanetData) Update(r Rider, dtMs float64) {
	b := r.Bounds()
	dx := b.CenterX() - c.X
	dy := c.Y - b.Bottom()
	colliding := math.Hypot(dx, dy) <= c.Radius

	vx, vy := r.Velocity()
	moving := math.Abs(vx) > cfg.Planet.MinRotateSpeed

	if colliding {
		above := dy > 0 && math.Abs(dx) < c.Radius*cfg.Planet.AboveTolerance
		if above && (vy >= 0 || !r.IsGrounded()) {
			angle := math.Atan2(-dy, dx)
			r.SnapTo(c.X+math.Cos(angle)*c.Radius, c.Y+math.Sin(angle)*c.Radius)
		}

		if moving {
			dir := -1.0
			if r.Facing() == FacingLeft {
				dir = 1
			}
			c.Angle += dir * c.RotationSpeed * (dtMs / cfg.Planet.RotationFrameMs)
		}
	}

	if !colliding || !moving {
		c.Angle *= cfg.Planet.Damping
		if math.Abs(c.Angle) < cfg.Planet.SnapEpsilon {
			c.Angle = 0
		}
	}
}

var Planet = donburi.NewComponentType[PlanetData]()
