package components

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

type ParticleKind int

const (
	ParticleShard ParticleKind = iota
	ParticleSpark
	ParticleFrost
	ParticleDust
	ParticleTrail
)

// Particle is a short-lived visual. Velocities are in px/s.
type Particle struct {
	Kind     ParticleKind
	Pos      dmath.Vec2
	Vel      dmath.Vec2
	Radius   float64
	Gravity  float64 // px/s^2
	ShrinkTo float64 // radius fraction reached at end of life
	FadePow  float64 // alpha = (1-t)^FadePow
	Life     float64
	TTL      float64
}

func (pt *Particle) Update(dtMs float64) {
	dt := dtMs / 1000
	pt.Vel.Y += pt.Gravity * dt
	pt.Pos.X += pt.Vel.X * dt
	pt.Pos.Y += pt.Vel.Y * dt
	pt.Life += dtMs
	if pt.Life > pt.TTL {
		pt.Life = pt.TTL
	}
}

func (pt *Particle) Dead() bool {
	return pt.Life >= pt.TTL
}

func (pt *Particle) progress() float64 {
	if pt.TTL <= 0 {
		return 1
	}
	return math.Min(1, pt.Life/pt.TTL)
}

// CurrentRadius shrinks linearly from Radius to Radius*ShrinkTo.
func (pt *Particle) CurrentRadius() float64 {
	t := pt.progress()
	shrink := pt.ShrinkTo
	if shrink == 0 {
		shrink = 1
	}
	return pt.Radius * (1 - (1-shrink)*t)
}

func (pt *Particle) Alpha() float64 {
	pow := pt.FadePow
	if pow == 0 {
		pow = 1
	}
	return math.Pow(1-pt.progress(), pow)
}

// updateParticles steps every particle and drops the dead ones in place.
func updateParticles(ps []Particle, dtMs float64) []Particle {
	alive := ps[:0]
	for i := range ps {
		ps[i].Update(dtMs)
		if !ps[i].Dead() {
			alive = append(alive, ps[i])
		}
	}
	return alive
}
