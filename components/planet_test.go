package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/skyfolio/config"
)

func TestPlanetLandsPlayerOnTop(t *testing.T) {
	c := NewPlanet("home", 0, 500, 100)
	p := NewPlayer(-24, 357)
	p.VY = 4

	c.Update(p, 16.67)

	if !p.OnGround || p.VY != 0 {
		t.Fatalf("player not landed: grounded=%v vy=%v", p.OnGround, p.VY)
	}
	if math.Abs(p.Y+p.H-400) > 1e-9 {
		t.Errorf("player bottom = %v, want 400", p.Y+p.H)
	}
	if math.Abs(p.X+p.W/2) > 1e-9 {
		t.Errorf("player center x = %v, want 0", p.X+p.W/2)
	}
}

func TestPlanetIgnoresPlayerBelowOrAway(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"far above", -24, 100},
		{"below center", -24, 560},
		{"off to the side", 300, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPlanet("home", 0, 500, 100)
			p := NewPlayer(tt.x, tt.y)
			p.VY = 3
			c.Update(p, 16.67)
			if p.OnGround || p.X != tt.x || p.Y != tt.y {
				t.Errorf("player moved to (%v,%v) grounded=%v", p.X, p.Y, p.OnGround)
			}
		})
	}
}

func TestPlanetRotation(t *testing.T) {
	c := NewPlanet("home", 0, 500, 100)
	p := NewPlayer(-24, 352)
	p.OnGround = true

	p.VX = cfg.Player.Speed
	p.facing = FacingRight
	c.Update(p, cfg.Planet.RotationFrameMs)
	if math.Abs(c.Angle+cfg.Planet.RotationStep) > 1e-9 {
		t.Fatalf("walking right: angle = %v, want %v", c.Angle, -cfg.Planet.RotationStep)
	}

	p.VX = -cfg.Player.Speed
	p.facing = FacingLeft
	c.Update(p, cfg.Planet.RotationFrameMs)
	c.Update(p, cfg.Planet.RotationFrameMs)
	if c.Angle <= 0 {
		t.Fatalf("walking left: angle = %v, want positive", c.Angle)
	}

	p.VX = 0
	prev := c.Angle
	for i := 0; i < 500 && c.Angle != 0; i++ {
		c.Update(p, 16.67)
		if math.Abs(c.Angle) > math.Abs(prev) {
			t.Fatalf("damping grew the angle: %v -> %v", prev, c.Angle)
		}
		prev = c.Angle
	}
	if c.Angle != 0 {
		t.Errorf("angle did not snap to zero: %v", c.Angle)
	}
}
