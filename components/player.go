package components

import (
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/automoto/skyfolio/shared/physics"
	"github.com/yohamta/donburi"
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// PlayerData is the controllable box. X and Y are the top-left corner.
type PlayerData struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Speed     float64
	JumpSpeed float64
	Gravity   float64
	// Precise integrates by elapsed time instead of per frame.
	Precise bool

	OnGround    bool
	wasGrounded bool
	facing      Facing

	State cfg.StateID
	Fx    SpawnFx
}

// NewPlayer creates a player from the global tuning at (x, y).
func NewPlayer(x, y float64) *PlayerData {
	return &PlayerData{
		X:         x,
		Y:         y,
		W:         cfg.Player.Width,
		H:         cfg.Player.Height,
		Speed:     cfg.Player.Speed,
		JumpSpeed: cfg.Player.JumpSpeed,
		Gravity:   cfg.Player.Gravity,
		Precise:   cfg.Physics.ForcePrecise,
		State:     cfg.Idle,
	}
}

// Step advances the player one frame: input, jump, gravity, integration,
// ground reset, the anti-tunneling sweep and then the discrete collision pass.
func (p *PlayerData) Step(in ActionQuery, surfaces physics.SurfaceQuery, dtMs float64) {
	p.wasGrounded = p.OnGround

	p.VX = 0
	if pressed(in, cfg.ActionLeft) {
		p.VX = -p.Speed
		p.facing = FacingLeft
	}
	if pressed(in, cfg.ActionRight) {
		p.VX = p.Speed
		p.facing = FacingRight
	}
	if pressed(in, cfg.ActionJump) && p.OnGround {
		p.VY = -p.JumpSpeed
		p.OnGround = false
	}

	scale := 1.0
	if p.Precise {
		scale = gamemath.FrameScale(dtMs, cfg.Physics.ReferenceFPS)
	}

	p.VY += p.Gravity * scale
	prevBottom := p.Y + p.H
	p.X += p.VX * scale
	p.Y += p.VY * scale

	p.OnGround = false

	if surfaces != nil {
		physics.SweepLanding(p, prevBottom, surfaces.All())
		for _, s := range surfaces.Near(p.Bounds()) {
			if physics.CheckCollision(p, s) {
				physics.ResolveCollision(p, s)
			}
		}
	}

	switch {
	case !p.OnGround:
		p.State = cfg.Jump
	case p.VX != 0:
		p.State = cfg.Walk
	default:
		p.State = cfg.Idle
	}

	p.Fx.Update(dtMs)
}

func pressed(in ActionQuery, a cfg.ActionID) bool {
	return in != nil && in.IsActionPressed(a)
}

// RespawnAt moves the player and clears vertical speed. Horizontal speed is
// recomputed from input on the next step.
func (p *PlayerData) RespawnAt(x, y float64) {
	p.X = x
	p.Y = y
	p.VY = 0
}

func (p *PlayerData) StartSpawnFx(kind SpawnFxKind, durationMs float64) {
	p.Fx.Start(kind, durationMs, cfg.SpawnFx.PopFrom)
}

func (p *PlayerData) Facing() Facing {
	return p.facing
}

func (p *PlayerData) IsGrounded() bool {
	return p.OnGround
}

func (p *PlayerData) SetOnGround(v bool) {
	p.OnGround = v
}

// SnapTo places the player's bottom-center on (x, y) and stops the fall.
func (p *PlayerData) SnapTo(x, y float64) {
	p.X = x - p.W/2
	p.Y = y - p.H
	p.VY = 0
	p.OnGround = true
}

func (p *PlayerData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func (p *PlayerData) Velocity() (float64, float64) {
	return p.VX, p.VY
}

func (p *PlayerData) WasGrounded() bool {
	return p.wasGrounded
}

func (p *PlayerData) LandOn(surfaceY float64) bool {
	first := !p.OnGround
	p.Y = surfaceY - p.H
	p.VY = 0
	p.OnGround = true
	return first
}

func (p *PlayerData) HitCeiling(y float64) {
	p.Y = y
	p.VY = 0
}

func (p *PlayerData) StopAtX(x float64) {
	p.X = x
	p.VX = 0
}

var Player = donburi.NewComponentType[PlayerData]()
