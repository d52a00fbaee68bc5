package components

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type BubbleState int

const (
	BubbleIdle BubbleState = iota
	BubbleTriggered
	BubbleCooldown
)

func (s BubbleState) String() string {
	switch s {
	case BubbleIdle:
		return "idle"
	case BubbleTriggered:
		return "triggered"
	case BubbleCooldown:
		return "cooldown"
	}
	return "unknown"
}

// BubbleSink receives the lifecycle of a bubble label. Positions are in
// world space.
type BubbleSink interface {
	Show(id string, x, y float64, text string)
	Move(id string, x, y float64)
	Hide(id string)
}

// BubbleData is a proximity popup anchored above a platform.
type BubbleData struct {
	ID             string
	Text           string
	SpawnX, SpawnY float64
	X, Y           float64
	Radius         float64

	State   BubbleState
	Elapsed float64
	Trail   []Particle

	wasOverlapping bool
	trailTimer     float64
	clockMs        float64
	rng            *rand.Rand
}

func NewBubble(id string, x, y, radius float64, text string, rng *rand.Rand) *BubbleData {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BubbleData{
		ID:     id,
		Text:   text,
		SpawnX: x,
		SpawnY: y,
		X:      x,
		Y:      y,
		Radius: radius,
		rng:    rng,
	}
}

// Overlaps tests the bubble circle against the player box.
func (b *BubbleData) Overlaps(player gamemath.Rect) bool {
	return gamemath.CircleIntersectsRect(b.X, b.Y, b.Radius, player)
}

// Update runs the idle -> triggered -> cooldown loop. Activation happens only
// on the rising edge of overlap.
func (b *BubbleData) Update(player gamemath.Rect, dtMs float64, sink BubbleSink) {
	b.clockMs += dtMs
	overlapping := b.Overlaps(player)

	switch b.State {
	case BubbleIdle:
		if overlapping && !b.wasOverlapping {
			b.trigger(sink)
		}
	case BubbleTriggered:
		b.Elapsed += dtMs
		b.Y -= cfg.Bubble.RiseDistance / cfg.Bubble.FloatMs * dtMs
		if sink != nil {
			sink.Move(b.ID, b.X, b.Y)
		}
		b.emitTrail(dtMs)

		if b.Elapsed >= cfg.Bubble.FloatMs {
			b.State = BubbleCooldown
			b.Elapsed = 0
			if sink != nil {
				sink.Hide(b.ID)
			}
		}
	case BubbleCooldown:
		b.Elapsed += dtMs
		if b.Elapsed >= cfg.Bubble.CooldownMs {
			b.resetToIdle()
		}
	}

	b.Trail = updateParticles(b.Trail, dtMs)
	b.wasOverlapping = overlapping
}

func (b *BubbleData) trigger(sink BubbleSink) {
	if b.State != BubbleIdle {
		return
	}
	b.State = BubbleTriggered
	b.Elapsed = 0
	b.trailTimer = 0
	if sink != nil {
		sink.Show(b.ID, b.X, b.Y, b.Text)
	}
}

func (b *BubbleData) resetToIdle() {
	b.State = BubbleIdle
	b.Elapsed = 0
	b.X = b.SpawnX
	b.Y = b.SpawnY
	b.wasOverlapping = false
}

func (b *BubbleData) emitTrail(dtMs float64) {
	b.trailTimer += dtMs
	for b.trailTimer >= cfg.Bubble.TrailIntervalMs {
		b.trailTimer -= cfg.Bubble.TrailIntervalMs
		b.Trail = append(b.Trail, Particle{
			Kind: ParticleTrail,
			Pos: dmath.Vec2{
				X: b.X + gamemath.RandRange(b.rng, -0.5, 0.5)*b.Radius,
				Y: b.Y + b.Radius*0.6,
			},
			Vel: dmath.Vec2{
				X: (b.rng.Float64() - 0.5) * 0.35 * cfg.Physics.ReferenceFPS,
				Y: -(0.9 + b.rng.Float64()*0.8) * cfg.Physics.ReferenceFPS,
			},
			Radius:   gamemath.RandRange(b.rng, 3, 6),
			ShrinkTo: 0.25,
			FadePow:  2.2,
			TTL:      gamemath.RandRange(b.rng, cfg.Bubble.TrailLifeMinMs, cfg.Bubble.TrailLifeMaxMs),
		})
	}
}

// Visible is false during cooldown.
func (b *BubbleData) Visible() bool {
	return b.State != BubbleCooldown
}

// Alpha fades out over the last part of the float.
func (b *BubbleData) Alpha() float64 {
	switch b.State {
	case BubbleCooldown:
		return 0
	case BubbleTriggered:
		fadeStart := cfg.Bubble.FloatMs - cfg.Bubble.FadeMs
		if b.Elapsed > fadeStart {
			return gamemath.Clamp(1-(b.Elapsed-fadeStart)/cfg.Bubble.FadeMs, 0, 1)
		}
	}
	return 1
}

// DrawRadius is the radius with the idle breathing applied.
func (b *BubbleData) DrawRadius() float64 {
	if cfg.Bubble.BreathePeriodMs <= 0 {
		return b.Radius
	}
	phase := b.clockMs / cfg.Bubble.BreathePeriodMs * 2 * math.Pi
	return b.Radius * (1 + cfg.Bubble.BreatheScale*math.Sin(phase))
}

var Bubble = donburi.NewComponentType[BubbleData]()
