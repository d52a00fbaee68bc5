package components

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlatformState int

const (
	PlatformNormal PlatformState = iota
	PlatformCracking
	// PlatformFalling is reserved and never entered.
	PlatformFalling
	PlatformFractured
	PlatformInactive
)

func (s PlatformState) String() string {
	switch s {
	case PlatformNormal:
		return "normal"
	case PlatformCracking:
		return "cracking"
	case PlatformFalling:
		return "falling"
	case PlatformFractured:
		return "fractured"
	case PlatformInactive:
		return "inactive"
	}
	return "unknown"
}

// Jitter shakes the platform body while it cracks. Offsets are cosmetic.
type Jitter struct {
	Amplitude float64
	Phase     float64
	Rotation  float64
	OffsetX   float64
	OffsetY   float64
	Angle     float64
}

// PlatformData is a destructible ice slab. It counts landings, cracks, breaks
// into fragments and finally goes inactive until ResetToSpawn.
type PlatformData struct {
	Name           string
	SpawnX, SpawnY float64
	X, Y, W, H     float64

	State     PlatformState
	Landings  int
	Highlight float64

	PreCracking      bool
	PreCrackMs       float64
	CrackingMs       float64
	ImpactX, ImpactY float64 // local to the top-left corner
	Cracks           []Crack
	Jitter           Jitter
	Particles        []Particle
	Fragments        []Fragment

	clockMs       float64
	lastLandingMs float64
	hasLanded     bool
	sparkTimer    float64
	frostTimer    float64
	rng           *rand.Rand
}

// NewPlatform creates a platform in the normal state. All procedural
// geometry is drawn from rng.
func NewPlatform(name string, x, y, w, h float64, rng *rand.Rand) *PlatformData {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &PlatformData{
		Name:   name,
		SpawnX: x,
		SpawnY: y,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		rng:    rng,
	}
}

func (p *PlatformData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// IsCollidable is true only while normal or cracking.
func (p *PlatformData) IsCollidable() bool {
	return p.State == PlatformNormal || p.State == PlatformCracking
}

// Visible reports whether anything of the platform is still drawn.
func (p *PlatformData) Visible() bool {
	return p.State != PlatformInactive
}

// NotifyLanded counts a landing. Landings closer than the debounce window to
// the last counted one are ignored.
func (p *PlatformData) NotifyLanded() {
	if p.State != PlatformNormal {
		return
	}
	if p.hasLanded && p.clockMs-p.lastLandingMs < cfg.Platform.LandingDebounceMs {
		return
	}
	p.hasLanded = true
	p.lastLandingMs = p.clockMs
	p.Landings++
	p.emitLandingShards()

	if p.Landings == cfg.Platform.PreCrackLandings {
		p.startPreCrack()
	}
	if p.Landings >= cfg.Platform.CrackLandings {
		p.startCracking()
	}
}

func (p *PlatformData) Update(dtMs float64) {
	if p.State == PlatformInactive {
		return
	}
	p.clockMs += dtMs

	switch p.State {
	case PlatformNormal:
		if p.PreCracking {
			p.updatePreCrack(dtMs)
		}
	case PlatformCracking:
		p.updateCracking(dtMs)
	case PlatformFractured:
		p.updateFragments(dtMs)
	}

	if p.State != PlatformInactive {
		p.Particles = updateParticles(p.Particles, dtMs)
	}
}

// UpdateHighlight eases the highlight toward 1 while the player touches the
// platform and toward 0 otherwise.
func (p *PlatformData) UpdateHighlight(player gamemath.Rect, dtMs float64) {
	if !p.Visible() {
		p.Highlight = 0
		return
	}
	touch := gamemath.Rect{X: player.X - 2, Y: player.Y - 2, W: player.W + 4, H: player.H + 4}
	target := 0.0
	if p.IsCollidable() && touch.Overlaps(p.Bounds()) {
		target = 1
	}
	p.Highlight = gamemath.Approach(p.Highlight, target, cfg.Platform.HighlightRate, dtMs/1000)
	if target == 0 && p.Highlight < 1e-3 {
		p.Highlight = 0
	}
}

// ResetToSpawn restores the platform exactly as it was built.
func (p *PlatformData) ResetToSpawn() {
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.State = PlatformNormal
	p.Landings = 0
	p.Highlight = 0
	p.PreCracking = false
	p.PreCrackMs = 0
	p.CrackingMs = 0
	p.ImpactX, p.ImpactY = 0, 0
	p.Cracks = nil
	p.Jitter = Jitter{}
	p.Particles = nil
	p.Fragments = nil
	p.lastLandingMs = 0
	p.hasLanded = false
	p.sparkTimer = 0
	p.frostTimer = 0
}

func (p *PlatformData) startPreCrack() {
	if p.PreCracking {
		return
	}
	p.PreCracking = true
	p.PreCrackMs = 0
	p.ImpactX = p.W * gamemath.RandRange(p.rng, 0.3, 0.7)
	p.ImpactY = p.H * gamemath.RandRange(p.rng, 0.35, 0.65)
	p.Cracks = generateCracks(p.rng, p.ImpactX, p.ImpactY, p.W, p.H)
}

func (p *PlatformData) updatePreCrack(dtMs float64) {
	p.PreCrackMs += dtMs
	growth := cfg.Platform.PreCrackGrowth * dtMs / 1000
	for i := range p.Cracks {
		c := &p.Cracks[i]
		c.Progress = math.Min(cfg.Platform.PreCrackCap, c.Progress+growth*c.Speed)
	}

	p.frostTimer += dtMs
	for p.frostTimer >= cfg.Platform.FrostIntervalMs {
		p.frostTimer -= cfg.Platform.FrostIntervalMs
		p.emitFrost()
	}
}

func (p *PlatformData) startCracking() {
	if p.State != PlatformNormal {
		return
	}
	p.State = PlatformCracking
	p.CrackingMs = 0
	p.sparkTimer = 0
	if len(p.Cracks) == 0 {
		p.ImpactX = p.W * gamemath.RandRange(p.rng, 0.3, 0.7)
		p.ImpactY = p.H * gamemath.RandRange(p.rng, 0.35, 0.65)
		p.Cracks = generateCracks(p.rng, p.ImpactX, p.ImpactY, p.W, p.H)
	}
	p.Jitter = Jitter{
		Amplitude: cfg.Platform.JitterAmplitude * gamemath.RandRange(p.rng, 0.7, 1.3),
		Phase:     gamemath.RandRange(p.rng, 0, 2*math.Pi),
		Rotation:  cfg.Platform.JitterRotation * gamemath.RandSign(p.rng),
	}
}

func (p *PlatformData) updateCracking(dtMs float64) {
	p.CrackingMs += dtMs

	rate := cfg.Platform.CrackSpeedup / cfg.Platform.CrackingMs
	for i := range p.Cracks {
		c := &p.Cracks[i]
		c.Progress = math.Min(1, c.Progress+rate*dtMs*c.Speed)
	}

	k := math.Min(1, p.CrackingMs/cfg.Platform.CrackingMs)
	t := p.CrackingMs / 1000
	j := &p.Jitter
	j.OffsetX = j.Amplitude * k * math.Sin(t*55+j.Phase)
	j.OffsetY = j.Amplitude * 0.5 * k * math.Cos(t*47+j.Phase)
	j.Angle = j.Rotation * k * math.Sin(t*38+j.Phase*1.3)

	p.sparkTimer += dtMs
	for p.sparkTimer >= cfg.Platform.SparkIntervalMs {
		p.sparkTimer -= cfg.Platform.SparkIntervalMs
		p.emitTipSpark()
	}

	if p.CrackingMs >= cfg.Platform.CrackingMs {
		p.fracture()
	}
}

func (p *PlatformData) fracture() {
	p.State = PlatformFractured
	p.Jitter = Jitter{}
	p.Fragments = buildFragments(p.rng, p.X, p.Y, p.W, p.H, p.ImpactX)
	p.emitDust()
}

func (p *PlatformData) updateFragments(dtMs float64) {
	alive := 0
	for i := range p.Fragments {
		f := &p.Fragments[i]
		if f.Expired() {
			continue
		}
		f.Update(dtMs, cfg.Platform.FragmentGravity, cfg.Platform.FragmentDrag)
		if !f.Expired() {
			alive++
		}
	}
	if alive == 0 {
		p.State = PlatformInactive
		p.Fragments = nil
		p.Particles = nil
		p.Cracks = nil
	}
}

func (p *PlatformData) emitLandingShards() {
	for i := 0; i < cfg.Platform.LandingShards; i++ {
		p.Particles = append(p.Particles, Particle{
			Kind:    ParticleShard,
			Pos:     dmath.Vec2{X: p.X + gamemath.RandRange(p.rng, 0.1, 0.9)*p.W, Y: p.Y},
			Vel:     dmath.Vec2{X: gamemath.RandRange(p.rng, -120, 120), Y: -gamemath.RandRange(p.rng, 60, 180)},
			Radius:  gamemath.RandRange(p.rng, 1, 2.5),
			Gravity: cfg.Platform.ParticleGravity,
			FadePow: 1,
			TTL:     gamemath.RandRange(p.rng, 300, 550),
		})
	}
}

func (p *PlatformData) emitFrost() {
	angle := gamemath.RandRange(p.rng, 0, 2*math.Pi)
	speed := gamemath.RandRange(p.rng, 10, 30)
	p.Particles = append(p.Particles, Particle{
		Kind:     ParticleFrost,
		Pos:      dmath.Vec2{X: p.X + p.W/2, Y: p.Y + p.H/2},
		Vel:      dmath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Radius:   gamemath.RandRange(p.rng, 1, 2),
		ShrinkTo: 0.5,
		FadePow:  1.5,
		TTL:      gamemath.RandRange(p.rng, 700, 1100),
	})
}

func (p *PlatformData) emitTipSpark() {
	if len(p.Cracks) == 0 {
		return
	}
	c := &p.Cracks[p.rng.Intn(len(p.Cracks))]
	tip := c.Tip()
	p.Particles = append(p.Particles, Particle{
		Kind:     ParticleSpark,
		Pos:      dmath.Vec2{X: p.X + tip.X, Y: p.Y + tip.Y},
		Vel:      dmath.Vec2{X: gamemath.RandRange(p.rng, -60, 60), Y: -gamemath.RandRange(p.rng, 20, 80)},
		Radius:   gamemath.RandRange(p.rng, 0.8, 1.6),
		Gravity:  cfg.Platform.ParticleGravity * 0.5,
		ShrinkTo: 0.3,
		FadePow:  1,
		TTL:      gamemath.RandRange(p.rng, 200, 380),
	})
}

func (p *PlatformData) emitDust() {
	cx, cy := p.X+p.W/2, p.Y+p.H/2
	for i := 0; i < cfg.Platform.DustParticles; i++ {
		angle := gamemath.RandRange(p.rng, 0, 2*math.Pi)
		speed := gamemath.RandRange(p.rng, 40, 160)
		p.Particles = append(p.Particles, Particle{
			Kind:     ParticleDust,
			Pos:      dmath.Vec2{X: cx, Y: cy},
			Vel:      dmath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Radius:   gamemath.RandRange(p.rng, 1.5, 3.5),
			Gravity:  60,
			ShrinkTo: 0.4,
			FadePow:  1.5,
			TTL:      gamemath.RandRange(p.rng, 400, 800),
		})
	}
}

var Platform = donburi.NewComponentType[PlatformData]()
