package config

import "image/color"

// WindowConfig holds the logical canvas size. One screen band of the world is
// exactly one viewport tall.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions of the collision box (also the drawn size)
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Speed     float64 `yaml:"speed"`      // px per frame, applied instantly
	JumpSpeed float64 `yaml:"jump_speed"` // upward velocity set on jump
	Gravity   float64 `yaml:"gravity"`    // px per frame^2

	// Sprite sheet
	SpritePath      string  `yaml:"sprite_path"`
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	FrameIntervalMs float64 `yaml:"frame_interval_ms"`
}

// PhysicsConfig controls the integration mode.
type PhysicsConfig struct {
	// ReferenceFPS converts per-frame tuning into per-second integration when a
	// screen runs in precise mode.
	ReferenceFPS float64 `yaml:"reference_fps"`
	// ForcePrecise makes every screen integrate by elapsed time.
	ForcePrecise bool `yaml:"force_precise"`
}

// PlatformConfig tunes the destructible platform state machine and its effects.
type PlatformConfig struct {
	LandingDebounceMs float64 `yaml:"landing_debounce_ms"`
	PreCrackLandings  int     `yaml:"pre_crack_landings"`
	CrackLandings     int     `yaml:"crack_landings"`
	CrackingMs        float64 `yaml:"cracking_ms"`
	CornerRadius      float64 `yaml:"corner_radius"`

	// Crack geometry
	CrackLinesMin     int     `yaml:"crack_lines_min"`
	CrackLinesMax     int     `yaml:"crack_lines_max"`
	CrackBranchesMax  int     `yaml:"crack_branches_max"`
	CrackSegmentsMin  int     `yaml:"crack_segments_min"`
	CrackSegmentsMax  int     `yaml:"crack_segments_max"`
	PreCrackGrowth    float64 `yaml:"pre_crack_growth"` // progress per second before cracking
	PreCrackCap       float64 `yaml:"pre_crack_cap"`
	CrackSpeedup      float64 `yaml:"crack_speedup"`
	JitterAmplitude   float64 `yaml:"jitter_amplitude"`
	JitterRotation    float64 `yaml:"jitter_rotation"`
	SparkIntervalMs   float64 `yaml:"spark_interval_ms"`
	FrostIntervalMs   float64 `yaml:"frost_interval_ms"`
	LandingShards     int     `yaml:"landing_shards"`
	DustParticles     int     `yaml:"dust_particles"`
	HighlightRate     float64 `yaml:"highlight_rate"` // 1/s approach rate
	ParticleGravity   float64 `yaml:"particle_gravity"`
	FragmentsMin      int     `yaml:"fragments_min"`
	FragmentsMax      int     `yaml:"fragments_max"`
	FragmentGravity   float64 `yaml:"fragment_gravity"` // px/s^2
	FragmentDrag      float64 `yaml:"fragment_drag"`    // velocity kept per second
	FragmentLifeMinMs float64 `yaml:"fragment_life_min_ms"`
	FragmentLifeMaxMs float64 `yaml:"fragment_life_max_ms"`
}

// PlanetConfig tunes circular platforms.
type PlanetConfig struct {
	RotationStep    float64 `yaml:"rotation_step"`     // radians per reference frame
	RotationFrameMs float64 `yaml:"rotation_frame_ms"` // reference frame length
	Damping         float64 `yaml:"damping"`
	SnapEpsilon     float64 `yaml:"snap_epsilon"`
	AboveTolerance  float64 `yaml:"above_tolerance"` // |dx| < radius*tolerance counts as above
	MinRotateSpeed  float64 `yaml:"min_rotate_speed"`
}

// BubbleConfig tunes info bubbles and their trail.
type BubbleConfig struct {
	Radius          float64 `yaml:"radius"`
	AnchorOffset    float64 `yaml:"anchor_offset"` // px above the bound platform
	FloatMs         float64 `yaml:"float_ms"`
	RiseDistance    float64 `yaml:"rise_distance"`
	FadeMs          float64 `yaml:"fade_ms"`
	CooldownMs      float64 `yaml:"cooldown_ms"`
	BreathePeriodMs float64 `yaml:"breathe_period_ms"`
	BreatheScale    float64 `yaml:"breathe_scale"`
	TrailIntervalMs float64 `yaml:"trail_interval_ms"`
	TrailLifeMinMs  float64 `yaml:"trail_life_min_ms"`
	TrailLifeMaxMs  float64 `yaml:"trail_life_max_ms"`
}

// CameraConfig tunes the vertical camera.
type CameraConfig struct {
	Ease    float64 `yaml:"ease"`
	Epsilon float64 `yaml:"epsilon"`
}

// SpawnFxConfig tunes the cosmetic spawn transition.
type SpawnFxConfig struct {
	SnapDurationMs float64 `yaml:"snap_duration_ms"`
	PopFrom        float64 `yaml:"pop_from"` // starting scale for pop
}

// OverlayConfig styles bubble labels and the HUD.
type OverlayConfig struct {
	FontSize      float64 `yaml:"font_size"`
	LineHeight    float64 `yaml:"line_height"`
	LabelDiameter float64 `yaml:"label_diameter"`
	LabelWidth    int     `yaml:"label_width"` // wrap width of label text
	HUDFontSize   float64 `yaml:"hud_font_size"`
	NavFontSize   float64 `yaml:"nav_font_size"`
	NavBarHeight  int     `yaml:"nav_bar_height"`
}

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	DrawBodies bool `yaml:"draw_bodies"`
	ShowHUD    bool `yaml:"show_hud"`
}

var (
	C        *WindowConfig
	Player   PlayerConfig
	Physics  PhysicsConfig
	Platform PlatformConfig
	Planet   PlanetConfig
	Bubble   BubbleConfig
	Camera   CameraConfig
	SpawnFx  SpawnFxConfig
	Overlay  OverlayConfig
	Debug    DebugConfig
)

// Palette
var (
	ColorBackground     = color.RGBA{R: 12, G: 14, B: 32, A: 255}
	ColorPlatform       = color.RGBA{R: 168, G: 214, B: 240, A: 255}
	ColorPlatformEdge   = color.RGBA{R: 232, G: 246, B: 255, A: 255}
	ColorHighlight      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorCrack          = color.RGBA{R: 40, G: 70, B: 110, A: 255}
	ColorShard          = color.RGBA{R: 210, G: 240, B: 255, A: 255}
	ColorSpark          = color.RGBA{R: 255, G: 244, B: 200, A: 255}
	ColorFrost          = color.RGBA{R: 220, G: 245, B: 255, A: 255}
	ColorDust           = color.RGBA{R: 190, G: 210, B: 230, A: 255}
	ColorPlanet         = color.RGBA{R: 72, G: 96, B: 168, A: 255}
	ColorPlanetRim      = color.RGBA{R: 140, G: 170, B: 255, A: 255}
	ColorBubble         = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	ColorBubbleText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorPlayerFallback = color.RGBA{R: 40, G: 90, B: 255, A: 255}
	ColorNavBar         = color.RGBA{R: 20, G: 24, B: 48, A: 200}
	ColorNavIdle        = color.RGBA{R: 44, G: 52, B: 96, A: 255}
	ColorNavHover       = color.RGBA{R: 70, G: 84, B: 150, A: 255}
	ColorNavActive      = color.RGBA{R: 110, G: 140, B: 230, A: 255}
)

func init() {
	C = &WindowConfig{
		Width:  960,
		Height: 720,
		Title:  "skyfolio",
	}

	Player = PlayerConfig{
		Width:           48,
		Height:          48,
		Speed:           3,
		JumpSpeed:       14,
		Gravity:         1,
		SpritePath:      "sprites/player.png",
		FrameWidth:      256,
		FrameHeight:     256,
		FrameIntervalMs: 100,
	}

	Physics = PhysicsConfig{
		ReferenceFPS: 60,
	}

	Platform = PlatformConfig{
		LandingDebounceMs: 120,
		PreCrackLandings:  2,
		CrackLandings:     3,
		CrackingMs:        450,
		CornerRadius:      6,

		CrackLinesMin:     3,
		CrackLinesMax:     5,
		CrackBranchesMax:  2,
		CrackSegmentsMin:  4,
		CrackSegmentsMax:  7,
		PreCrackGrowth:    0.12,
		PreCrackCap:       0.35,
		CrackSpeedup:      1,
		JitterAmplitude:   1.6,
		JitterRotation:    0.02,
		SparkIntervalMs:   35,
		FrostIntervalMs:   140,
		LandingShards:     6,
		DustParticles:     14,
		HighlightRate:     10,
		ParticleGravity:   600,
		FragmentsMin:      6,
		FragmentsMax:      9,
		FragmentGravity:   1400,
		FragmentDrag:      0.6,
		FragmentLifeMinMs: 700,
		FragmentLifeMaxMs: 1200,
	}

	Planet = PlanetConfig{
		RotationStep:    0.01,
		RotationFrameMs: 16.67,
		Damping:         0.94,
		SnapEpsilon:     1e-4,
		AboveTolerance:  1.05,
		MinRotateSpeed:  0.01,
	}

	Bubble = BubbleConfig{
		Radius:          38,
		AnchorOffset:    40,
		FloatMs:         3500,
		RiseDistance:    80,
		FadeMs:          700,
		CooldownMs:      5000,
		BreathePeriodMs: 2400,
		BreatheScale:    0.06,
		TrailIntervalMs: 90,
		TrailLifeMinMs:  700,
		TrailLifeMaxMs:  1150,
	}

	Camera = CameraConfig{
		Ease:    0.12,
		Epsilon: 0.6,
	}

	SpawnFx = SpawnFxConfig{
		SnapDurationMs: 420,
		PopFrom:        0.4,
	}

	Overlay = OverlayConfig{
		FontSize:      14,
		LineHeight:    17,
		LabelDiameter: 130,
		LabelWidth:    110,
		HUDFontSize:   12,
		NavFontSize:   16,
		NavBarHeight:  44,
	}
}
