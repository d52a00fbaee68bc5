package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SpawnFxKind selects the cosmetic transition played when the player appears.
type SpawnFxKind int

const (
	SpawnNone SpawnFxKind = iota
	SpawnFade
	SpawnPop
	SpawnFadePop
)

func (k SpawnFxKind) String() string {
	switch k {
	case SpawnFade:
		return "fade"
	case SpawnPop:
		return "pop"
	case SpawnFadePop:
		return "fade-pop"
	}
	return "none"
}

// SpawnFx drives alpha and scale tweens. It only feeds drawing and never
// touches the collision box.
type SpawnFx struct {
	Kind     SpawnFxKind
	Elapsed  float64
	Duration float64
	alpha    *gween.Tween
	scale    *gween.Tween
	curAlpha float32
	curScale float32
}

// Start begins a transition of the given kind lasting durationMs.
func (f *SpawnFx) Start(kind SpawnFxKind, durationMs, popFrom float64) {
	if kind == SpawnNone || durationMs <= 0 {
		f.Stop()
		return
	}
	f.Kind = kind
	f.Elapsed = 0
	f.Duration = durationMs
	f.alpha = nil
	f.scale = nil
	f.curAlpha, f.curScale = 1, 1

	if kind == SpawnFade || kind == SpawnFadePop {
		f.alpha = gween.New(0, 1, float32(durationMs), ease.OutQuad)
		f.curAlpha = 0
	}
	if kind == SpawnPop || kind == SpawnFadePop {
		f.scale = gween.New(float32(popFrom), 1, float32(durationMs), ease.OutBack)
		f.curScale = float32(popFrom)
	}
}

func (f *SpawnFx) Stop() {
	f.Kind = SpawnNone
	f.Elapsed = 0
	f.Duration = 0
	f.alpha = nil
	f.scale = nil
	f.curAlpha, f.curScale = 1, 1
}

func (f *SpawnFx) Active() bool {
	return f.Kind != SpawnNone
}

func (f *SpawnFx) Update(dtMs float64) {
	if !f.Active() {
		return
	}
	f.Elapsed += dtMs
	if f.alpha != nil {
		f.curAlpha, _ = f.alpha.Update(float32(dtMs))
	}
	if f.scale != nil {
		f.curScale, _ = f.scale.Update(float32(dtMs))
	}
	if f.Elapsed >= f.Duration {
		f.Stop()
	}
}

// Transform returns the alpha and scale to draw with.
func (f *SpawnFx) Transform() (alpha, scale float64) {
	if !f.Active() {
		return 1, 1
	}
	return clamp01(float64(f.curAlpha)), float64(f.curScale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
