package components

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
)

func newTestPlatform() *PlatformData {
	return NewPlatform("slab", 100, 400, 200, 20, rand.New(rand.NewSource(7)))
}

// landTimes counts n landings spaced past the debounce window.
func landTimes(p *PlatformData, n int) {
	for i := 0; i < n; i++ {
		if i > 0 {
			p.Update(cfg.Platform.LandingDebounceMs + 10)
		}
		p.NotifyLanded()
	}
}

func TestPlatformLifecycle(t *testing.T) {
	p := newTestPlatform()
	if !p.IsCollidable() {
		t.Fatal("new platform must be collidable")
	}

	landTimes(p, 2)
	if p.State != PlatformNormal || !p.PreCracking {
		t.Fatalf("after 2 landings: state=%v precrack=%v", p.State, p.PreCracking)
	}
	n := len(p.Cracks)
	if n < cfg.Platform.CrackLinesMin || n > cfg.Platform.CrackLinesMax {
		t.Errorf("crack count = %d", n)
	}

	p.Update(cfg.Platform.LandingDebounceMs + 10)
	p.NotifyLanded()
	if p.State != PlatformCracking {
		t.Fatalf("after 3 landings: state=%v", p.State)
	}
	if !p.IsCollidable() {
		t.Error("cracking platform must stay collidable")
	}

	p.Update(cfg.Platform.CrackingMs)
	if p.State != PlatformFractured {
		t.Fatalf("after cracking time: state=%v", p.State)
	}
	if p.IsCollidable() {
		t.Error("fractured platform must not collide")
	}
	if f := len(p.Fragments); f < cfg.Platform.FragmentsMin || f > cfg.Platform.FragmentsMax {
		t.Errorf("fragment count = %d", f)
	}

	p.Update(cfg.Platform.FragmentLifeMaxMs)
	if p.State != PlatformInactive {
		t.Fatalf("after fragment life: state=%v", p.State)
	}
	if p.IsCollidable() || p.Visible() {
		t.Error("inactive platform must be invisible and non-collidable")
	}
}

func TestPlatformLandingDebounce(t *testing.T) {
	tests := []struct {
		name string
		gaps []float64
		want int
	}{
		{"same frame", []float64{0}, 1},
		{"inside window", []float64{100}, 1},
		{"at window", []float64{cfg.Platform.LandingDebounceMs}, 2},
		{"bounce then land", []float64{50, 80}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlatform()
			p.NotifyLanded()
			for _, gap := range tt.gaps {
				p.Update(gap)
				p.NotifyLanded()
			}
			if p.Landings != tt.want {
				t.Errorf("landings = %d, want %d", p.Landings, tt.want)
			}
		})
	}
}

func TestPlatformIgnoresLandingsOnceCracking(t *testing.T) {
	p := newTestPlatform()
	landTimes(p, 3)
	p.Update(cfg.Platform.LandingDebounceMs + 10)
	p.NotifyLanded()
	if p.Landings != 3 {
		t.Errorf("landings = %d, want 3", p.Landings)
	}
}

func TestPlatformResetToSpawn(t *testing.T) {
	p := newTestPlatform()
	landTimes(p, 3)
	p.Update(cfg.Platform.CrackingMs)
	p.Update(cfg.Platform.FragmentLifeMaxMs)

	p.ResetToSpawn()

	if p.State != PlatformNormal || p.Landings != 0 || p.PreCracking {
		t.Errorf("reset left state=%v landings=%d precrack=%v", p.State, p.Landings, p.PreCracking)
	}
	if len(p.Cracks) != 0 || len(p.Fragments) != 0 || len(p.Particles) != 0 {
		t.Error("reset must clear cracks, fragments and particles")
	}
	if p.X != 100 || p.Y != 400 || !p.IsCollidable() {
		t.Error("reset must restore spawn position and collision")
	}

	p.NotifyLanded()
	if p.Landings != 1 {
		t.Errorf("first landing after reset not counted")
	}
}

func TestPlatformPreCrackIsCapped(t *testing.T) {
	p := newTestPlatform()
	landTimes(p, 2)
	for i := 0; i < 100; i++ {
		p.Update(100)
	}
	for i, c := range p.Cracks {
		if c.Progress > cfg.Platform.PreCrackCap+1e-9 {
			t.Errorf("crack %d progress %v above cap", i, c.Progress)
		}
	}
}

func TestPlatformHighlight(t *testing.T) {
	p := newTestPlatform()
	touching := gamemath.Rect{X: 150, Y: 352, W: 48, H: 48}
	away := gamemath.Rect{X: 600, Y: 0, W: 48, H: 48}

	for i := 0; i < 60; i++ {
		p.UpdateHighlight(touching, 16)
	}
	if p.Highlight < 0.99 {
		t.Errorf("highlight = %v, want near 1", p.Highlight)
	}
	for i := 0; i < 120; i++ {
		p.UpdateHighlight(away, 16)
	}
	if p.Highlight != 0 {
		t.Errorf("highlight = %v, want 0", p.Highlight)
	}
}
