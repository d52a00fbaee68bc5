package scenes

import (
	"testing"
	"time"

	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/events"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/automoto/skyfolio/systems"
	"github.com/automoto/skyfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
)

type stubKeys struct {
	polls   int
	pressed map[ebiten.Key]bool
}

func (k *stubKeys) IsKeyPressed(key ebiten.Key) bool {
	k.polls++
	return k.pressed[key]
}

func (k *stubKeys) IsButtonPressed(ebiten.StandardGamepadButton) bool {
	return false
}

// testLevel stacks three 720 px screens. The home planet sits in the intro,
// one platform with a bubble in work, and contact only has a point anchor.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "test",
		Width:  960,
		Height: 2160,
		Screens: []leveldata.Screen{
			{ID: "intro", Title: "Intro", YStart: 0, Height: 720},
			{ID: "work", Title: "Work", YStart: 720, Height: 720},
			{ID: "contact", Title: "Contact", YStart: 1440, Height: 720},
		},
		Planets:   []leveldata.PlanetSpawn{{Name: "home", X: 480, Y: 560, Radius: 100}},
		Platforms: []leveldata.PlatformSpawn{{Name: "p-work", X: 300, Y: 1200, W: 200, H: 20}},
		Bubbles:   []leveldata.BubbleSpawn{{Name: "b-work", Text: "Selected work", Platform: "p-work"}},
		Anchors: []leveldata.SpawnAnchor{
			{Screen: "intro", Kind: leveldata.AnchorPlanetTop},
			{Screen: "contact", Kind: leveldata.AnchorPoint, X: 480, Y: 1800},
		},
	}
}

type harness struct {
	scene *WorldScene
	clock *components.ManualClock
	keys  *stubKeys
}

func newHarness(opts SceneOptions) *harness {
	h := &harness{
		clock: &components.ManualClock{T: time.Unix(0, 0)},
		keys:  &stubKeys{pressed: map[ebiten.Key]bool{}},
	}
	opts.Seed = 42
	opts.Clock = h.clock
	opts.Keys = h.keys
	h.scene = NewWorldScene(testLevel(), opts)
	return h
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(16 * time.Millisecond)
		h.scene.Update()
	}
}

func (h *harness) player() *components.PlayerData {
	entry, _ := tags.Player.First(h.scene.ECS().World)
	return components.Player.Get(entry)
}

func (h *harness) camera() *components.CameraData {
	entry, _ := components.Camera.First(h.scene.ECS().World)
	return components.Camera.Get(entry)
}

func (h *harness) platform() *components.PlatformData {
	entry, _ := tags.Platform.First(h.scene.ECS().World)
	return components.Platform.Get(entry)
}

func idOf(id *string) string {
	if id == nil {
		return "<nil>"
	}
	return *id
}

func TestScreenChangeAnnouncedOnceThenOnChange(t *testing.T) {
	var got []string
	h := newHarness(SceneOptions{})
	h.scene.OnScreenChange(func(id *string) { got = append(got, idOf(id)) })

	h.step(6)
	if len(got) != 1 || got[0] != "intro" {
		t.Fatalf("after settling: changes = %v, want [intro]", got)
	}

	if !h.scene.GoToScreen("work", systems.NavOptions{}) {
		t.Fatal("GoToScreen(work) = false")
	}
	p := h.player()
	if p.X != 376 || p.Y != 1152 {
		t.Errorf("snap position = (%v, %v), want (376, 1152)", p.X, p.Y)
	}
	if !p.Fx.Active() {
		t.Error("snap should start the spawn effect")
	}

	h.step(1)
	if len(got) != 2 || got[1] != "work" {
		t.Fatalf("after jump: changes = %v, want [intro work]", got)
	}
	if idOf(h.scene.CurrentScreen()) != "work" {
		t.Errorf("CurrentScreen = %s", idOf(h.scene.CurrentScreen()))
	}
}

func TestStartScreenOption(t *testing.T) {
	var got []string
	h := newHarness(SceneOptions{
		StartScreen:    "work",
		OnScreenChange: func(id *string) { got = append(got, idOf(id)) },
	})

	h.step(1)
	if len(got) != 1 || got[0] != "work" {
		t.Fatalf("changes = %v, want [work]", got)
	}
}

func TestGoToUnknownScreenIsNoop(t *testing.T) {
	h := newHarness(SceneOptions{})
	h.step(1)

	p := h.player()
	x, y := p.X, p.Y
	scroll := h.camera().ScrollY

	if h.scene.GoToScreen("nowhere", systems.NavOptions{Smooth: true}) {
		t.Fatal("GoToScreen(nowhere) = true")
	}
	if p.X != x || p.Y != y {
		t.Errorf("player moved to (%v, %v)", p.X, p.Y)
	}
	if cam := h.camera(); cam.Navigating() || cam.ScrollY != scroll {
		t.Errorf("camera changed: navigating=%v scroll=%v", cam.Navigating(), cam.ScrollY)
	}
}

func TestSmoothNavigationSnapsOnArrival(t *testing.T) {
	h := newHarness(SceneOptions{})
	h.step(1)

	if !h.scene.GoToScreen("contact", systems.NavOptions{Smooth: true}) {
		t.Fatal("GoToScreen(contact) = false")
	}
	if !h.camera().Navigating() {
		t.Fatal("camera should be navigating")
	}

	frames := 0
	for h.camera().Navigating() && frames < 300 {
		h.step(1)
		frames++
	}
	if h.camera().Navigating() {
		t.Fatal("camera never arrived")
	}

	if got := h.camera().ScrollY; got != 1440 {
		t.Errorf("scroll = %v, want 1440", got)
	}
	p := h.player()
	if p.X != 456 || p.Y != 1752 {
		t.Errorf("player = (%v, %v), want anchor (456, 1752)", p.X, p.Y)
	}
	if !p.Fx.Active() {
		t.Error("arrival should start the spawn effect")
	}
	if idOf(h.scene.CurrentScreen()) != "contact" {
		t.Errorf("CurrentScreen = %s", idOf(h.scene.CurrentScreen()))
	}
}

func TestFallingOutOfTheWorldRespawns(t *testing.T) {
	h := newHarness(SceneOptions{})
	h.step(1)

	h.platform().Landings = 2
	h.player().Y = 2300

	h.step(1)
	p := h.player()
	if p.X != 456 || p.Y != 412 {
		t.Errorf("respawn = (%v, %v), want planet top (456, 412)", p.X, p.Y)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v after respawn", p.VY)
	}
	if got := h.platform().Landings; got != 0 {
		t.Errorf("platform landings = %d, want reset to 0", got)
	}
}

func TestBubbleLabelReachesOverlay(t *testing.T) {
	h := newHarness(SceneOptions{})
	h.step(1)
	if n := h.scene.Overlay().Len(); n != 0 {
		t.Fatalf("labels before reaching the bubble = %d", n)
	}

	h.scene.GoToScreen("work", systems.NavOptions{})
	h.step(1)
	if n := h.scene.Overlay().Len(); n != 1 {
		t.Fatalf("labels after landing by the bubble = %d, want 1", n)
	}
}

func TestTelemetryIsScreenSpace(t *testing.T) {
	var last events.PlayerTelemetry
	calls := 0
	h := newHarness(SceneOptions{
		OnTelemetry: func(ev events.PlayerTelemetry) {
			last = ev
			calls++
		},
	})

	h.step(3)
	if calls != 3 {
		t.Fatalf("telemetry calls = %d, want 3", calls)
	}
	p := h.player()
	if last.X != p.X || last.Y != p.Y-h.camera().ScrollY {
		t.Errorf("telemetry = (%v, %v), want (%v, %v)", last.X, last.Y, p.X, p.Y-h.camera().ScrollY)
	}
}

func TestDisposeStopsPolling(t *testing.T) {
	changes := 0
	h := newHarness(SceneOptions{
		OnScreenChange: func(*string) { changes++ },
	})
	h.step(2)
	polls := h.keys.polls
	if polls == 0 {
		t.Fatal("keys were never polled")
	}

	h.scene.Dispose()
	h.step(5)
	if h.keys.polls != polls {
		t.Errorf("polls after dispose = %d, want %d", h.keys.polls, polls)
	}
	if h.scene.GoToScreen("work", systems.NavOptions{}) {
		t.Error("GoToScreen after dispose = true")
	}
	if changes != 1 {
		t.Errorf("screen changes = %d, want 1", changes)
	}
	if !h.scene.Disposed() {
		t.Error("Disposed() = false")
	}
}

func TestWalkInput(t *testing.T) {
	h := newHarness(SceneOptions{})
	h.step(5)
	x := h.player().X

	h.keys.pressed[ebiten.KeyD] = true
	h.step(10)
	p := h.player()
	if p.X <= x {
		t.Errorf("X = %v, want > %v after holding D", p.X, x)
	}
	if p.Facing() != components.FacingRight {
		t.Errorf("facing = %v", p.Facing())
	}
}
