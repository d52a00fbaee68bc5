package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/events"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/automoto/skyfolio/systems"
	"github.com/automoto/skyfolio/systems/factory"
	"github.com/automoto/skyfolio/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
)

// SceneOptions configures a WorldScene. Zero values pick the defaults: the
// wall clock, the real keyboard and gamepads, a time based seed.
type SceneOptions struct {
	StartScreen string
	Seed        int64
	Clock       components.Clock
	Keys        systems.KeySource
	ShowNav     bool

	OnScreenChange func(id *string)
	OnTelemetry    func(events.PlayerTelemetry)
}

// WorldScene owns the portfolio world and runs it one frame per Update.
type WorldScene struct {
	ecs   *ecs.ECS
	level *leveldata.Level
	opts  SceneOptions
	once  sync.Once

	input   *systems.InputSystem
	overlay *systems.Overlay
	nav     *ui.NavUI

	current  *string
	disposed bool
}

func NewWorldScene(level *leveldata.Level, opts SceneOptions) *WorldScene {
	return &WorldScene{level: level, opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.disposed {
		return
	}

	ws.ecs.Update()
	devents.ProcessAllEvents(ws.ecs.World)

	if ws.nav != nil {
		ws.nav.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if ws.nav != nil {
		ws.nav.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	seed := ws.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	keys := ws.opts.Keys
	if keys == nil {
		keys = &systems.EbitenKeys{}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ws.input = systems.NewInputSystem(keys)
	ws.overlay = systems.NewOverlay()

	// Collision-relevant updates run before cosmetic ones.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(ws.input.Update)
	ecs.AddSystem(systems.UpdatePlanets)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateBubbles)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateWorldBounds)
	ecs.AddSystem(systems.UpdateScreens)
	ecs.AddSystem(systems.PublishTelemetry)

	ecs.AddRenderer(archetypes.Default, systems.DrawBackground)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlanets)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlatforms)
	ecs.AddRenderer(archetypes.Default, systems.DrawBubbles)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.Default, ws.overlay.Draw)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	ws.ecs = ecs

	factory.CreateWorld(ecs, ws.level, factory.WorldOptions{
		ViewHeight: float64(cfg.C.Height),
		Clock:      ws.opts.Clock,
		Rng:        rand.New(rand.NewSource(seed)),
	})

	ws.overlay.Subscribe(ecs.World)
	events.ScreenChangedEvent.Subscribe(ecs.World, ws.onScreenChanged)
	events.PlayerTelemetryEvent.Subscribe(ecs.World, ws.onTelemetry)

	if ws.opts.ShowNav {
		if entry, ok := components.ScreenManager.First(ecs.World); ok {
			screens := components.ScreenManager.Get(entry).Screens()
			ws.nav = ui.NewNavUI(screens, func(id string) {
				ws.GoToScreen(id, systems.NavOptions{Smooth: true})
			})
		}
	}

	if ws.opts.StartScreen != "" {
		systems.GoToScreen(ecs, ws.opts.StartScreen, systems.NavOptions{})
	}

	log.Debug("world scene ready", "level", ws.level.Name, "seed", seed)
}

func (ws *WorldScene) onScreenChanged(_ donburi.World, ev events.ScreenChanged) {
	ws.current = ev.ID
	if ws.nav != nil {
		ws.nav.SetActive(ev.ID)
	}
	if ws.opts.OnScreenChange != nil {
		ws.opts.OnScreenChange(ev.ID)
	}
}

func (ws *WorldScene) onTelemetry(_ donburi.World, ev events.PlayerTelemetry) {
	if ws.opts.OnTelemetry != nil {
		ws.opts.OnTelemetry(ev)
	}
}

// GoToScreen is the navigation entry point for external UI. Unknown ids and
// calls after Dispose are ignored.
func (ws *WorldScene) GoToScreen(id string, opts systems.NavOptions) bool {
	ws.once.Do(ws.configure)
	if ws.disposed {
		return false
	}
	return systems.GoToScreen(ws.ecs, id, opts)
}

// OnScreenChange replaces the screen change callback.
func (ws *WorldScene) OnScreenChange(fn func(id *string)) {
	ws.opts.OnScreenChange = fn
}

// CurrentScreen is the id last announced, nil outside every screen.
func (ws *WorldScene) CurrentScreen() *string {
	return ws.current
}

// Overlay exposes the bubble labels currently shown.
func (ws *WorldScene) Overlay() *systems.Overlay {
	ws.once.Do(ws.configure)
	return ws.overlay
}

func (ws *WorldScene) ECS() *ecs.ECS {
	ws.once.Do(ws.configure)
	return ws.ecs
}

// Dispose stops input polling and drops the callbacks. Later Update calls do
// nothing; a frame already running completes.
func (ws *WorldScene) Dispose() {
	ws.once.Do(func() {})
	ws.disposed = true
	if ws.input != nil {
		ws.input.Detach()
	}
	ws.opts.OnScreenChange = nil
	ws.opts.OnTelemetry = nil
}

// Disposed reports whether Dispose was called.
func (ws *WorldScene) Disposed() bool {
	return ws.disposed
}
