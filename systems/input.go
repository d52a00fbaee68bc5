package systems

import (
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding lists the physical inputs that trigger one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings is the fixed keyboard and gamepad map.
var Bindings = [cfg.ActionCount]Binding{
	cfg.ActionLeft: {
		Keys:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionRight: {
		Keys:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionDuck: {
		Keys:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
}

// KeySource reports raw device state.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsButtonPressed(button ebiten.StandardGamepadButton) bool
}

// EbitenKeys reads the keyboard and every gamepad with a standard layout.
type EbitenKeys struct {
	gamepads []ebiten.GamepadID
}

func (k *EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (k *EbitenKeys) IsButtonPressed(button ebiten.StandardGamepadButton) bool {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(id, button) {
			return true
		}
	}
	return false
}

// InputSystem polls a KeySource into the Input singleton.
type InputSystem struct {
	source KeySource
}

func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source}
}

// Detach stops all polling. Every action reads as released afterwards.
func (s *InputSystem) Detach() {
	s.source = nil
}

func (s *InputSystem) Attached() bool {
	return s.source != nil
}

// Update must run before UpdatePlayer.
func (s *InputSystem) Update(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Advance()
	if s.source == nil {
		return
	}

	for action, binding := range Bindings {
		input.Current[action] = s.pressed(binding)
	}
}

func (s *InputSystem) pressed(b Binding) bool {
	for _, key := range b.Keys {
		if s.source.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range b.Buttons {
		if s.source.IsButtonPressed(btn) {
			return true
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
