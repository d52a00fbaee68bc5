package components

import (
	cfg "github.com/automoto/skyfolio/config"
	"github.com/yohamta/donburi"
)

// ActionQuery is the read side of input consumed by the player.
type ActionQuery interface {
	IsActionPressed(action cfg.ActionID) bool
}

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Advance rolls the current frame into the previous one and clears it.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func (in *InputData) IsActionPressed(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return in.Current[action]
}

func (in *InputData) JustPressed(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return in.Current[action] && !in.Previous[action]
}

func (in *InputData) JustReleased(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return !in.Current[action] && in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
