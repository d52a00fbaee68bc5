package components

import (
	"github.com/automoto/skyfolio/assets/animations"
	"github.com/automoto/skyfolio/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Animations       map[config.StateID]*animations.Animation
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	FrameWidth       int
	FrameHeight      int
}

// NewAnimationData builds one animation per state definition.
func NewAnimationData(defs map[config.StateID]config.AnimationDef, intervalMs float64, frameW, frameH int) *AnimationData {
	a := &AnimationData{
		Animations:  make(map[config.StateID]*animations.Animation, len(defs)),
		FrameWidth:  frameW,
		FrameHeight: frameH,
	}
	for state, def := range defs {
		a.Animations[state] = animations.NewAnimation(def.Row, def.Frames, intervalMs)
	}
	a.SetState(config.Idle)
	return a
}

// SetState switches animations. Frame and timer restart only when the state
// actually changes.
func (a *AnimationData) SetState(state config.StateID) {
	if a.CurrentAnimation != nil && a.CurrentState == state {
		return
	}
	a.CurrentState = state
	a.CurrentAnimation = a.Animations[state]
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Restart()
	}
}

func (a *AnimationData) Update(dtMs float64) {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Update(dtMs)
	}
}

func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

func (a *AnimationData) Row() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Row
}

var Animation = donburi.NewComponentType[AnimationData]()
