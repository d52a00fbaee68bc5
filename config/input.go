package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionLeft ActionID = iota
	ActionRight
	ActionJump
	ActionDuck
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{"left", "right", "jump", "duck"}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
