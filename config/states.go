package config

// StateID names an animation state of the player.
type StateID int

const (
	Idle StateID = iota
	Walk
	Jump
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	}
	return "unknown"
}
