package config

// AnimationDef locates one animation on a sprite sheet: a row of Frames cells.
type AnimationDef struct {
	Row    int
	Frames int
}

// PlayerAnimations maps each player state to its sheet row. Walk and idle share
// row 0; idle holds on the first frame.
var PlayerAnimations = map[StateID]AnimationDef{
	Idle: {Row: 0, Frames: 1},
	Walk: {Row: 0, Frames: 4},
	Jump: {Row: 2, Frames: 4},
}
