package animations

// Animation cycles through the cells of one sprite sheet row on a fixed
// millisecond interval.
type Animation struct {
	Row        int
	Frames     int
	IntervalMs float64
	timer      float64
	frame      int
}

// Update advances at most one frame per call, once the accumulated time
// reaches the interval.
func (a *Animation) Update(dtMs float64) {
	if a.Frames <= 1 {
		a.frame = 0
		return
	}
	a.timer += dtMs
	if a.timer >= a.IntervalMs {
		a.timer = 0
		a.frame = (a.frame + 1) % a.Frames
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
}

func NewAnimation(row, frames int, intervalMs float64) *Animation {
	return &Animation{
		Row:        row,
		Frames:     frames,
		IntervalMs: intervalMs,
	}
}
