package gamemath

import "math"

// FrameScale converts an elapsed time in milliseconds into reference frames.
// At 60 fps a 16.67 ms step is one frame.
func FrameScale(dtMs, referenceFPS float64) float64 {
	if referenceFPS <= 0 {
		return 1
	}
	return dtMs / (1000 / referenceFPS)
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves current toward target with an exponential rate in 1/s.
// The result never overshoots the target.
func Approach(current, target, rate, dtSec float64) float64 {
	if dtSec <= 0 || rate <= 0 {
		return current
	}
	k := 1 - math.Exp(-rate*dtSec)
	return current + (target-current)*k
}

// Rotate rotates the point (x, y) about the origin by angle radians.
func Rotate(x, y, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	return x*c - y*s, x*s + y*c
}
