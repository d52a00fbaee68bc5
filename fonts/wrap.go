package fonts

import (
	"strings"

	"golang.org/x/image/font"
)

// Measure returns the advance width of s in pixels.
type Measure func(s string) int

// MeasureFace measures with a font face.
func MeasureFace(face font.Face) Measure {
	return func(s string) int {
		return font.MeasureString(face, s).Ceil()
	}
}

// WrapText breaks s into lines no wider than maxWidth, splitting on spaces.
// A word wider than maxWidth gets a line of its own.
func WrapText(s string, maxWidth int, measure Measure) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
