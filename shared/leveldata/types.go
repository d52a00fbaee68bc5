// Package leveldata parses the portfolio world from a TMX file.
// It has no dependencies on ebitengine, donburi or resolv. Pure data only.
package leveldata

import "errors"

var (
	ErrNoScreens = errors.New("level has no screens")
	ErrNoPlanet  = errors.New("level has no planet for the initial spawn")
)

// Level is everything the world is built from.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	Screens   []Screen
	Platforms []PlatformSpawn
	Planets   []PlanetSpawn
	Bubbles   []BubbleSpawn
	Anchors   []SpawnAnchor
}

// Screen is one vertical band of the world.
type Screen struct {
	ID      string
	Title   string
	YStart  float64
	Height  float64
	Gravity float64 // 0 keeps the player default
	Precise bool
}

// PlatformSpawn is a destructible platform rectangle.
type PlatformSpawn struct {
	Name       string
	X, Y, W, H float64
}

// PlanetSpawn is a circular platform.
type PlanetSpawn struct {
	Name   string
	X, Y   float64
	Radius float64
}

// BubbleSpawn is an info bubble. When Platform is set the bubble is anchored
// above that platform and X, Y are ignored.
type BubbleSpawn struct {
	Name     string
	Text     string
	Platform string
	X, Y     float64
}

// Anchor kinds.
const (
	AnchorPoint     = "point"
	AnchorPlanetTop = "planet-top"
)

// SpawnAnchor is the fallback position for a screen with no platform to
// snap onto.
type SpawnAnchor struct {
	Screen string
	Kind   string
	X, Y   float64
}

// WorldHeight is the sum of all screen heights.
func (l *Level) WorldHeight() float64 {
	h := 0.0
	for _, s := range l.Screens {
		h += s.Height
	}
	return h
}

// PlatformByName returns the platform spawn with the given name.
func (l *Level) PlatformByName(name string) (PlatformSpawn, bool) {
	for _, p := range l.Platforms {
		if p.Name == name {
			return p, true
		}
	}
	return PlatformSpawn{}, false
}

// AnchorFor returns the fallback anchor registered for a screen.
func (l *Level) AnchorFor(screenID string) (SpawnAnchor, bool) {
	for _, a := range l.Anchors {
		if a.Screen == screenID {
			return a, true
		}
	}
	return SpawnAnchor{}, false
}
