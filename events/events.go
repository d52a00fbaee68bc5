// Package events declares the typed messages systems exchange through the
// donburi world. Events are queued during Update and delivered when the
// scene calls events.ProcessAllEvents; with no subscriber they are dropped.
package events

import "github.com/yohamta/donburi/features/events"

// BubbleShown is published when a bubble starts floating. X and Y are world
// coordinates of the bubble center.
type BubbleShown struct {
	ID   string
	X, Y float64
	Text string
}

type BubbleMoved struct {
	ID   string
	X, Y float64
}

type BubbleHidden struct {
	ID string
}

// ScreenChanged carries the new screen id, nil when the player left every
// screen band.
type ScreenChanged struct {
	ID *string
}

// PlayerTelemetry is published every frame. Y is in screen space.
type PlayerTelemetry struct {
	X, Y   float64
	VX, VY float64
}

var (
	BubbleShownEvent     = events.NewEventType[BubbleShown]()
	BubbleMovedEvent     = events.NewEventType[BubbleMoved]()
	BubbleHiddenEvent    = events.NewEventType[BubbleHidden]()
	ScreenChangedEvent   = events.NewEventType[ScreenChanged]()
	PlayerTelemetryEvent = events.NewEventType[PlayerTelemetry]()
)
