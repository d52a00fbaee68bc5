package systems

import (
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/events"
	"github.com/automoto/skyfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// worldSink publishes bubble lifecycle calls on the world event bus.
type worldSink struct {
	w donburi.World
}

func (s worldSink) Show(id string, x, y float64, text string) {
	events.BubbleShownEvent.Publish(s.w, events.BubbleShown{ID: id, X: x, Y: y, Text: text})
}

func (s worldSink) Move(id string, x, y float64) {
	events.BubbleMovedEvent.Publish(s.w, events.BubbleMoved{ID: id, X: x, Y: y})
}

func (s worldSink) Hide(id string) {
	events.BubbleHiddenEvent.Publish(s.w, events.BubbleHidden{ID: id})
}

func UpdateBubbles(e *ecs.ECS) {
	_, player, ok := playerOf(e)
	if !ok {
		return
	}
	dt := deltaMs(e)
	sink := worldSink{w: e.World}
	bounds := player.Bounds()

	tags.Bubble.Each(e.World, func(entry *donburi.Entry) {
		components.Bubble.Get(entry).Update(bounds, dt, sink)
	})
}
