package systems

import (
	"sort"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/events"
	"github.com/automoto/skyfolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverlayLabel is one visible bubble label. X and Y are world coordinates of
// its center.
type OverlayLabel struct {
	X, Y  float64
	Text  string
	lines []string
}

// Overlay renders bubble labels above the world. It learns about bubbles only
// through the events they publish.
type Overlay struct {
	labels map[string]*OverlayLabel
	ids    []string
}

func NewOverlay() *Overlay {
	return &Overlay{labels: map[string]*OverlayLabel{}}
}

func (o *Overlay) Subscribe(w donburi.World) {
	events.BubbleShownEvent.Subscribe(w, o.onShown)
	events.BubbleMovedEvent.Subscribe(w, o.onMoved)
	events.BubbleHiddenEvent.Subscribe(w, o.onHidden)
}

func (o *Overlay) onShown(_ donburi.World, ev events.BubbleShown) {
	o.labels[ev.ID] = &OverlayLabel{X: ev.X, Y: ev.Y, Text: ev.Text}
	o.sortIDs()
}

func (o *Overlay) onMoved(_ donburi.World, ev events.BubbleMoved) {
	if l, ok := o.labels[ev.ID]; ok {
		l.X, l.Y = ev.X, ev.Y
	}
}

func (o *Overlay) onHidden(_ donburi.World, ev events.BubbleHidden) {
	delete(o.labels, ev.ID)
	o.sortIDs()
}

func (o *Overlay) sortIDs() {
	o.ids = o.ids[:0]
	for id := range o.labels {
		o.ids = append(o.ids, id)
	}
	sort.Strings(o.ids)
}

// Label returns a visible label by bubble id.
func (o *Overlay) Label(id string) (OverlayLabel, bool) {
	l, ok := o.labels[id]
	if !ok {
		return OverlayLabel{}, false
	}
	return *l, true
}

func (o *Overlay) Len() int {
	return len(o.labels)
}

// Draw places every label in screen space, wrapped to the label width.
func (o *Overlay) Draw(e *ecs.ECS, screen *ebiten.Image) {
	if len(o.ids) == 0 || !fonts.Loaded(fonts.Label) {
		return
	}
	face := fonts.Label.Get()
	measure := fonts.MeasureFace(face)
	scroll := scrollOf(e)
	radius := float32(cfg.Overlay.LabelDiameter / 2)

	for _, id := range o.ids {
		l := o.labels[id]
		if l.lines == nil {
			l.lines = fonts.WrapText(l.Text, cfg.Overlay.LabelWidth, measure)
		}

		cx, cy := l.X, l.Y-scroll
		vector.FillCircle(screen, float32(cx), float32(cy), radius, fade(cfg.ColorBubble, 0.16), true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 1.5, fade(cfg.ColorBubbleText, 0.2), true)

		ascent := float64(face.Metrics().Ascent.Ceil())
		top := cy - float64(len(l.lines))*cfg.Overlay.LineHeight/2
		for i, line := range l.lines {
			x := int(cx) - measure(line)/2
			y := int(top + float64(i)*cfg.Overlay.LineHeight + ascent)
			text.Draw(screen, line, face, x, y, cfg.ColorBubbleText) //nolint:staticcheck
		}
	}
}
