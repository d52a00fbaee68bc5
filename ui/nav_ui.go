package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NavUI is the strip of screen buttons along the top of the window.
type NavUI struct {
	UI *ebitenui.UI

	// OnSelect receives the id of the clicked screen.
	OnSelect func(id string)

	ids     []string
	titles  []string
	buttons []*widget.Button
	active  string

	face text.Face
}

// NewNavUI creates one button per screen in world order.
func NewNavUI(screens []components.WorldScreen, onSelect func(id string)) *NavUI {
	n := &NavUI{OnSelect: onSelect}
	for _, s := range screens {
		n.ids = append(n.ids, s.ID)
		n.titles = append(n.titles, s.Title)
	}

	n.loadFonts()
	n.buildUI()

	return n
}

func (n *NavUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	n.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Overlay.NavFontSize,
	}
}

func (n *NavUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.ColorNavBar)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, cfg.Overlay.NavBarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for i := range n.ids {
		id := n.ids[i]
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(96, cfg.Overlay.NavBarHeight-12),
			),
			widget.ButtonOpts.Image(n.buttonImage()),
			widget.ButtonOpts.Text(n.titles[i], &n.face, &widget.ButtonTextColor{
				Idle:     color.RGBA{220, 230, 255, 255},
				Hover:    color.RGBA{255, 255, 255, 255},
				Pressed:  color.RGBA{200, 210, 240, 255},
				Disabled: color.RGBA{255, 255, 255, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if n.OnSelect != nil {
					n.OnSelect(id)
				}
			}),
		)
		n.buttons = append(n.buttons, button)
		bar.AddChild(button)
	}

	rootContainer.AddChild(bar)

	n.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (n *NavUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.ColorNavIdle),
		Hover:    image.NewNineSliceColor(cfg.ColorNavHover),
		Pressed:  image.NewNineSliceColor(cfg.ColorNavActive),
		Disabled: image.NewNineSliceColor(cfg.ColorNavActive),
	}
}

// SetActive marks the button of the current screen. The active button is
// disabled so it renders with the active color and ignores clicks.
func (n *NavUI) SetActive(id *string) {
	active := ""
	if id != nil {
		active = *id
	}
	if active == n.active {
		return
	}
	n.active = active

	for i, b := range n.buttons {
		isActive := n.ids[i] == active
		b.GetWidget().Disabled = isActive
		if textWidget := b.Text(); textWidget != nil {
			if isActive {
				textWidget.Label = "> " + n.titles[i]
			} else {
				textWidget.Label = n.titles[i]
			}
		}
	}
}

// Active returns the id of the highlighted screen, or "" when none is.
func (n *NavUI) Active() string {
	return n.active
}

func (n *NavUI) Update() {
	n.UI.Update()
}

func (n *NavUI) Draw(screen *ebiten.Image) {
	n.UI.Draw(screen)
}
