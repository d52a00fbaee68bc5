package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/fonts"
	"github.com/automoto/skyfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.DrawBodies {
		drawBodies(e, screen)
	}
	if cfg.Debug.ShowHUD {
		drawHUD(e, screen)
	}
}

func drawBodies(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	scroll := scrollOf(e)
	height := float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if obj.Y+obj.H < scroll || obj.Y > scroll+height {
			continue
		}
		x := obj.X
		y := obj.Y - scroll

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
			if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() && !components.Platform.Get(entry).IsCollidable() {
				c = color.RGBA{120, 40, 40, 255}
			}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	tags.Planet.Each(e.World, func(entry *donburi.Entry) {
		c := components.Planet.Get(entry)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y-scroll), float32(c.Radius), 1, color.RGBA{0, 255, 0, 255}, false)
	})
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	_, player, ok := playerOf(e)
	if !ok {
		return
	}

	screenID := "-"
	if screens, ok := screensOf(e); ok {
		if id := screens.CurrentID(); id != nil {
			screenID = *id
		}
	}

	lines := []string{
		fmt.Sprintf("fps %.0f  dt %.1fms", ebiten.ActualFPS(), deltaMs(e)),
		fmt.Sprintf("pos %.1f,%.1f  vel %.2f,%.2f", player.X, player.Y, player.VX, player.VY),
		fmt.Sprintf("state %s  ground %v  precise %v", player.State, player.OnGround, player.Precise),
		fmt.Sprintf("screen %s  scroll %.1f", screenID, scrollOf(e)),
	}

	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, 8, cfg.Overlay.NavBarHeight+8+(i+1)*lineHeight, color.White) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
