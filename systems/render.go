package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/skyfolio/assets"
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/automoto/skyfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	fillVertices []ebiten.Vertex
	fillIndices  []uint16
	whitePixel   *ebiten.Image
)

// cullPadding keeps things that straddle the viewport edge.
const cullPadding = 64.0

func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.ColorBackground)
}

// visibleBand reports whether [top, bottom] in world space is on screen.
func visibleBand(screen *ebiten.Image, scroll, top, bottom float64) bool {
	h := float64(screen.Bounds().Dy())
	return bottom >= scroll-cullPadding && top <= scroll+h+cullPadding
}

func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	scroll := scrollOf(e)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		if !p.Visible() || !visibleBand(screen, scroll, p.Y-p.H*4, p.Y+p.H*20) {
			return
		}

		switch p.State {
		case components.PlatformNormal, components.PlatformCracking:
			drawSlab(screen, p, scroll)
		case components.PlatformFractured:
			drawFragments(screen, p, scroll)
		}
		drawParticles(screen, p.Particles, scroll)
	})
}

func drawSlab(screen *ebiten.Image, p *components.PlatformData, scroll float64) {
	j := p.Jitter
	ox := p.X + j.OffsetX
	oy := p.Y + j.OffsetY - scroll
	cx, cy := ox+p.W/2, oy+p.H/2

	// toScreen maps a point relative to the slab corner, applying the jitter
	// rotation about the slab center.
	toScreen := func(v dmath.Vec2) (float32, float32) {
		x, y := v.X-p.W/2, v.Y-p.H/2
		if j.Angle != 0 {
			x, y = gamemath.Rotate(x, y, j.Angle)
		}
		return float32(cx + x), float32(cy + y)
	}

	body := roundedRect(p.W, p.H, cfg.Platform.CornerRadius)
	fillPolygon(screen, body, toScreen, cfg.ColorPlatform, 0.92)

	r := cfg.Platform.CornerRadius
	x0, y0 := toScreen(dmath.Vec2{X: r, Y: 1})
	x1, y1 := toScreen(dmath.Vec2{X: p.W - r, Y: 1})
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.ColorPlatformEdge, true)

	if p.Highlight > 0 {
		vector.StrokeRect(screen, float32(ox-1), float32(oy-1), float32(p.W+2), float32(p.H+2), 2,
			fade(cfg.ColorHighlight, p.Highlight*0.8), true)
	}

	for i := range p.Cracks {
		c := &p.Cracks[i]
		strokePolyline(screen, c.Visible(), toScreen, 1.4, cfg.ColorCrack)
		for b := range c.Branches {
			strokePolyline(screen, c.VisibleBranch(b), toScreen, 1, cfg.ColorCrack)
		}
	}
}

func drawFragments(screen *ebiten.Image, p *components.PlatformData, scroll float64) {
	for i := range p.Fragments {
		f := &p.Fragments[i]
		if f.Expired() {
			continue
		}
		alpha := f.Alpha()

		toScreen := func(v dmath.Vec2) (float32, float32) {
			x, y := gamemath.Rotate(v.X, v.Y, f.Angle)
			return float32(f.Pos.X + x), float32(f.Pos.Y + y - scroll)
		}
		fillPolygon(screen, f.Poly, toScreen, cfg.ColorPlatform, alpha*0.92)
		for _, h := range f.Hairlines {
			strokePolyline(screen, h[:], toScreen, 1, fade(cfg.ColorCrack, alpha))
		}
	}
}

func drawParticles(screen *ebiten.Image, ps []components.Particle, scroll float64) {
	for i := range ps {
		pt := &ps[i]
		vector.FillCircle(screen, float32(pt.Pos.X), float32(pt.Pos.Y-scroll), float32(pt.CurrentRadius()),
			fade(particleColor(pt.Kind), pt.Alpha()), true)
	}
}

func particleColor(k components.ParticleKind) color.RGBA {
	switch k {
	case components.ParticleSpark:
		return cfg.ColorSpark
	case components.ParticleFrost:
		return cfg.ColorFrost
	case components.ParticleDust:
		return cfg.ColorDust
	case components.ParticleTrail:
		return cfg.ColorBubble
	}
	return cfg.ColorShard
}

func DrawPlanets(e *ecs.ECS, screen *ebiten.Image) {
	scroll := scrollOf(e)

	tags.Planet.Each(e.World, func(entry *donburi.Entry) {
		c := components.Planet.Get(entry)
		if !visibleBand(screen, scroll, c.Y-c.Radius, c.Y+c.Radius) {
			return
		}
		x, y, r := float32(c.X), float32(c.Y-scroll), float32(c.Radius)
		vector.FillCircle(screen, x, y, r, cfg.ColorPlanet, true)
		vector.StrokeCircle(screen, x, y, r, 3, cfg.ColorPlanetRim, true)

		// Spokes make the spin visible.
		for k := 0; k < 3; k++ {
			a := c.Angle + float64(k)*2*math.Pi/3
			sx, sy := math.Cos(a)*c.Radius*0.85, math.Sin(a)*c.Radius*0.85
			vector.StrokeLine(screen, x, y, x+float32(sx), y+float32(sy), 2, fade(cfg.ColorPlanetRim, 0.5), true)
		}
	})
}

func DrawBubbles(e *ecs.ECS, screen *ebiten.Image) {
	scroll := scrollOf(e)

	tags.Bubble.Each(e.World, func(entry *donburi.Entry) {
		b := components.Bubble.Get(entry)
		drawParticles(screen, b.Trail, scroll)
		if !b.Visible() || b.State == components.BubbleTriggered {
			// The overlay draws the floating label.
			return
		}
		alpha := b.Alpha()
		x, y, r := float32(b.X), float32(b.Y-scroll), float32(b.DrawRadius())
		vector.FillCircle(screen, x, y, r, fade(cfg.ColorBubble, alpha*0.18), true)
		vector.StrokeCircle(screen, x, y, r, 1.5, fade(cfg.ColorBubble, alpha*0.7), true)
	})
}

// DrawPlayer draws the current animation cell, or a solid box when the sheet
// is missing. Spawn effect alpha and scale apply to drawing only.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, player, ok := playerOf(e)
	if !ok {
		return
	}
	scroll := scrollOf(e)
	alpha, scale := player.Fx.Transform()

	// Anchor at bottom-center so the feet stay on the collision box.
	footX := player.X + player.W/2
	footY := player.Y + player.H - scroll

	sheet := assets.LoadSprite(cfg.Player.SpritePath)
	if sheet == nil || !entry.HasComponent(components.Animation) {
		w, h := player.W*scale, player.H*scale
		vector.FillRect(screen, float32(footX-w/2), float32(footY-h), float32(w), float32(h),
			fade(cfg.ColorPlayerFallback, alpha), false)
		return
	}

	anim := components.Animation.Get(entry)
	sx, sy := anim.Frame()*anim.FrameWidth, anim.Row()*anim.FrameHeight
	cell := sheet.SubImage(image.Rect(sx, sy, sx+anim.FrameWidth, sy+anim.FrameHeight)).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
	drawOp.GeoM.Scale(player.W/float64(anim.FrameWidth)*scale, player.H/float64(anim.FrameHeight)*scale)
	if player.Facing() == components.FacingLeft {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(footX, footY)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(cell, drawOp)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := gamemath.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func strokePolyline(screen *ebiten.Image, pts []dmath.Vec2, xf func(dmath.Vec2) (float32, float32), width float32, clr color.RGBA) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := xf(pts[i-1])
		x1, y1 := xf(pts[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

// roundedRect outlines a w x h box with its corner at the origin.
func roundedRect(w, h, r float64) []dmath.Vec2 {
	r = min(r, w/2, h/2)
	const steps = 4
	corners := [4]struct{ cx, cy, start float64 }{
		{w - r, r, -math.Pi / 2},
		{w - r, h - r, 0},
		{r, h - r, math.Pi / 2},
		{r, r, math.Pi},
	}
	pts := make([]dmath.Vec2, 0, 4*(steps+1))
	for _, c := range corners {
		for k := 0; k <= steps; k++ {
			a := c.start + float64(k)*(math.Pi/2)/steps
			pts = append(pts, dmath.Vec2{X: c.cx + math.Cos(a)*r, Y: c.cy + math.Sin(a)*r})
		}
	}
	return pts
}

// fillPolygon fills a star-shaped polygon as a triangle fan around its
// vertex centroid.
func fillPolygon(dst *ebiten.Image, poly []dmath.Vec2, toScreen func(dmath.Vec2) (float32, float32), clr color.RGBA, alpha float64) {
	n := len(poly)
	if n < 3 {
		return
	}
	if whitePixel == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		whitePixel = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var center dmath.Vec2
	for _, v := range poly {
		center.X += v.X
		center.Y += v.Y
	}
	center.X /= float64(n)
	center.Y /= float64(n)

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(gamemath.Clamp(alpha, 0, 1)) * float32(clr.A) / 255
	vertex := func(v dmath.Vec2) ebiten.Vertex {
		x, y := toScreen(v)
		return ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a}
	}

	fillVertices = append(fillVertices[:0], vertex(center))
	fillIndices = fillIndices[:0]
	for i, v := range poly {
		fillVertices = append(fillVertices, vertex(v))
		next := (i+1)%n + 1
		fillIndices = append(fillIndices, 0, uint16(i+1), uint16(next))
	}
	dst.DrawTriangles(fillVertices, fillIndices, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
