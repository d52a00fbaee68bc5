package components

import (
	"math"

	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData scrolls vertically only. Target is set while a navigation
// request is in flight; PendingScreen is the screen to snap the player onto
// when it arrives.
type CameraData struct {
	ScrollY       float64
	Target        *float64
	PendingScreen string
	ViewHeight    float64
	WorldHeight   float64
}

func (c *CameraData) MaxScroll() float64 {
	return math.Max(0, c.WorldHeight-c.ViewHeight)
}

// Clamp limits a scroll value to the world.
func (c *CameraData) Clamp(scroll float64) float64 {
	return gamemath.Clamp(scroll, 0, c.MaxScroll())
}

func (c *CameraData) Navigating() bool {
	return c.Target != nil
}

// Follow keeps focusY vertically centered.
func (c *CameraData) Follow(focusY float64) {
	c.ScrollY = c.Clamp(focusY - c.ViewHeight/2)
}

// NavigateTo starts easing toward scroll. pending may be empty.
func (c *CameraData) NavigateTo(scroll float64, pending string) {
	t := c.Clamp(scroll)
	c.Target = &t
	c.PendingScreen = pending
}

// JumpTo moves instantly and cancels navigation.
func (c *CameraData) JumpTo(scroll float64) {
	c.ScrollY = c.Clamp(scroll)
	c.Target = nil
	c.PendingScreen = ""
}

// Ease moves one step toward the target. It returns true on the step that
// arrives; the target is then cleared.
func (c *CameraData) Ease() bool {
	if c.Target == nil {
		return false
	}
	t := *c.Target
	c.ScrollY += (t - c.ScrollY) * cfg.Camera.Ease
	if math.Abs(c.ScrollY-t) < cfg.Camera.Epsilon {
		c.ScrollY = t
		c.Target = nil
		return true
	}
	return false
}

// TakePending returns and clears the pending screen.
func (c *CameraData) TakePending() string {
	id := c.PendingScreen
	c.PendingScreen = ""
	return id
}

var Camera = donburi.NewComponentType[CameraData]()
