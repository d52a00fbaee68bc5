package components

import (
	"math"
	"testing"
)

func TestCameraFollowClamps(t *testing.T) {
	tests := []struct {
		name  string
		focus float64
		want  float64
	}{
		{"top", 100, 0},
		{"middle", 1800, 1440},
		{"bottom", 5000, 2880},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CameraData{ViewHeight: 720, WorldHeight: 3600}
			c.Follow(tt.focus)
			if c.ScrollY != tt.want {
				t.Errorf("ScrollY = %v, want %v", c.ScrollY, tt.want)
			}
		})
	}
}

func TestCameraEaseConverges(t *testing.T) {
	c := &CameraData{ViewHeight: 720, WorldHeight: 3600}
	c.NavigateTo(1440, "skills")

	prev := math.Abs(1440 - c.ScrollY)
	arrived := false
	for i := 0; i < 200; i++ {
		if c.Ease() {
			arrived = true
			break
		}
		d := math.Abs(1440 - c.ScrollY)
		if d > prev {
			t.Fatalf("distance grew at step %d: %v -> %v", i, prev, d)
		}
		prev = d
	}

	if !arrived {
		t.Fatal("camera never arrived")
	}
	if c.ScrollY != 1440 || c.Navigating() {
		t.Errorf("after arrival ScrollY=%v navigating=%v", c.ScrollY, c.Navigating())
	}
	if got := c.TakePending(); got != "skills" {
		t.Errorf("pending = %q", got)
	}
	if c.TakePending() != "" {
		t.Error("pending not cleared")
	}
}

func TestCameraNavigateClampsAndJumpCancels(t *testing.T) {
	c := &CameraData{ViewHeight: 720, WorldHeight: 3600}
	c.NavigateTo(99999, "")
	if *c.Target != 2880 {
		t.Errorf("target = %v, want 2880", *c.Target)
	}
	c.JumpTo(720)
	if c.ScrollY != 720 || c.Navigating() {
		t.Errorf("jump left ScrollY=%v navigating=%v", c.ScrollY, c.Navigating())
	}
	if c.Ease() {
		t.Error("Ease without target reported arrival")
	}
}
