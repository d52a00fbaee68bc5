package components

import (
	"testing"

	cfg "github.com/automoto/skyfolio/config"
)

func TestAnimationStates(t *testing.T) {
	a := NewAnimationData(cfg.PlayerAnimations, 100, 256, 256)
	if a.CurrentState != cfg.Idle || a.Frame() != 0 {
		t.Fatalf("start state=%v frame=%d", a.CurrentState, a.Frame())
	}

	a.Update(500)
	if a.Frame() != 0 {
		t.Errorf("idle frame = %d, want 0", a.Frame())
	}

	a.SetState(cfg.Walk)
	a.Update(60)
	if a.Frame() != 0 {
		t.Errorf("advanced before the interval")
	}
	a.Update(40)
	if a.Frame() != 1 {
		t.Errorf("walk frame = %d, want 1", a.Frame())
	}

	a.SetState(cfg.Walk)
	if a.Frame() != 1 {
		t.Error("re-setting the same state restarted the animation")
	}

	for i := 0; i < 3; i++ {
		a.Update(100)
	}
	if a.Frame() != 0 {
		t.Errorf("walk did not wrap: frame %d", a.Frame())
	}

	a.Update(100)
	a.SetState(cfg.Jump)
	if a.Frame() != 0 || a.Row() != cfg.PlayerAnimations[cfg.Jump].Row {
		t.Errorf("jump frame=%d row=%d", a.Frame(), a.Row())
	}
}
