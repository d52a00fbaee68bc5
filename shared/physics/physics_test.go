package physics

import (
	"testing"

	"github.com/automoto/skyfolio/shared/gamemath"
)

type box struct {
	r           gamemath.Rect
	vx, vy      float64
	grounded    bool
	wasGrounded bool
}

func (b *box) Bounds() gamemath.Rect        { return b.r }
func (b *box) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *box) WasGrounded() bool            { return b.wasGrounded }
func (b *box) HitCeiling(y float64)         { b.r.Y = y; b.vy = 0 }
func (b *box) StopAtX(x float64)            { b.r.X = x; b.vx = 0 }
func (b *box) LandOn(y float64) bool {
	first := !b.grounded
	b.r.Y = y - b.r.H
	b.vy = 0
	b.grounded = true
	return first
}

type slab struct {
	r        gamemath.Rect
	solid    bool
	landings int
}

func (s *slab) Bounds() gamemath.Rect { return s.r }
func (s *slab) IsCollidable() bool    { return s.solid }
func (s *slab) NotifyLanded()         { s.landings++ }

func newSlab() *slab {
	return &slab{r: gamemath.Rect{X: 100, Y: 400, W: 200, H: 20}, solid: true}
}

func TestCheckCollisionRespectsCollidable(t *testing.T) {
	b := &box{r: gamemath.Rect{X: 150, Y: 390, W: 48, H: 48}}
	s := newSlab()
	if !CheckCollision(b, s) {
		t.Fatal("expected overlap")
	}
	s.solid = false
	if CheckCollision(b, s) {
		t.Fatal("non-collidable surface must not collide")
	}
}

func TestResolveCollisionSides(t *testing.T) {
	tests := []struct {
		name   string
		start  gamemath.Rect
		vx, vy float64
		want   Side
		check  func(t *testing.T, b *box)
	}{
		{
			name:  "from above",
			start: gamemath.Rect{X: 176, Y: 360, W: 48, H: 48},
			vy:    5,
			want:  SideTop,
			check: func(t *testing.T, b *box) {
				if b.r.Bottom() != 400 {
					t.Errorf("bottom = %v, want 400", b.r.Bottom())
				}
				if b.vy != 0 || !b.grounded {
					t.Errorf("vy=%v grounded=%v", b.vy, b.grounded)
				}
			},
		},
		{
			name:  "from below",
			start: gamemath.Rect{X: 176, Y: 410, W: 48, H: 48},
			vy:    -8,
			want:  SideBottom,
			check: func(t *testing.T, b *box) {
				if b.r.Y != 420 || b.vy != 0 {
					t.Errorf("y=%v vy=%v", b.r.Y, b.vy)
				}
			},
		},
		{
			name:  "from left",
			start: gamemath.Rect{X: 60, Y: 390, W: 48, H: 48},
			vx:    3,
			want:  SideLeft,
			check: func(t *testing.T, b *box) {
				if b.r.Right() != 100 || b.vx != 0 {
					t.Errorf("right=%v vx=%v", b.r.Right(), b.vx)
				}
			},
		},
		{
			// |width*dy| == |height*dx| below-left of center breaks horizontally.
			name:  "exact tie below left",
			start: gamemath.Rect{X: 114, Y: 403, W: 48, H: 48},
			want:  SideLeft,
			check: func(t *testing.T, b *box) {
				if b.r.X != 52 || b.r.Y != 403 {
					t.Errorf("pos = (%v, %v), want (52, 403)", b.r.X, b.r.Y)
				}
			},
		},
		{
			// Above-right of center the same tie lands on top.
			name:  "exact tie above right",
			start: gamemath.Rect{X: 238, Y: 369, W: 48, H: 48},
			want:  SideTop,
			check: func(t *testing.T, b *box) {
				if b.r.X != 238 || b.r.Bottom() != 400 || !b.grounded {
					t.Errorf("x=%v bottom=%v grounded=%v", b.r.X, b.r.Bottom(), b.grounded)
				}
			},
		},
		{
			name:  "from right",
			start: gamemath.Rect{X: 295, Y: 390, W: 48, H: 48},
			vx:    -3,
			want:  SideRight,
			check: func(t *testing.T, b *box) {
				if b.r.X != 300 || b.vx != 0 {
					t.Errorf("x=%v vx=%v", b.r.X, b.vx)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &box{r: tt.start, vx: tt.vx, vy: tt.vy}
			s := newSlab()
			if got := ResolveCollision(b, s); got != tt.want {
				t.Fatalf("side = %v, want %v", got, tt.want)
			}
			tt.check(t, b)
		})
	}
}

func TestResolveCollisionIdempotent(t *testing.T) {
	b := &box{r: gamemath.Rect{X: 176, Y: 360, W: 48, H: 48}, vy: 5}
	s := newSlab()

	ResolveCollision(b, s)
	first := b.r
	for i := 0; i < 3; i++ {
		ResolveCollision(b, s)
		if b.r != first {
			t.Fatalf("repeat %d moved box from %+v to %+v", i, first, b.r)
		}
	}
	if CheckCollision(b, s) {
		t.Error("resolved box still overlaps")
	}
	if s.landings != 1 {
		t.Errorf("landings = %d, want 1", s.landings)
	}
}

func TestLandingNotifyGuards(t *testing.T) {
	tests := []struct {
		name        string
		vy          float64
		wasGrounded bool
		want        int
	}{
		{"falling from air", 4, false, 1},
		{"already grounded last frame", 4, true, 0},
		{"moving up", -2, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &box{r: gamemath.Rect{X: 176, Y: 360, W: 48, H: 48}, vy: tt.vy, wasGrounded: tt.wasGrounded}
			s := newSlab()
			ResolveCollision(b, s)
			if s.landings != tt.want {
				t.Errorf("landings = %d, want %d", s.landings, tt.want)
			}
		})
	}
}

func TestSweepLandingCatchesTunneling(t *testing.T) {
	s := newSlab()
	// Previous bottom 348, now top 421: the box passed the whole 20 px slab
	// in one step and no longer overlaps it.
	b := &box{r: gamemath.Rect{X: 150, Y: 421, W: 48, H: 48}, vy: 73}
	if CheckCollision(b, s) {
		t.Fatal("setup: box should be past the slab")
	}

	hit := SweepLanding(b, 348, []Surface{s})
	if hit == nil {
		t.Fatal("expected sweep landing")
	}
	if b.r.Bottom() != 400 || !b.grounded || b.vy != 0 {
		t.Errorf("bottom=%v grounded=%v vy=%v", b.r.Bottom(), b.grounded, b.vy)
	}
	if s.landings != 1 {
		t.Errorf("landings = %d, want 1", s.landings)
	}

	// The discrete pass afterwards sees an abutting box and does nothing.
	if CheckCollision(b, s) {
		t.Error("box overlaps after sweep")
	}
}

func TestSweepLandingPicksHighestSurface(t *testing.T) {
	low := &slab{r: gamemath.Rect{X: 100, Y: 500, W: 200, H: 20}, solid: true}
	high := &slab{r: gamemath.Rect{X: 100, Y: 420, W: 200, H: 20}, solid: true}
	b := &box{r: gamemath.Rect{X: 150, Y: 480, W: 48, H: 48}, vy: 200}

	hit := SweepLanding(b, 380, []Surface{low, high})
	if hit != high {
		t.Fatalf("landed on %+v, want the higher slab", hit)
	}
	if b.r.Bottom() != 420 {
		t.Errorf("bottom = %v, want 420", b.r.Bottom())
	}
	if low.landings != 0 || high.landings != 1 {
		t.Errorf("landings low=%d high=%d", low.landings, high.landings)
	}
}

func TestSweepLandingSkips(t *testing.T) {
	tests := []struct {
		name       string
		box        gamemath.Rect
		vy         float64
		prevBottom float64
		solid      bool
	}{
		{"rising", gamemath.Rect{X: 150, Y: 369, W: 48, H: 48}, -5, 348, true},
		{"started below top", gamemath.Rect{X: 150, Y: 369, W: 48, H: 48}, 5, 405, true},
		{"not reached", gamemath.Rect{X: 150, Y: 300, W: 48, H: 48}, 5, 340, true},
		{"no horizontal overlap", gamemath.Rect{X: 310, Y: 369, W: 48, H: 48}, 23, 348, true},
		{"non-collidable", gamemath.Rect{X: 150, Y: 369, W: 48, H: 48}, 23, 348, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSlab()
			s.solid = tt.solid
			b := &box{r: tt.box, vy: tt.vy}
			if hit := SweepLanding(b, tt.prevBottom, []Surface{s}); hit != nil {
				t.Errorf("unexpected landing")
			}
			if s.landings != 0 {
				t.Errorf("landings = %d", s.landings)
			}
		})
	}
}
