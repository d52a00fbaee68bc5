package systems

import (
	"github.com/automoto/skyfolio/components"
	"github.com/automoto/skyfolio/shared/gamemath"
	"github.com/automoto/skyfolio/shared/physics"
	"github.com/automoto/skyfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(e *ecs.ECS) {
	entry, player, ok := playerOf(e)
	if !ok {
		return
	}
	dt := deltaMs(e)

	var body *resolv.Object
	if entry.HasComponent(components.Object) {
		body = components.Object.Get(entry).Object
	}

	player.Step(getOrCreateInput(e), newPlatformQuery(e.World, body), dt)
	syncPlayerBody(entry, player)

	if entry.HasComponent(components.Animation) {
		anim := components.Animation.Get(entry)
		anim.SetState(player.State)
		anim.Update(dt)
	}
}

// nearPad grows the broad-phase rect. resolv maps a body's far edge one pixel
// inward when picking cells, so a sub-pixel overlap across a cell boundary
// would otherwise be missed.
const nearPad = 1

// platformQuery hands every platform to the landing sweep and uses the
// resolv space as broad phase for the discrete pass.
type platformQuery struct {
	all  []physics.Surface
	body *resolv.Object
}

func newPlatformQuery(w donburi.World, body *resolv.Object) *platformQuery {
	q := &platformQuery{body: body}
	tags.Platform.Each(w, func(entry *donburi.Entry) {
		q.all = append(q.all, components.Platform.Get(entry))
	})
	return q
}

func (q *platformQuery) All() []physics.Surface {
	return q.all
}

func (q *platformQuery) Near(r gamemath.Rect) []physics.Surface {
	if q.body == nil || q.body.Space == nil {
		return q.all
	}
	syncBody(q.body, gamemath.Rect{
		X: r.X - nearPad,
		Y: r.Y - nearPad,
		W: r.W + 2*nearPad,
		H: r.H + 2*nearPad,
	})
	defer syncBody(q.body, r)

	collision := q.body.Check(0, 0, tags.ResolvSolid)
	if collision == nil {
		return nil
	}
	near := make([]physics.Surface, 0, len(collision.Objects))
	for _, o := range collision.Objects {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Platform) {
			continue
		}
		near = append(near, components.Platform.Get(entry))
	}
	return near
}
