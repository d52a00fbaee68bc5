package factory

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/automoto/skyfolio/archetypes"
	"github.com/automoto/skyfolio/components"
	cfg "github.com/automoto/skyfolio/config"
	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBubble places a bubble AnchorOffset pixels above the top of its
// platform, centered, or at the spawn point when it has no platform.
func CreateBubble(ecs *ecs.ECS, spawn leveldata.BubbleSpawn, level *leveldata.Level, rng *rand.Rand) (*donburi.Entry, bool) {
	x, y := spawn.X, spawn.Y
	if spawn.Platform != "" {
		plat, ok := level.PlatformByName(spawn.Platform)
		if !ok {
			return nil, false
		}
		x = plat.X + plat.W/2
		y = plat.Y - cfg.Bubble.AnchorOffset
	}

	bubble := archetypes.Bubble.Spawn(ecs)
	components.Bubble.Set(bubble, components.NewBubble(BubbleID(rng), x, y, cfg.Bubble.Radius, spawn.Text, rng))
	return bubble, true
}

// BubbleID returns "bubble-" followed by seven base36 digits.
func BubbleID(rng *rand.Rand) string {
	const digits = 7
	id := strconv.FormatInt(rng.Int63n(78364164096), 36) // 36^7
	return "bubble-" + strings.Repeat("0", digits-len(id)) + id
}
