package components

import (
	"math/rand"

	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData holds the loaded world description and the RNG every procedural
// effect in the scene draws from.
type LevelData struct {
	CurrentLevel *leveldata.Level
	WorldHeight  float64
	Rng          *rand.Rand
}

// HomePlanet returns the spawn planet, the first one in the level.
func (l *LevelData) HomePlanet() (leveldata.PlanetSpawn, bool) {
	if l.CurrentLevel == nil || len(l.CurrentLevel.Planets) == 0 {
		return leveldata.PlanetSpawn{}, false
	}
	return l.CurrentLevel.Planets[0], true
}

var Level = donburi.NewComponentType[LevelData]()
