package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupScreens   = "Screens"
	GroupPlatforms = "Platforms"
	GroupPlanets   = "Planets"
	GroupBubbles   = "Bubbles"
	GroupSpawns    = "Spawns"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupScreens:
			for _, o := range og.Objects {
				level.Screens = append(level.Screens, Screen{
					ID:      o.Name,
					Title:   titleOr(o.Properties.GetString("title"), o.Name),
					YStart:  o.Y,
					Height:  o.Height,
					Gravity: o.Properties.GetFloat("gravity"),
					Precise: o.Properties.GetBool("precise"),
				})
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
				})
			}
		case GroupPlanets:
			// Planets are ellipses; the bounding box gives center and radius.
			for _, o := range og.Objects {
				r := o.Width / 2
				if o.Height > 0 && o.Height < o.Width {
					r = o.Height / 2
				}
				level.Planets = append(level.Planets, PlanetSpawn{
					Name:   o.Name,
					X:      o.X + o.Width/2,
					Y:      o.Y + o.Height/2,
					Radius: r,
				})
			}
		case GroupBubbles:
			for _, o := range og.Objects {
				level.Bubbles = append(level.Bubbles, BubbleSpawn{
					Name:     o.Name,
					Text:     o.Properties.GetString("text"),
					Platform: o.Properties.GetString("platform"),
					X:        o.X,
					Y:        o.Y,
				})
			}
		case GroupSpawns:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = AnchorPoint
				}
				level.Anchors = append(level.Anchors, SpawnAnchor{
					Screen: o.Properties.GetString("screen"),
					Kind:   kind,
					X:      o.X,
					Y:      o.Y,
				})
			}
		}
	}

	if err := level.validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}

	sort.SliceStable(level.Screens, func(i, j int) bool {
		return level.Screens[i].YStart < level.Screens[j].YStart
	})

	return level, nil
}

func (l *Level) validate() error {
	if len(l.Screens) == 0 {
		return ErrNoScreens
	}
	if len(l.Planets) == 0 {
		return ErrNoPlanet
	}
	seen := make(map[string]bool, len(l.Screens))
	for _, s := range l.Screens {
		if s.ID == "" {
			return fmt.Errorf("screen at y=%v has no name", s.YStart)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate screen %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, b := range l.Bubbles {
		if b.Platform == "" {
			continue
		}
		if _, ok := l.PlatformByName(b.Platform); !ok {
			return fmt.Errorf("bubble %q references unknown platform %q", b.Name, b.Platform)
		}
	}
	for _, a := range l.Anchors {
		if !seen[a.Screen] {
			return fmt.Errorf("spawn anchor references unknown screen %q", a.Screen)
		}
	}
	return nil
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
