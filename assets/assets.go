package assets

import (
	"bytes"
	"embed"
	"fmt"
	_ "image/png"
	"os"
	"path"
	"sync"

	"github.com/automoto/skyfolio/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LoadLevel parses levels/<name>.tmx from the embedded files.
func LoadLevel(name string) (*leveldata.Level, error) {
	lvl, err := leveldata.LoadLevel(assetFS, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	log.Info("level loaded", "name", lvl.Name, "screens", len(lvl.Screens), "platforms", len(lvl.Platforms))
	return lvl, nil
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	return names, err
}

var (
	sprites   = map[string]*ebiten.Image{}
	spritesMu sync.Mutex
)

// LoadSprite reads an image from disk once and caches it. A missing or broken
// file is reported a single time and yields nil; callers draw a placeholder.
func LoadSprite(file string) *ebiten.Image {
	spritesMu.Lock()
	defer spritesMu.Unlock()

	if img, ok := sprites[file]; ok {
		return img
	}

	img, err := readSprite(file)
	if err != nil {
		log.Warn("sprite unavailable, drawing placeholder", "path", file, "err", err)
	}
	sprites[file] = img
	return img
}

func readSprite(file string) (*ebiten.Image, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return img, nil
}
