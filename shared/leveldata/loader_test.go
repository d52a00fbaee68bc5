package leveldata

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="20" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="20">
`

func tmx(groups ...string) []byte {
	return []byte(tmxHeader + strings.Join(groups, "\n") + "\n</map>\n")
}

const screensGroup = ` <objectgroup id="1" name="Screens">
  <object id="1" name="b" x="0" y="320" width="320" height="320"/>
  <object id="2" name="a" x="0" y="0" width="320" height="320">
   <properties>
    <property name="title" value="First"/>
    <property name="gravity" type="float" value="0.5"/>
    <property name="precise" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>`

const planetsGroup = ` <objectgroup id="2" name="Planets">
  <object id="3" name="home" x="60" y="100" width="200" height="200">
   <ellipse/>
  </object>
 </objectgroup>`

const platformsGroup = ` <objectgroup id="3" name="Platforms">
  <object id="4" name="p1" x="10" y="400" width="100" height="20"/>
 </objectgroup>`

func TestLoadLevelParsesGroups(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: tmx(screensGroup, planetsGroup, platformsGroup)},
	}
	level, err := LoadLevel(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "test" {
		t.Errorf("Name = %q", level.Name)
	}
	if len(level.Screens) != 2 || level.Screens[0].ID != "a" || level.Screens[1].ID != "b" {
		t.Fatalf("screens not sorted by yStart: %+v", level.Screens)
	}
	first := level.Screens[0]
	if first.Title != "First" || first.Gravity != 0.5 || !first.Precise {
		t.Errorf("first screen properties: %+v", first)
	}
	if level.Screens[1].Title != "b" {
		t.Errorf("missing title should fall back to id, got %q", level.Screens[1].Title)
	}
	if got := level.WorldHeight(); got != 640 {
		t.Errorf("WorldHeight = %v, want 640", got)
	}

	if len(level.Planets) != 1 {
		t.Fatalf("planets = %d", len(level.Planets))
	}
	pl := level.Planets[0]
	if pl.X != 160 || pl.Y != 200 || pl.Radius != 100 {
		t.Errorf("planet = %+v", pl)
	}

	if p, ok := level.PlatformByName("p1"); !ok || p.W != 100 || p.Y != 400 {
		t.Errorf("platform p1 = %+v, %v", p, ok)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	badBubble := ` <objectgroup id="4" name="Bubbles">
  <object id="9" name="x" x="0" y="0">
   <properties>
    <property name="platform" value="nope"/>
   </properties>
   <point/>
  </object>
 </objectgroup>`
	badAnchor := ` <objectgroup id="5" name="Spawns">
  <object id="10" name="s" x="0" y="0">
   <properties>
    <property name="screen" value="missing"/>
   </properties>
   <point/>
  </object>
 </objectgroup>`

	tests := []struct {
		name     string
		data     []byte
		sentinel error
		contains string
	}{
		{"no screens", tmx(planetsGroup), ErrNoScreens, ""},
		{"no planet", tmx(screensGroup), ErrNoPlanet, ""},
		{"unknown bubble platform", tmx(screensGroup, planetsGroup, badBubble), nil, "unknown platform"},
		{"unknown anchor screen", tmx(screensGroup, planetsGroup, badAnchor), nil, "unknown screen"},
		{"not xml", []byte("nope"), nil, "load TMX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"l.tmx": {Data: tt.data}}
			_, err := LoadLevel(fsys, "l.tmx")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v is not %v", err, tt.sentinel)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
		})
	}
}

func TestPortfolioLevel(t *testing.T) {
	level, err := LoadLevel(os.DirFS("../../assets"), "levels/portfolio.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	wantScreens := []string{"intro", "about-me", "skills", "projects", "contact"}
	if len(level.Screens) != len(wantScreens) {
		t.Fatalf("screens = %d, want %d", len(level.Screens), len(wantScreens))
	}
	for i, id := range wantScreens {
		if level.Screens[i].ID != id {
			t.Errorf("screen %d = %q, want %q", i, level.Screens[i].ID, id)
		}
		if level.Screens[i].YStart != float64(i*720) || level.Screens[i].Height != 720 {
			t.Errorf("screen %s band = %v+%v", id, level.Screens[i].YStart, level.Screens[i].Height)
		}
	}
	if got := level.WorldHeight(); got != 3600 {
		t.Errorf("WorldHeight = %v, want 3600", got)
	}

	home := level.Planets[0]
	if home.X != 480 || home.Y != 710 || home.Radius != 300 {
		t.Errorf("home planet = %+v", home)
	}

	a, ok := level.AnchorFor("intro")
	if !ok || a.Kind != AnchorPlanetTop {
		t.Errorf("intro anchor = %+v, %v", a, ok)
	}

	for _, b := range level.Bubbles {
		if b.Text == "" {
			t.Errorf("bubble %s has no text", b.Name)
		}
	}
	if len(level.Bubbles) != 5 {
		t.Errorf("bubbles = %d, want 5", len(level.Bubbles))
	}
}
