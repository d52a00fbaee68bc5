package components

import "github.com/yohamta/donburi"

// WorldScreen is one vertical band of the world.
type WorldScreen struct {
	ID      string
	Title   string
	YStart  float64
	Height  float64
	Gravity float64
	Precise bool
	OnEnter func()
	OnExit  func()
}

// Contains reports whether y falls in [YStart, YStart+Height).
func (s *WorldScreen) Contains(y float64) bool {
	return y >= s.YStart && y < s.YStart+s.Height
}

// ScreenManagerData resolves the current screen from the player's y.
type ScreenManagerData struct {
	// Announced is set once the current screen has been reported.
	Announced bool

	screens []WorldScreen
	current int // index into screens, -1 when none
}

func NewScreenManager(screens []WorldScreen) *ScreenManagerData {
	return &ScreenManagerData{screens: screens, current: -1}
}

// Update resolves the screen for playerY. When it differs from the current
// one the previous screen's OnExit runs before the new screen's OnEnter.
// A y outside every band keeps the current screen. Screens skipped in a
// single jump get no callbacks.
func (m *ScreenManagerData) Update(playerY float64) bool {
	next := m.indexForY(playerY)
	if next < 0 || next == m.current {
		return false
	}

	if m.current >= 0 {
		if prev := &m.screens[m.current]; prev.OnExit != nil {
			prev.OnExit()
		}
	}
	m.current = next
	if s := &m.screens[next]; s.OnEnter != nil {
		s.OnEnter()
	}
	return true
}

// Current returns the current screen or nil.
func (m *ScreenManagerData) Current() *WorldScreen {
	if m.current < 0 {
		return nil
	}
	return &m.screens[m.current]
}

// CurrentID returns the current screen id, or nil when there is none.
func (m *ScreenManagerData) CurrentID() *string {
	s := m.Current()
	if s == nil {
		return nil
	}
	id := s.ID
	return &id
}

func (m *ScreenManagerData) ByID(id string) (*WorldScreen, bool) {
	for i := range m.screens {
		if m.screens[i].ID == id {
			return &m.screens[i], true
		}
	}
	return nil, false
}

func (m *ScreenManagerData) ScreenForY(y float64) (*WorldScreen, bool) {
	i := m.indexForY(y)
	if i < 0 {
		return nil, false
	}
	return &m.screens[i], true
}

func (m *ScreenManagerData) Screens() []WorldScreen {
	return m.screens
}

func (m *ScreenManagerData) indexForY(y float64) int {
	for i := range m.screens {
		if m.screens[i].Contains(y) {
			return i
		}
	}
	return -1
}

var ScreenManager = donburi.NewComponentType[ScreenManagerData]()
