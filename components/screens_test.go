package components

import (
	"reflect"
	"testing"
)

func newTestScreens(log *[]string) *ScreenManagerData {
	var screens []WorldScreen
	for i, id := range []string{"intro", "about", "contact"} {
		screens = append(screens, WorldScreen{
			ID:      id,
			YStart:  float64(i) * 720,
			Height:  720,
			OnEnter: func() { *log = append(*log, "enter:"+id) },
			OnExit:  func() { *log = append(*log, "exit:"+id) },
		})
	}
	return NewScreenManager(screens)
}

func TestScreenManagerUpdate(t *testing.T) {
	tests := []struct {
		name    string
		ys      []float64
		want    []string
		current string
	}{
		{"first resolve", []float64{100}, []string{"enter:intro"}, "intro"},
		{"same screen", []float64{100, 200, 719}, []string{"enter:intro"}, "intro"},
		{"boundary", []float64{100, 720}, []string{"enter:intro", "exit:intro", "enter:about"}, "about"},
		{"skip screen", []float64{100, 1500}, []string{"enter:intro", "exit:intro", "enter:contact"}, "contact"},
		{"outside keeps current", []float64{800, 9000, -10}, []string{"enter:about"}, "about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			m := newTestScreens(&log)
			for _, y := range tt.ys {
				m.Update(y)
			}
			if !reflect.DeepEqual(log, tt.want) {
				t.Errorf("callbacks = %v, want %v", log, tt.want)
			}
			if got := m.Current(); got == nil || got.ID != tt.current {
				t.Errorf("current = %v, want %s", got, tt.current)
			}
		})
	}
}

func TestScreenManagerLookups(t *testing.T) {
	var log []string
	m := newTestScreens(&log)

	if m.Current() != nil || m.CurrentID() != nil {
		t.Fatal("no screen before the first update")
	}
	if s, ok := m.ByID("about"); !ok || s.YStart != 720 {
		t.Errorf("ByID(about) = %v, %v", s, ok)
	}
	if _, ok := m.ByID("missing"); ok {
		t.Error("ByID(missing) found a screen")
	}
	if s, ok := m.ScreenForY(1439.5); !ok || s.ID != "about" {
		t.Errorf("ScreenForY(1439.5) = %v, %v", s, ok)
	}
	if _, ok := m.ScreenForY(2160); ok {
		t.Error("ScreenForY past the world found a screen")
	}
	if len(m.Screens()) != 3 {
		t.Errorf("Screens() len = %d", len(m.Screens()))
	}
}
