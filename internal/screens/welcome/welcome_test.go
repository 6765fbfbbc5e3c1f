package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sumstars/sumstars/internal/router"
	"github.com/sumstars/sumstars/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(width, height int) string           { return "home" }
func (stubScreen) Title() string                           { return "Home" }

func TestWelcomeScreen_AnyKeyReplacesWithHome(t *testing.T) {
	var built bool
	w := New(func() screen.Screen {
		built = true
		return stubScreen{}
	})

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command on key press")
	}
	if !built {
		t.Error("expected the home factory to run")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "Home" {
		t.Errorf("replacement Title = %q, want %q", msg.Screen.Title(), "Home")
	}
}

func TestWelcomeScreen_BannerAppearsAfterDelay(t *testing.T) {
	w := New(func() screen.Screen { return stubScreen{} })

	if strings.Contains(w.View(80, 24), "press any key") {
		t.Error("banner should be hidden at start")
	}

	for i := 0; i < 5; i++ {
		w.Update(tickMsg{})
	}
	if !strings.Contains(w.View(80, 24), "press any key") {
		t.Error("banner should appear after the delay")
	}
}

func TestWelcomeScreen_TickKeepsAnimating(t *testing.T) {
	w := New(func() screen.Screen { return stubScreen{} })
	_, cmd := w.Update(tickMsg{})
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}
