package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sumstars/sumstars/internal/router"
	"github.com/sumstars/sumstars/internal/screen"
	"github.com/sumstars/sumstars/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond
	bannerAt     = 600 * time.Millisecond
)

const starArt = `      ★
     ╱ ╲
★───▕ ◠◠ ▏───★
     ╲ ‿ ╱
    ╱     ╲
   ★       ★`

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen shows a splash before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory func() screen.Screen
	elapsed     time.Duration
	tickCount   int
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen
// produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		homeScreen := w.homeFactory()
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: homeScreen}
		}
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Star).Render(starArt)

	// Sparkles alternate beside the mascot.
	frame := sparkleFrames[w.tickCount%len(sparkleFrames)]
	s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
	s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)
	lines := strings.Split(rendered, "\n")
	if len(lines) > 0 {
		lines[0] = s1 + "  " + lines[0] + "  " + s2
	}
	if len(lines) > 4 {
		lines[4] = s2 + "  " + lines[4] + "  " + s1
	}
	sections = append(sections, strings.Join(lines, "\n"))

	if w.elapsed >= bannerAt {
		sections = append(sections, "")
		sections = append(sections, theme.Title.Render("S U M S T A R S"))
		sections = append(sections, theme.Body.Bold(true).Render("Add it up, earn your stars!"))
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press any key to start"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
