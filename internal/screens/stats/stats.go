package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sumstars/sumstars/internal/difficulty"
	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/router"
	"github.com/sumstars/sumstars/internal/screen"
	"github.com/sumstars/sumstars/internal/ui/layout"
	"github.com/sumstars/sumstars/internal/ui/theme"
)

// StatsScreen shows the lifetime record: totals, high scores, levels.
type StatsScreen struct {
	model *progress.Model
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(model *progress.Model) *StatsScreen {
	return &StatsScreen{model: model}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Stars"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	p := s.model.Persistent()
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Your collection"))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("★ %d stars        ● %d coins        %d games played",
		p.TotalStars, p.TotalCoins, p.SessionsPlayed)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(totals))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, tier := range difficulty.Tiers {
		line := fmt.Sprintf("%-8s best %4d   levels done %d",
			tier.Label(), p.HighScores[tier], len(p.CompletedLevels[tier]))
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
