package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/router"
	"github.com/sumstars/sumstars/internal/screen"
	"github.com/sumstars/sumstars/internal/ui/components"
	"github.com/sumstars/sumstars/internal/ui/layout"
	"github.com/sumstars/sumstars/internal/ui/theme"
)

// SummaryScreen displays the completed session's results. It holds only
// the results snapshot: the session is already merged and gone by the
// time this screen exists.
type SummaryScreen struct {
	results progress.Results
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(results progress.Results) *SummaryScreen {
	return &SummaryScreen{results: results}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.results
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("All done!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.StarRow(r.Stars, progress.MaxStars)))
	b.WriteString("\n\n")

	mins := int(r.Elapsed.Minutes())
	secs := int(r.Elapsed.Seconds()) % 60
	statsLine := fmt.Sprintf("Score: %d        Right: %d of %d        Accuracy: %.0f%%",
		r.Score, r.Correct, r.Total, r.Accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Coins: %d        Time: %d:%02d        %s level %d",
			r.Coins, mins, secs, r.Tier.Label(), r.Level)))
	b.WriteString("\n\n")

	if r.NewHighScore {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Star).
			Bold(true).
			Render("✨ New high score! ✨"))
		b.WriteString("\n\n")
	}

	if !r.Persisted {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("(couldn't save your progress this time)"))
		b.WriteString("\n\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
