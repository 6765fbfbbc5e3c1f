package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sumstars/sumstars/internal/ui/theme"
)

// ProgressBar displays a horizontal session progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	barWidth := p.Width - labelWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return result
}

// StarRow renders earned stars out of a maximum, e.g. "★ ★ ☆".
func StarRow(earned, max int) string {
	parts := make([]string, 0, max)
	for i := 0; i < max; i++ {
		if i < earned {
			parts = append(parts, theme.StarFull.Render("★"))
		} else {
			parts = append(parts, theme.StarEmpty.Render("☆"))
		}
	}
	return strings.Join(parts, " ")
}

// QuestionCounter renders the "Q 3/5" position indicator.
func QuestionCounter(index, total int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d", index, total))
}
