package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sumstars/sumstars/internal/question"
	"github.com/sumstars/sumstars/internal/ui/components"
	"github.com/sumstars/sumstars/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch s.phase {
	case phaseQuitConfirm:
		return renderQuitConfirm(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestionView(width, height)
	}
}

func (s *SessionScreen) renderQuestionView(width, height int) string {
	sess := s.model.Session()
	q := s.engine.Current()
	if sess == nil || q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Getting your question ready...")
	}

	var b strings.Builder

	// Status line: position, score, coins.
	left := "  " + components.QuestionCounter(sess.QuestionIndex+1, sess.TotalQuestions)
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d points   ● %d", sess.Score, sess.Coins))
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n")

	bar := components.ProgressBar{
		Percent: float64(sess.QuestionIndex) / float64(sess.TotalQuestions),
		Width:   width - 8,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	if q.Hint.Present() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderHint(q)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))

	if s.inputError != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.inputError))
	}

	return b.String()
}

// renderHint draws the template's visual hint.
func renderHint(q *question.Question) string {
	switch q.Hint.Type {
	case question.HintCountingObjects:
		return renderCountingObjects(q)
	case question.HintNumberLine:
		return renderNumberLine(q)
	default:
		return ""
	}
}

// renderCountingObjects shows each operand as a row of countable dots.
func renderCountingObjects(q *question.Question) string {
	groupA := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Repeat("● ", q.OperandA))
	groupB := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(strings.Repeat("● ", q.OperandB))

	op := "+"
	if q.Operation == question.OpSubtraction {
		op = "-"
	}
	return groupA + " " + theme.Hint.Render(op) + "  " + groupB
}

// renderNumberLine shows a tick line from 0 up to the larger operand.
func renderNumberLine(q *question.Question) string {
	max := q.OperandA
	if q.OperandB > max {
		max = q.OperandB
	}
	// A 0-0 draw has no line to show; anything past 25 is too wide to
	// draw one tick per unit.
	if max == 0 || max > 25 {
		return ""
	}

	var ticks strings.Builder
	for i := 0; i <= max; i++ {
		switch i {
		case q.OperandA, q.OperandB:
			ticks.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("┿"))
		default:
			ticks.WriteString(theme.Hint.Render("┼"))
		}
		if i < max {
			ticks.WriteString(theme.Hint.Render("─"))
		}
	}
	labels := theme.Hint.Render(fmt.Sprintf("0%s%d", strings.Repeat(" ", 2*max-1), max))
	return ticks.String() + "\n" + labels
}

func (s *SessionScreen) renderFeedback(width, height int) string {
	res := s.lastResult
	q := s.lastQuestion

	var b strings.Builder
	b.WriteString("\n\n")

	if res.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		heading := "Not quite"
		if res.Close {
			heading = "So close!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(heading))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("The answer was %d", q.Answer)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(res.Message))

	if s.streak >= 2 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Star).
			Render(fmt.Sprintf("🔥 %d in a row!", s.streak)))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("press any key"))

	return b.String()
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop playing?") +
		"\n\n" +
		lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Your progress this game won't be saved.")

	return "\n\n" + content
}
