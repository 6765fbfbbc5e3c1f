package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/sumstars/sumstars/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing numeric answers.
// It admits digits and a minus sign; everything else is dropped before
// it reaches the input model. Full sanitization still happens in the
// question engine — this is display-level filtering only.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a styled answer input.
func NewAnswerInput() AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.CharLimit = 8
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, filtering non-numeric keystrokes.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			c := key[0]
			if (c < '0' || c > '9') && c != '-' {
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return theme.Body.Render(a.Model.View())
}

// Value returns the current raw input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reset clears the input for the next question.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
}
