package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/sumstars/sumstars/internal/difficulty"
	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/question"
	"github.com/sumstars/sumstars/internal/router"
	"github.com/sumstars/sumstars/internal/screen"
	"github.com/sumstars/sumstars/internal/screens/summary"
	"github.com/sumstars/sumstars/internal/ui/components"
	"github.com/sumstars/sumstars/internal/ui/layout"
)

// Scoring is presentation policy, not core logic: the progress model
// only receives the resulting point values.
const (
	basePoints   = 100
	streakPoints = 20
	streakCoinAt = 3
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseQuitConfirm
)

// SessionScreen runs one practice session: generate, display, answer,
// feedback, repeat until the question count is reached.
type SessionScreen struct {
	engine *question.Engine
	model  *progress.Model

	input components.AnswerInput
	phase phase

	// lastResult holds the grading of the most recent valid answer.
	lastResult question.Result

	// lastQuestion is the question being shown in feedback.
	lastQuestion *question.Question

	// inputError holds the message for an invalid (non-numeric) attempt;
	// invalid attempts are not recorded and the question stays live.
	inputError string

	streak int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New starts a session at the given tier and generates the first
// question. Everything is synchronous: template instantiation is pure
// in-memory work.
func New(engine *question.Engine, model *progress.Model, tier difficulty.Tier, questions int) *SessionScreen {
	engine.SetDifficulty(string(tier))
	model.StartSession(tier, questions)
	engine.NextQuestion()

	return &SessionScreen{
		engine: engine,
		model:  model,
		input:  components.NewAnswerInput(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop playing"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Stop"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.phase {
	case phaseQuitConfirm:
		if !isKey {
			return s, nil
		}
		switch kmsg.String() {
		case "y", "Y":
			s.model.ResetSession()
			s.engine.ClearCurrent()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseAnswering
		}
		return s, nil

	case phaseFeedback:
		if isKey {
			return s.advance()
		}
		return s, nil

	default:
		if isKey {
			switch kmsg.String() {
			case "esc":
				s.phase = phaseQuitConfirm
				return s, nil
			case "enter":
				s.submit()
				return s, nil
			}
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
}

// submit grades the typed answer. Valid answers are recorded and move
// the session to feedback; invalid input keeps the question live with
// an inline prompt.
func (s *SessionScreen) submit() {
	res, err := s.engine.ValidateAnswer(s.input.Value())
	if err != nil {
		// No live question; nothing to grade.
		return
	}

	if !res.Valid {
		s.inputError = res.Message
		s.input.Reset()
		return
	}

	s.inputError = ""
	s.lastResult = res
	s.lastQuestion = s.engine.Current()
	s.model.RecordAnswer(res.Correct)

	if res.Correct {
		s.streak++
		points := basePoints
		if s.streak > 1 {
			points += streakPoints
		}
		s.model.AddScore(points)
		s.model.AddCoins(1)
		if s.streak%streakCoinAt == 0 {
			s.model.AddCoins(1)
		}
	} else {
		s.streak = 0
	}

	s.phase = phaseFeedback
}

// advance moves past feedback: either the next question or, after the
// final one, session completion and the summary screen.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	s.model.AdvanceQuestion()

	sess := s.model.Session()
	if sess == nil || sess.QuestionIndex >= sess.TotalQuestions {
		results := s.model.CompleteSession(context.Background())
		s.engine.ClearCurrent()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(results)}
		}
	}

	s.engine.NextQuestion()
	s.input.Reset()
	s.phase = phaseAnswering
	return s, nil
}
