package progress

import (
	"time"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// Session is the mutable record of one live practice run. It is created
// by StartSession, mutated by every recorded answer and coin pickup,
// and folded into the persistent record at completion. Partial sessions
// are never persisted.
type Session struct {
	Tier           difficulty.Tier
	QuestionIndex  int
	TotalQuestions int

	Score     int
	Correct   int
	Incorrect int
	Answered  int
	Coins     int

	StartedAt time.Time

	// Stars is stamped at completion; zero before that.
	Stars int
}

// Accuracy returns the session's accuracy percentage.
// Zero answers means zero accuracy, never NaN.
func (s *Session) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered) * 100
}

// Record adds one answer outcome to the counters.
func (s *Session) Record(correct bool) {
	s.Answered++
	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
}
