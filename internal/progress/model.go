package progress

import (
	"context"
	"log"
	"time"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// Model owns all numeric bookkeeping for one session and its
// accumulation into durable cross-session stats. Storage failures are
// logged and reported as booleans, never propagated: the game must stay
// playable with storage entirely unavailable.
type Model struct {
	store      SaveStore
	logger     *log.Logger
	persistent Persistent
	last       *LastSession
	session    *Session

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewModel creates a Model over the given store. A nil store disables
// persistence but leaves every in-memory operation working. A nil
// logger falls back to the standard logger.
func NewModel(store SaveStore, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	m := &Model{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	m.persistent = DefaultPersistent(m.now())
	return m
}

// Load reads the durable record. A missing entry, a corrupted entry, or
// a read failure all resolve to default values; only a clean read
// returns true.
func (m *Model) Load(ctx context.Context) bool {
	if m.store == nil {
		return false
	}
	data, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Printf("progress: load failed, using defaults: %v", err)
		m.persistent = DefaultPersistent(m.now())
		m.last = nil
		return false
	}
	if data == nil {
		return false
	}
	m.persistent = normalize(data.Persistent, m.now())
	m.last = data.LastSession
	return true
}

// normalize backfills fields a hand-edited or older record may lack.
func normalize(p Persistent, now time.Time) Persistent {
	if p.PlayerID == "" {
		p = DefaultPersistent(now)
		return p
	}
	if p.HighScores == nil {
		p.HighScores = make(map[difficulty.Tier]int)
	}
	if p.CompletedLevels == nil {
		p.CompletedLevels = make(map[difficulty.Tier][]int)
	}
	return p
}

// StartSession replaces the live session with fresh zeroed counters.
// Any unsaved progress from a prior uncompleted session is discarded:
// only CompleteSession persists.
func (m *Model) StartSession(tier difficulty.Tier, totalQuestions int) {
	if totalQuestions <= 0 {
		totalQuestions = difficulty.Get(tier).QuestionsPerSession
	}
	m.session = &Session{
		Tier:           tier,
		TotalQuestions: totalQuestions,
		StartedAt:      m.now(),
	}
}

// Session returns the live session, or nil outside a practice run.
func (m *Model) Session() *Session {
	return m.session
}

// RecordAnswer counts one answer outcome. The caller, having used the
// question engine's validator, is the sole source of truth for
// correctness.
func (m *Model) RecordAnswer(correct bool) {
	if m.session == nil {
		m.logger.Printf("progress: RecordAnswer with no live session, ignored")
		return
	}
	m.session.Record(correct)
}

// AdvanceQuestion moves the question cursor forward.
func (m *Model) AdvanceQuestion() {
	if m.session != nil {
		m.session.QuestionIndex++
	}
}

// AddScore adds points to the session score. Negative values are a
// programming error in the calling layer: they are rejected with a
// warning, never applied and never fatal.
func (m *Model) AddScore(points int) bool {
	if m.session == nil {
		m.logger.Printf("progress: AddScore with no live session, ignored")
		return false
	}
	if points < 0 {
		m.logger.Printf("progress: rejected negative score delta %d", points)
		return false
	}
	m.session.Score += points
	return true
}

// AddCoins adds collected bonus coins to the session. Negative counts
// are rejected with a warning.
func (m *Model) AddCoins(count int) bool {
	if m.session == nil {
		m.logger.Printf("progress: AddCoins with no live session, ignored")
		return false
	}
	if count < 0 {
		m.logger.Printf("progress: rejected negative coin count %d", count)
		return false
	}
	m.session.Coins += count
	return true
}

// Accuracy returns the live session's accuracy percentage (0 with no
// session or no answers).
func (m *Model) Accuracy() float64 {
	if m.session == nil {
		return 0
	}
	return m.session.Accuracy()
}

// Stars returns the star grade the live session would earn right now.
func (m *Model) Stars() int {
	if m.session == nil || m.session.Answered == 0 {
		return 0
	}
	return StarsForAccuracy(m.session.Accuracy())
}

// CompleteSession finalizes the live session: stamps the star grade,
// merges the terminal numbers into the persistent record, persists the
// combined snapshot, and returns the results for immediate display.
// The merge sticks in memory even when the write fails.
func (m *Model) CompleteSession(ctx context.Context) Results {
	if m.session == nil {
		m.logger.Printf("progress: CompleteSession with no live session")
		return Results{}
	}

	s := m.session
	now := m.now()
	s.Stars = m.Stars()

	prevHigh := m.persistent.HighScores[s.Tier]
	m.persistent = Merge(m.persistent, *s, now)

	m.last = &LastSession{
		Tier:        s.Tier,
		Score:       s.Score,
		Stars:       s.Stars,
		Coins:       s.Coins,
		CompletedAt: now,
	}

	results := Results{
		Tier:         s.Tier,
		Score:        s.Score,
		Accuracy:     s.Accuracy(),
		Stars:        s.Stars,
		Coins:        s.Coins,
		Correct:      s.Correct,
		Total:        s.Answered,
		Elapsed:      now.Sub(s.StartedAt),
		NewHighScore: s.Score > prevHigh,
		Level:        len(m.persistent.CompletedLevels[s.Tier]),
	}

	results.Persisted = m.persist(ctx)
	m.session = nil
	return results
}

// ResetSession zeroes only the live session; the persistent record and
// its storage stay untouched.
func (m *Model) ResetSession() {
	m.session = nil
}

// ResetAllProgress zeroes both in-memory records and deletes the
// durable entry entirely. Destructive and irreversible; confirmation is
// a presentation-layer concern.
func (m *Model) ResetAllProgress(ctx context.Context) bool {
	m.session = nil
	m.persistent = DefaultPersistent(m.now())
	m.last = nil

	if m.store == nil {
		return false
	}
	if err := m.store.Delete(ctx); err != nil {
		m.logger.Printf("progress: delete failed: %v", err)
		return false
	}
	return true
}

// SetPreferences updates the sound/music flags and writes the record back.
func (m *Model) SetPreferences(ctx context.Context, prefs Preferences) bool {
	m.persistent.Preferences = prefs
	return m.persist(ctx)
}

// Persistent returns a copy of the current persistent record.
func (m *Model) Persistent() Persistent {
	return m.persistent
}

// LastSession returns the condensed snapshot of the most recently
// completed session, or nil when none exists.
func (m *Model) LastSession() *LastSession {
	return m.last
}

// persist writes the combined snapshot. Failures are logged and
// reported, not thrown; the caller may retry explicitly.
func (m *Model) persist(ctx context.Context) bool {
	if m.store == nil {
		return false
	}
	data := &SaveData{Persistent: m.persistent, LastSession: m.last}
	if err := m.store.Save(ctx, data); err != nil {
		m.logger.Printf("progress: save failed: %v", err)
		return false
	}
	return true
}
