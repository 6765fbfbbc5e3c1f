package progress

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// memStore is an in-memory SaveStore for model tests.
type memStore struct {
	data    *SaveData
	loadErr error
	saveErr error
	delErr  error
	saves   int
}

func (m *memStore) Load(_ context.Context) (*SaveData, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *memStore) Save(_ context.Context, data *SaveData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data = data
	return nil
}

func (m *memStore) Delete(_ context.Context) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.data = nil
	return nil
}

func newTestModel(store SaveStore) (*Model, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewModel(store, log.New(&buf, "", 0)), &buf
}

func TestPerfectEasySession(t *testing.T) {
	m, _ := newTestModel(&memStore{})
	ctx := context.Background()

	m.StartSession(difficulty.TierEasy, 5)
	for i := 0; i < 5; i++ {
		m.RecordAnswer(true)
		m.AddScore(100)
	}

	res := m.CompleteSession(ctx)
	if res.Stars != 3 {
		t.Errorf("Stars = %d, want 3", res.Stars)
	}
	if res.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", res.Accuracy)
	}
	if res.Score != 500 {
		t.Errorf("Score = %d, want 500", res.Score)
	}
	if !res.NewHighScore {
		t.Error("first session should set a high score")
	}
	if res.Level != 1 {
		t.Errorf("Level = %d, want 1", res.Level)
	}
	if !res.Persisted {
		t.Error("expected a successful persist")
	}
}

func TestMixedSession(t *testing.T) {
	m, _ := newTestModel(&memStore{})

	m.StartSession(difficulty.TierMedium, 3)
	m.RecordAnswer(true)
	m.RecordAnswer(true)
	m.RecordAnswer(false)

	acc := m.Accuracy()
	if acc < 66.6 || acc > 66.7 {
		t.Errorf("Accuracy = %v, want ~66.67", acc)
	}
	if m.Stars() != 1 {
		t.Errorf("Stars = %d, want 1", m.Stars())
	}
}

func TestStarsZeroWithNoAnswers(t *testing.T) {
	m, _ := newTestModel(&memStore{})
	m.StartSession(difficulty.TierEasy, 5)
	if m.Stars() != 0 {
		t.Errorf("Stars with no answers = %d, want 0", m.Stars())
	}
}

func TestNegativeScoreRejected(t *testing.T) {
	m, buf := newTestModel(&memStore{})
	m.StartSession(difficulty.TierEasy, 5)
	m.AddScore(100)

	if m.AddScore(-50) {
		t.Error("AddScore(-50) = true, want rejection")
	}
	if m.Session().Score != 100 {
		t.Errorf("Score = %d after rejected delta, want 100", m.Session().Score)
	}
	if !strings.Contains(buf.String(), "negative score") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestNegativeCoinsRejected(t *testing.T) {
	m, buf := newTestModel(&memStore{})
	m.StartSession(difficulty.TierEasy, 5)
	m.AddCoins(2)

	if m.AddCoins(-1) {
		t.Error("AddCoins(-1) = true, want rejection")
	}
	if m.Session().Coins != 2 {
		t.Errorf("Coins = %d after rejected count, want 2", m.Session().Coins)
	}
	if !strings.Contains(buf.String(), "negative coin") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	m, _ := newTestModel(store)
	m.StartSession(difficulty.TierEasy, 5)
	m.RecordAnswer(true)
	m.AddScore(250)
	m.AddCoins(3)
	m.CompleteSession(ctx)

	reloaded, _ := newTestModel(store)
	if !reloaded.Load(ctx) {
		t.Fatal("Load = false, want true")
	}
	p := reloaded.Persistent()
	if p.SessionsPlayed != 1 {
		t.Errorf("SessionsPlayed = %d, want 1", p.SessionsPlayed)
	}
	if p.TotalCoins != 3 {
		t.Errorf("TotalCoins = %d, want 3", p.TotalCoins)
	}
	if p.HighScores[difficulty.TierEasy] != 250 {
		t.Errorf("high score = %d, want 250", p.HighScores[difficulty.TierEasy])
	}
	last := reloaded.LastSession()
	if last == nil || last.Score != 250 || last.Tier != difficulty.TierEasy {
		t.Errorf("LastSession = %+v, want easy/250", last)
	}
}

func TestCorruptedLoadFallsBackToDefaults(t *testing.T) {
	store := &memStore{loadErr: errors.New("invalid character 'x'")}
	m, buf := newTestModel(store)

	if m.Load(context.Background()) {
		t.Error("Load = true for corrupted store, want false")
	}
	p := m.Persistent()
	if p.PlayerID == "" || p.SessionsPlayed != 0 {
		t.Errorf("expected default persistent record, got %+v", p)
	}
	if !strings.Contains(buf.String(), "load failed") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestSaveFailureReportedNotFatal(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	m, buf := newTestModel(store)
	ctx := context.Background()

	m.StartSession(difficulty.TierEasy, 5)
	m.RecordAnswer(true)
	res := m.CompleteSession(ctx)

	if res.Persisted {
		t.Error("Persisted = true, want false")
	}
	// Merge is not rolled back.
	if m.Persistent().SessionsPlayed != 1 {
		t.Errorf("SessionsPlayed = %d, want 1 (merge kept)", m.Persistent().SessionsPlayed)
	}
	if res.Stars != 3 || res.Accuracy != 100 {
		t.Errorf("results snapshot = %+v, want full grading", res)
	}
	if !strings.Contains(buf.String(), "save failed") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestNilStorePlaysInMemory(t *testing.T) {
	m, _ := newTestModel(nil)
	ctx := context.Background()

	if m.Load(ctx) {
		t.Error("Load with nil store = true, want false")
	}
	m.StartSession(difficulty.TierHard, 5)
	m.RecordAnswer(true)
	res := m.CompleteSession(ctx)
	if res.Persisted {
		t.Error("Persisted = true with nil store")
	}
	if res.Stars != 3 {
		t.Errorf("Stars = %d, want 3", res.Stars)
	}
}

func TestResetSessionLeavesPersistent(t *testing.T) {
	store := &memStore{}
	m, _ := newTestModel(store)
	ctx := context.Background()

	m.StartSession(difficulty.TierEasy, 5)
	m.RecordAnswer(true)
	m.CompleteSession(ctx)
	savesBefore := store.saves

	m.StartSession(difficulty.TierEasy, 5)
	m.RecordAnswer(false)
	m.ResetSession()

	if m.Session() != nil {
		t.Error("session not cleared")
	}
	if m.Persistent().SessionsPlayed != 1 {
		t.Error("ResetSession touched the persistent record")
	}
	if store.saves != savesBefore {
		t.Error("ResetSession wrote to storage")
	}
}

func TestResetAllProgressDeletesStorage(t *testing.T) {
	store := &memStore{}
	m, _ := newTestModel(store)
	ctx := context.Background()

	m.StartSession(difficulty.TierEasy, 5)
	m.RecordAnswer(true)
	m.CompleteSession(ctx)

	if !m.ResetAllProgress(ctx) {
		t.Fatal("ResetAllProgress = false, want true")
	}
	if store.data != nil {
		t.Error("durable entry not deleted")
	}
	if m.Persistent().SessionsPlayed != 0 {
		t.Error("in-memory record not reset")
	}
	if m.LastSession() != nil {
		t.Error("last-session snapshot not cleared")
	}
}

func TestStartSessionDiscardsUnsavedProgress(t *testing.T) {
	m, _ := newTestModel(&memStore{})
	m.StartSession(difficulty.TierEasy, 5)
	m.RecordAnswer(true)
	m.AddScore(100)

	m.StartSession(difficulty.TierMedium, 5)
	s := m.Session()
	if s.Score != 0 || s.Answered != 0 || s.Tier != difficulty.TierMedium {
		t.Errorf("new session not zeroed: %+v", s)
	}
	if m.Persistent().SessionsPlayed != 0 {
		t.Error("partial session leaked into persistent record")
	}
}

func TestRecordAnswerWithoutSessionIgnored(t *testing.T) {
	m, buf := newTestModel(&memStore{})
	m.RecordAnswer(true)
	if !strings.Contains(buf.String(), "no live session") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestSetPreferencesPersists(t *testing.T) {
	store := &memStore{}
	m, _ := newTestModel(store)
	ctx := context.Background()

	if !m.SetPreferences(ctx, Preferences{Sound: false, Music: true}) {
		t.Fatal("SetPreferences = false, want true")
	}
	if store.data == nil || store.data.Persistent.Preferences.Sound {
		t.Error("preference change not written")
	}
}

func TestDefaultQuestionCountFromTier(t *testing.T) {
	m, _ := newTestModel(&memStore{})
	m.StartSession(difficulty.TierEasy, 0)
	want := difficulty.Get(difficulty.TierEasy).QuestionsPerSession
	if got := m.Session().TotalQuestions; got != want {
		t.Errorf("TotalQuestions = %d, want %d", got, want)
	}
}
