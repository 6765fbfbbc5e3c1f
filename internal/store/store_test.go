package store

import (
	"context"
	"testing"
	"time"

	"github.com/sumstars/sumstars/internal/difficulty"
	"github.com/sumstars/sumstars/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	// No entry yet.
	data, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil save data when none exists")
	}

	now := time.Now().UTC().Truncate(time.Second)
	in := &progress.SaveData{
		Persistent: progress.Persistent{
			PlayerID:       "player-1",
			CreatedAt:      now,
			LastPlayed:     now,
			SessionsPlayed: 2,
			TotalCoins:     7,
			TotalStars:     5,
			HighScores: map[difficulty.Tier]int{
				difficulty.TierEasy: 500,
			},
			CompletedLevels: map[difficulty.Tier][]int{
				difficulty.TierEasy: {1, 2},
			},
			Preferences: progress.Preferences{Sound: true},
		},
		LastSession: &progress.LastSession{
			Tier:        difficulty.TierEasy,
			Score:       500,
			Stars:       3,
			Coins:       4,
			CompletedAt: now,
		},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out == nil {
		t.Fatal("load returned nil after save")
	}
	if out.Persistent.PlayerID != "player-1" {
		t.Errorf("PlayerID = %q, want player-1", out.Persistent.PlayerID)
	}
	if out.Persistent.SessionsPlayed != 2 || out.Persistent.TotalCoins != 7 {
		t.Errorf("totals = %d/%d, want 2/7", out.Persistent.SessionsPlayed, out.Persistent.TotalCoins)
	}
	if out.Persistent.HighScores[difficulty.TierEasy] != 500 {
		t.Errorf("high score = %d, want 500", out.Persistent.HighScores[difficulty.TierEasy])
	}
	if got := out.Persistent.CompletedLevels[difficulty.TierEasy]; len(got) != 2 {
		t.Errorf("completed levels = %v, want [1 2]", got)
	}
	if out.LastSession == nil || out.LastSession.Stars != 3 {
		t.Errorf("last session = %+v, want stars 3", out.LastSession)
	}
}

func TestSaveReplacesPreviousEntry(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	first := &progress.SaveData{Persistent: progress.Persistent{PlayerID: "p", SessionsPlayed: 1}}
	second := &progress.SaveData{Persistent: progress.Persistent{PlayerID: "p", SessionsPlayed: 2}}

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Persistent.SessionsPlayed != 2 {
		t.Errorf("SessionsPlayed = %d, want 2 (replaced)", out.Persistent.SessionsPlayed)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &progress.SaveData{Persistent: progress.Persistent{PlayerID: "p"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if out != nil {
		t.Error("entry still present after delete")
	}

	// Deleting again is not an error.
	if err := repo.Delete(ctx); err != nil {
		t.Errorf("delete (missing): %v", err)
	}
}

func TestLoadCorruptedEntryReturnsError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		"INSERT INTO save_slots (slot, data, updated_at) VALUES (?, ?, ?)",
		"default", "{not valid json", time.Now().UTC())
	if err != nil {
		t.Fatalf("seed corrupted entry: %v", err)
	}

	if _, err := s.SaveRepo().Load(ctx); err == nil {
		t.Error("want decode error for corrupted entry")
	}
}

func TestSlotsAreIsolated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := s.SaveRepoForSlot("a")
	b := s.SaveRepoForSlot("b")

	if err := a.Save(ctx, &progress.SaveData{Persistent: progress.Persistent{PlayerID: "a"}}); err != nil {
		t.Fatalf("save a: %v", err)
	}

	out, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("load b: %v", err)
	}
	if out != nil {
		t.Error("slot b sees slot a's data")
	}
}
