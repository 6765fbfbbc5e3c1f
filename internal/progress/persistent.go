package progress

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// Preferences are user-facing toggles carried in the persistent record.
type Preferences struct {
	Sound bool `json:"sound"`
	Music bool `json:"music"`
}

// Persistent is the cross-session aggregate: the only entity that
// survives process restarts. It is merged into, never replaced, when a
// session completes.
type Persistent struct {
	PlayerID   string    `json:"playerId"`
	CreatedAt  time.Time `json:"createdAt"`
	LastPlayed time.Time `json:"lastPlayed"`

	SessionsPlayed int `json:"sessionsPlayed"`
	TotalCoins     int `json:"totalCoins"`
	TotalStars     int `json:"totalStars"`

	// HighScores holds the best session score per tier; it never decreases.
	HighScores map[difficulty.Tier]int `json:"highScores"`

	// CompletedLevels lists completed level ordinals per tier. A level
	// has no identity beyond its position: the Nth completion on a tier
	// is level N.
	CompletedLevels map[difficulty.Tier][]int `json:"completedLevels"`

	Preferences Preferences `json:"preferences"`
}

// LastSession is a condensed snapshot of the most recently completed
// session, stored alongside the persistent record for quick
// "continue where you left off" display.
type LastSession struct {
	Tier        difficulty.Tier `json:"tier"`
	Score       int             `json:"score"`
	Stars       int             `json:"stars"`
	Coins       int             `json:"coins"`
	CompletedAt time.Time       `json:"completedAt"`
}

// SaveData is the full durable document: one entry in the save store.
type SaveData struct {
	Persistent  Persistent   `json:"persistent"`
	LastSession *LastSession `json:"lastSession,omitempty"`
}

// SaveStore is the durable storage contract the progress model depends
// on. Implementations must be safe for a single execution context; the
// model never writes concurrently.
type SaveStore interface {
	// Load returns the stored document, or (nil, nil) when no entry exists.
	Load(ctx context.Context) (*SaveData, error)

	// Save writes the full document, replacing any previous entry.
	Save(ctx context.Context, data *SaveData) error

	// Delete removes the durable entry entirely.
	Delete(ctx context.Context) error
}

// DefaultPersistent builds a fresh record with a new player identity.
// Sound and music start enabled.
func DefaultPersistent(now time.Time) Persistent {
	return Persistent{
		PlayerID:        uuid.NewString(),
		CreatedAt:       now,
		LastPlayed:      now,
		HighScores:      make(map[difficulty.Tier]int),
		CompletedLevels: make(map[difficulty.Tier][]int),
		Preferences:     Preferences{Sound: true, Music: true},
	}
}
