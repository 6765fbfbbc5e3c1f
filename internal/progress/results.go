package progress

import (
	"time"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// Results is the read-only snapshot returned when a session completes,
// for immediate display regardless of storage success.
type Results struct {
	Tier     difficulty.Tier
	Score    int
	Accuracy float64
	Stars    int
	Coins    int
	Correct  int
	Total    int
	Elapsed  time.Duration

	// NewHighScore is true when this session raised the tier's high score.
	NewHighScore bool

	// Level is the ordinal of this completion on its tier.
	Level int

	// Persisted reports whether the durable write succeeded. A failed
	// write does not roll back the in-memory merge.
	Persisted bool
}
