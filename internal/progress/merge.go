package progress

import (
	"time"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// Merge folds a completed session into the persistent record and
// returns the next record. It is a pure function: persistence is the
// caller's separate, explicit step, so the grading arithmetic is
// testable without a storage backend.
func Merge(prev Persistent, s Session, completedAt time.Time) Persistent {
	next := prev

	// Maps need copying so the previous record stays untouched.
	next.HighScores = make(map[difficulty.Tier]int, len(prev.HighScores)+1)
	for tier, score := range prev.HighScores {
		next.HighScores[tier] = score
	}
	next.CompletedLevels = make(map[difficulty.Tier][]int, len(prev.CompletedLevels)+1)
	for tier, levels := range prev.CompletedLevels {
		next.CompletedLevels[tier] = append([]int(nil), levels...)
	}

	next.SessionsPlayed++
	next.TotalCoins += s.Coins
	next.TotalStars += s.Stars
	next.LastPlayed = completedAt

	if s.Score > next.HighScores[s.Tier] {
		next.HighScores[s.Tier] = s.Score
	}

	level := len(next.CompletedLevels[s.Tier]) + 1
	next.CompletedLevels[s.Tier] = append(next.CompletedLevels[s.Tier], level)

	return next
}
