package progress

// Star thresholds are inclusive lower bounds on accuracy percentage.
// They are identical across tiers: harder tiers already yield lower raw
// accuracy, so the cutoffs are not tier-adjusted.
const (
	threeStarAccuracy = 95
	twoStarAccuracy   = 80
	oneStarAccuracy   = 60

	// MaxStars is the top grade for one session.
	MaxStars = 3
)

// StarsForAccuracy maps an accuracy percentage to a 0-3 star grade.
func StarsForAccuracy(accuracy float64) int {
	switch {
	case accuracy >= threeStarAccuracy:
		return 3
	case accuracy >= twoStarAccuracy:
		return 2
	case accuracy >= oneStarAccuracy:
		return 1
	default:
		return 0
	}
}
