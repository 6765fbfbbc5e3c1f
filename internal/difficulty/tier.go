package difficulty

import "strings"

// Tier is one of the three fixed difficulty levels.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Tiers lists all tiers in ascending difficulty order.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// Settings holds the immutable configuration for one tier.
type Settings struct {
	// Min and Max bound operand generation (inclusive).
	Min int
	Max int

	// QuestionsPerSession is the target question count for one practice run.
	QuestionsPerSession int
}

// settings is fixed configuration, not runtime state.
var settings = map[Tier]Settings{
	TierEasy:   {Min: 1, Max: 10, QuestionsPerSession: 5},
	TierMedium: {Min: 5, Max: 25, QuestionsPerSession: 5},
	TierHard:   {Min: 10, Max: 50, QuestionsPerSession: 5},
}

// Get returns the settings for the given tier.
// Unknown tiers resolve to Easy, matching Parse.
func Get(t Tier) Settings {
	if s, ok := settings[t]; ok {
		return s
	}
	return settings[TierEasy]
}

// Parse converts external input (case-insensitive) to a Tier.
// Anything outside the enumerated set falls back to Easy — a defensive
// default for malformed input from the presentation layer, not an error.
func Parse(raw string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierEasy:
		return TierEasy
	case TierMedium:
		return TierMedium
	case TierHard:
		return TierHard
	default:
		return TierEasy
	}
}

// Valid reports whether raw names an enumerated tier (case-insensitive).
func Valid(raw string) bool {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// Label returns a human-readable name for display.
func (t Tier) Label() string {
	switch t {
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return "Easy"
	}
}
