package question

import (
	"errors"
	"strconv"
	"strings"
)

// closeThreshold is the maximum absolute distance from the expected
// answer that still counts as "close" (wrong, but softer feedback).
const closeThreshold = 2

// ErrNoQuestion is returned when validation is requested with no current
// question and no explicit expected value. It is distinct from invalid
// input so the caller can branch differently from "wrong answer".
var ErrNoQuestion = errors.New("no question to validate")

// Result is the outcome of validating one raw answer.
// Correct and Close are mutually exclusive: an exact match is never
// also close.
type Result struct {
	// Valid reports whether the input parsed to an integer after
	// sanitization.
	Valid bool

	// Correct is true when the parsed value equals the expected answer.
	Correct bool

	// Close is true when the answer is wrong but within closeThreshold
	// of the expected value.
	Close bool

	// Parsed is the sanitized numeric value; meaningful only when Valid.
	Parsed int

	// Message is a human-readable encouragement chosen for the outcome
	// bucket. Empty when produced by the pure Evaluate function.
	Message string
}

// Sanitize normalizes raw answer text before numeric parsing:
// surrounding whitespace is trimmed, every character that is not a
// digit or minus sign is removed, a minus anywhere past position 0
// invalidates all minuses, and repeated leading minuses collapse to one.
// Sanitize is idempotent.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// A minus that is not leading means the input is malformed rather
	// than negative: drop every minus instead of guessing intent.
	if i := strings.LastIndex(s, "-"); i > 0 && strings.Trim(s[:i], "-") != "" {
		return strings.ReplaceAll(s, "-", "")
	}

	// Collapse repeated leading minuses to a single sign.
	trimmed := strings.TrimLeft(s, "-")
	if len(s) > len(trimmed) {
		return "-" + trimmed
	}
	return s
}

// Evaluate grades raw input against an expected integer. It is a pure
// function: no message selection, no engine state.
func Evaluate(raw string, expected int) Result {
	clean := Sanitize(raw)
	if clean == "" || clean == "-" {
		return Result{}
	}

	parsed, err := strconv.Atoi(clean)
	if err != nil {
		return Result{}
	}

	res := Result{Valid: true, Parsed: parsed}
	if parsed == expected {
		res.Correct = true
		return res
	}

	diff := parsed - expected
	if diff < 0 {
		diff = -diff
	}
	res.Close = diff <= closeThreshold
	return res
}

// ValidateAnswer grades raw input against the current question and
// attaches an encouragement message. Returns ErrNoQuestion when no
// question has been generated.
func (e *Engine) ValidateAnswer(raw string) (Result, error) {
	if e.current == nil {
		return Result{}, ErrNoQuestion
	}
	return e.ValidateAgainst(raw, e.current.Answer), nil
}

// ValidateAgainst grades raw input against an explicit expected value,
// supporting grading something other than the live question.
func (e *Engine) ValidateAgainst(raw string, expected int) Result {
	res := Evaluate(raw, expected)
	res.Message = e.pickMessage(res)
	return res
}
