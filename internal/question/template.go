package question

import "github.com/sumstars/sumstars/internal/difficulty"

// Kind indicates how a question is phrased.
type Kind string

const (
	// KindEquation is a bare arithmetic prompt, e.g. "What is 4 + 3?".
	KindEquation Kind = "equation"

	// KindWordProblem wraps the operands in a short story.
	KindWordProblem Kind = "word-problem"
)

// Operation is the arithmetic operation a template exercises.
type Operation string

const (
	OpAddition    Operation = "addition"
	OpSubtraction Operation = "subtraction"
)

// HintType describes how a visual hint should be rendered.
type HintType string

const (
	// HintCountingObjects renders the operands as countable objects.
	HintCountingObjects HintType = "counting-objects"

	// HintNumberLine renders a number line spanning the operands.
	HintNumberLine HintType = "number-line"
)

// Hint is optional visual-hint metadata on a template.
// The zero value means "no hint".
type Hint struct {
	Type HintType `json:"type,omitempty"`
}

// Present reports whether a hint is attached.
func (h Hint) Present() bool {
	return h.Type != ""
}

// Template is a static question blueprint. Templates are loaded once
// into a per-tier pool and never mutated.
type Template struct {
	// ID is the stable identifier, unique across the pack.
	ID string `json:"id"`

	// Tier is the difficulty tier this template belongs to.
	Tier difficulty.Tier `json:"tier"`

	Kind      Kind      `json:"kind"`
	Operation Operation `json:"operation"`

	// Text is the display pattern with {a} and {b} operand placeholders.
	Text string `json:"text"`

	// MinValue and MaxValue bound operand sampling (inclusive).
	// They override the tier's default range.
	MinValue int `json:"minValue"`
	MaxValue int `json:"maxValue"`

	Hint Hint `json:"hint,omitzero"`
}

// Question is one concrete, fully-resolved instantiation of a template
// for a single turn. It is never persisted.
type Question struct {
	// ID is the template id plus a uniqueness suffix.
	ID         string
	TemplateID string

	Kind      Kind
	Operation Operation

	// Text is the rendered prompt. For subtraction the larger operand
	// always appears first.
	Text string

	// Answer is the correct integer result.
	Answer int

	// OperandA and OperandB are the operands as rendered: for
	// subtraction, OperandA >= OperandB.
	OperandA int
	OperandB int

	Hint Hint
	Tier difficulty.Tier
}
