package question

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sumstars/sumstars/internal/difficulty"
)

// recentWindowSize bounds the FIFO of recently used template ids.
const recentWindowSize = 3

// fallbackTemplate guarantees the engine can always produce a question,
// even when the template pack is missing or a tier pool is empty.
var fallbackTemplate = Template{
	ID:        "fallback-add",
	Tier:      difficulty.TierEasy,
	Kind:      KindEquation,
	Operation: OpAddition,
	Text:      "What is {a} + {b}?",
	MinValue:  1,
	MaxValue:  10,
}

// Engine produces difficulty-appropriate arithmetic questions and
// adjudicates answers. It has no awareness of scoring, rendering, or
// persistence: its only state is the active tier, the current question,
// and the recent-template window.
type Engine struct {
	pools   Pools
	rng     *rand.Rand
	tier    difficulty.Tier
	current *Question
	recent  []string
}

// NewEngine creates an Engine over the given pools with an injected
// random source, so generation is deterministically testable.
func NewEngine(pools Pools, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		pools: pools,
		rng:   rng,
		tier:  difficulty.TierEasy,
	}
}

// SetDifficulty sets the active tier from external input. Values outside
// the enumerated set fall back to Easy. The recent-template window is
// cleared so "recently seen" state never crosses a tier boundary.
func (e *Engine) SetDifficulty(raw string) difficulty.Tier {
	e.tier = difficulty.Parse(raw)
	e.recent = e.recent[:0]
	return e.tier
}

// Tier returns the active difficulty tier.
func (e *Engine) Tier() difficulty.Tier {
	return e.tier
}

// Current returns the live question, or nil if none has been generated.
func (e *Engine) Current() *Question {
	return e.current
}

// ClearCurrent drops the live question without generating a new one.
func (e *Engine) ClearCurrent() {
	e.current = nil
}

// NextQuestion instantiates a new question from the active tier's pool
// and makes it the current question. It never returns nil: an unusable
// pool falls back to a hardcoded addition template.
//
// Templates in the recent window are skipped unless skipping them would
// leave no candidates, in which case the full pool is used — with a
// small pool this can repeat a template immediately, which is accepted
// best-effort behavior rather than a hard guarantee.
func (e *Engine) NextQuestion() *Question {
	pool := e.pools[e.tier]
	if len(pool) == 0 {
		pool = []Template{fallbackTemplate}
	}

	candidates := make([]Template, 0, len(pool))
	for _, tmpl := range pool {
		if !e.recentlyUsed(tmpl.ID) {
			candidates = append(candidates, tmpl)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	tmpl := candidates[e.rng.Intn(len(candidates))]
	q := e.instantiate(tmpl)

	e.pushRecent(tmpl.ID)
	e.current = q
	return q
}

// instantiate samples operands and renders the template.
func (e *Engine) instantiate(tmpl Template) *Question {
	a := e.sample(tmpl.MinValue, tmpl.MaxValue)
	b := e.sample(tmpl.MinValue, tmpl.MaxValue)

	var answer int
	switch tmpl.Operation {
	case OpSubtraction:
		// Subtraction never goes negative: render larger - smaller.
		if b > a {
			a, b = b, a
		}
		answer = a - b
	default:
		answer = a + b
	}

	return &Question{
		ID:         tmpl.ID + "-" + uuid.NewString(),
		TemplateID: tmpl.ID,
		Kind:       tmpl.Kind,
		Operation:  tmpl.Operation,
		Text:       renderText(tmpl.Text, a, b),
		Answer:     answer,
		OperandA:   a,
		OperandB:   b,
		Hint:       tmpl.Hint,
		Tier:       tmpl.Tier,
	}
}

// sample draws uniformly from [min, max] inclusive.
func (e *Engine) sample(min, max int) int {
	if max <= min {
		return min
	}
	return min + e.rng.Intn(max-min+1)
}

// renderText substitutes the operand placeholders.
func renderText(pattern string, a, b int) string {
	r := strings.NewReplacer("{a}", strconv.Itoa(a), "{b}", strconv.Itoa(b))
	return r.Replace(pattern)
}

func (e *Engine) recentlyUsed(id string) bool {
	for _, r := range e.recent {
		if r == id {
			return true
		}
	}
	return false
}

func (e *Engine) pushRecent(id string) {
	e.recent = append(e.recent, id)
	if len(e.recent) > recentWindowSize {
		e.recent = e.recent[len(e.recent)-recentWindowSize:]
	}
}
