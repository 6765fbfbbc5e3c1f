package session

import (
	"strings"
	"testing"

	"github.com/sumstars/sumstars/internal/question"
)

func TestRenderNumberLine(t *testing.T) {
	q := &question.Question{
		Operation: question.OpAddition,
		OperandA:  3,
		OperandB:  5,
		Hint:      question.Hint{Type: question.HintNumberLine},
	}
	line := renderNumberLine(q)
	if line == "" {
		t.Fatal("expected a rendered number line")
	}
	if !strings.Contains(line, "5") {
		t.Error("expected the upper label on the number line")
	}
}

func TestRenderNumberLine_ZeroOperands(t *testing.T) {
	// Templates may legally sample from a range starting at 0, so a
	// 0-0 draw must render cleanly rather than panic.
	q := &question.Question{
		Operation: question.OpAddition,
		OperandA:  0,
		OperandB:  0,
		Hint:      question.Hint{Type: question.HintNumberLine},
	}
	if line := renderNumberLine(q); line != "" {
		t.Errorf("expected no number line for a 0-0 draw, got %q", line)
	}
}

func TestRenderNumberLine_TooWide(t *testing.T) {
	q := &question.Question{
		Operation: question.OpAddition,
		OperandA:  30,
		OperandB:  2,
		Hint:      question.Hint{Type: question.HintNumberLine},
	}
	if line := renderNumberLine(q); line != "" {
		t.Errorf("expected no number line past the width cap, got %q", line)
	}
}
