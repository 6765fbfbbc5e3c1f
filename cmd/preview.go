package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sumstars/sumstars/internal/difficulty"
	"github.com/sumstars/sumstars/internal/question"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions for a tier (no database)",
	Long: `Generate and interactively answer questions for a difficulty tier.

This is a stateless developer tool — no database, no progress tracking.
Useful for checking template quality and operand ranges. Pass --seed for
a reproducible sequence.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("tier", "easy", "Difficulty tier: easy, medium, or hard")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 means time-seeded)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tierVal, _ := cmd.Flags().GetString("tier")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")

	if !difficulty.Valid(tierVal) {
		return fmt.Errorf("invalid tier %q: must be easy, medium, or hard", tierVal)
	}

	pools, err := question.DefaultPools()
	if err != nil {
		return fmt.Errorf("load question templates: %w", err)
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	engine := question.NewEngine(pools, rng)
	tier := engine.SetDifficulty(tierVal)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Tier: %s (operands %d-%d)\n", tier.Label(),
		difficulty.Get(tier).Min, difficulty.Get(tier).Max)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	for i := 1; i <= count; i++ {
		q := engine.NextQuestion()

		fmt.Printf("── Question %d/%d ──  [%s]\n", i, count, q.TemplateID)
		fmt.Println(q.Text)

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		res := engine.ValidateAgainst(answer, q.Answer)
		switch {
		case !res.Valid:
			fmt.Printf("\033[33m? Not a number.\033[0m Answer: %d\n", q.Answer)
		case res.Correct:
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		case res.Close:
			fmt.Printf("\033[31m✗ Close.\033[0m Answer: %d\n", q.Answer)
		default:
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d\n", q.Answer)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
