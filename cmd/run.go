package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumstars/sumstars/internal/app"
	"github.com/sumstars/sumstars/internal/config"
	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/question"
	"github.com/sumstars/sumstars/internal/store"
)

const defaultQuestions = 5

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config file ignored:", err)
		cfg = config.Config{}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)

	// The game must stay playable when storage fails. A nil save store
	// keeps all progress in memory for the run.
	var saves progress.SaveStore
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open save file:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this time.")
	} else {
		defer st.Close()
		saves = st.SaveRepo()
	}

	model := progress.NewModel(saves, nil)
	model.Load(ctx)

	pools, err := question.DefaultPools()
	if err != nil {
		return fmt.Errorf("load question templates: %w", err)
	}
	engine := question.NewEngine(pools, nil)

	return app.Run(app.Options{
		Model:     model,
		Engine:    engine,
		Questions: cfg.Questions(defaultQuestions),
	})
}
