package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sumstars/sumstars/internal/config"
	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all {
			fmt.Println("Pass --all to erase the saved record. Nothing was changed.")
			return nil
		}

		fmt.Print("Erase all stars, coins, and high scores? [y/N] ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}

		cfg, _ := config.LoadDefault()
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		model := progress.NewModel(st.SaveRepo(), nil)
		if !model.ResetAllProgress(cmd.Context()) {
			fmt.Println("Reset finished, but the save file could not be cleared.")
			return nil
		}
		fmt.Println("All progress erased. Fresh start!")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Erase the entire saved record")
}
