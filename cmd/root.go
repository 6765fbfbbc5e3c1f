package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sumstars/sumstars/internal/config"
	"github.com/sumstars/sumstars/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sumstars",
	Short: "Arithmetic practice game for kids",
	Long:  "Sumstars — a terminal math game where kids answer addition and subtraction questions to earn stars and coins.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SUMSTARS_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(previewCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the SUMSTARS_DB env var, then the config file, then
// the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("SUMSTARS_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := cfg.Database.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
