package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumstars/sumstars/internal/config"
	"github.com/sumstars/sumstars/internal/difficulty"
	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved progress without starting the game",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if !model.Load(cmd.Context()) {
			fmt.Println("No saved progress yet. Play a game first!")
			return nil
		}

		p := model.Persistent()
		fmt.Printf("Player:        %s\n", p.PlayerID)
		fmt.Printf("Games played:  %d\n", p.SessionsPlayed)
		fmt.Printf("Total stars:   %d\n", p.TotalStars)
		fmt.Printf("Total coins:   %d\n", p.TotalCoins)
		fmt.Printf("Last played:   %s\n", p.LastPlayed.Format("2006-01-02 15:04"))
		fmt.Println()

		for _, tier := range difficulty.Tiers {
			fmt.Printf("%-8s best score %5d   levels done %d\n",
				tier.Label(), p.HighScores[tier], len(p.CompletedLevels[tier]))
		}

		if last := model.LastSession(); last != nil {
			fmt.Printf("\nLast game: %s, score %d, %d stars, %d coins\n",
				last.Tier.Label(), last.Score, last.Stars, last.Coins)
		}
		return nil
	},
}
