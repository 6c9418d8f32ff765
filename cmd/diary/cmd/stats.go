package cmd

import (
	"fmt"

	"github.com/rustyeddy/diary/journal"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show account statistics",
	Long: `Summarize the full trade set: net profit, win rate, profit factor
and win/loss counts. Statistics are recomputed from scratch on every run.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trades, err := st.AllTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	s := journal.Summarize(trades)

	fmt.Println("Account statistics")
	fmt.Printf("  Net profit:    $%.2f\n", s.NetProfit)
	fmt.Printf("  Win rate:      %.1f%%\n", s.WinRate)
	fmt.Printf("  Profit factor: %.2f\n", s.ProfitFactor)
	fmt.Printf("  Trades:        %d (%d wins / %d losses)\n", s.Total, s.Wins, s.Losses)
	return nil
}
