package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded trades, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trades, err := st.AllTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	if len(trades) == 0 {
		fmt.Println("No trades recorded.")
		return nil
	}

	fmt.Printf("%-5s %-10s %-4s %8s %12s %12s %12s  %-19s %s\n",
		"ID", "Symbol", "Dir", "Lots", "Entry", "Exit", "PnL", "Time", "Note")
	for _, t := range trades {
		note := t.Note
		if len(note) > 30 {
			note = note[:27] + "..."
		}
		fmt.Printf("%-5d %-10s %-4s %8g %12g %12g %12.2f  %-19s %s\n",
			t.ID, t.Pair, t.Direction, t.Lots, t.EntryPrice, t.ExitPrice, t.PnlUSD, t.EntryTime, note)
	}
	return nil
}
