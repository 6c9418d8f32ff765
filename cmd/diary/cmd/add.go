package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/diary/journal"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <pair> <buy|sell> <lots> <entry> <exit>",
	Short: "Record a closed trade",
	Long: `Record one closed trade. The P/L is computed from the contract
multiplier for the pair's instrument class (gold, crypto or forex) and
stored with the trade; changing contract sizes later never alters trades
already recorded.

Example:
  diary add XAUUSD buy 0.01 2350.5 2361.2`,
	Args: cobra.ExactArgs(5),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	pair := strings.ToUpper(strings.TrimSpace(args[0]))
	if pair == "" {
		return fmt.Errorf("pair must not be empty")
	}

	dir, err := parseDirection(args[1])
	if err != nil {
		return err
	}

	lots, err := parsePositive("lots", args[2])
	if err != nil {
		return err
	}
	entry, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("entry price: %w", err)
	}
	exit, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return fmt.Errorf("exit price: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	contract := journal.ContractFor(pair, st.GetSettings())
	pnl := journal.ComputePnL(dir, lots, entry, exit, contract)

	id, err := st.AddTrade(journal.Trade{
		Pair:       pair,
		Direction:  dir,
		Lots:       lots,
		EntryPrice: entry,
		ExitPrice:  exit,
		PnlUSD:     pnl,
	})
	if err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("✓ Saved trade #%d: %s %s %g lots, P/L $%.2f\n", id, pair, dir, lots, pnl)
	return nil
}

func parseDirection(s string) (journal.Direction, error) {
	switch strings.ToUpper(s) {
	case "BUY":
		return journal.Buy, nil
	case "SELL":
		return journal.Sell, nil
	}
	return "", fmt.Errorf("direction must be buy or sell, got %q", s)
}

func parsePositive(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return v, nil
}
