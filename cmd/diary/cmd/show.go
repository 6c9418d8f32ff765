package cmd

import (
	"fmt"
	"strconv"

	"github.com/rustyeddy/diary/journal"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one trade as an Org-mode block",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("trade id: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.GetTrade(id)
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Println(journal.FormatTradeOrg(t))
	return nil
}
