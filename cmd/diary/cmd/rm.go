package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("trade id: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteTrade(id); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("✓ Deleted trade #%d\n", id)
	return nil
}
