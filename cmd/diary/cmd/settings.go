package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change contract multipliers",
	Long: `Show the per-instrument-class contract multipliers, or overwrite
them with "settings set". Changing multipliers affects only trades recorded
afterwards; stored P/L never drifts.

Examples:
  diary settings
  diary settings set 100000 100 1`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <forex> <gold> <crypto>",
	Short: "Overwrite the three contract multipliers",
	Args:  cobra.ExactArgs(3),
	RunE:  runSettingsSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	s := st.GetSettings()
	fmt.Println("Contract multipliers")
	fmt.Printf("  Forex:  %g\n", s.Forex)
	fmt.Printf("  Gold:   %g\n", s.Gold)
	fmt.Printf("  Crypto: %g\n", s.Crypto)
	fmt.Printf("Discipline counter: %d\n", s.ThumbsUp)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	forex, err := parsePositive("forex", args[0])
	if err != nil {
		return err
	}
	gold, err := parsePositive("gold", args[1])
	if err != nil {
		return err
	}
	crypto, err := parsePositive("crypto", args[2])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.UpdateContracts(forex, gold, crypto); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	fmt.Println("✓ Settings updated")
	return nil
}
