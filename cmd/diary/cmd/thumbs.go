package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Discipline counter",
	Long: `A small gamification device: press "thumbs up" every time you
follow your trading plan. The counter lives alongside the settings and is
unrelated to trade data.

Examples:
  diary thumbs up
  diary thumbs reset`,
	Args: cobra.NoArgs,
	RunE: runThumbsShow,
}

var thumbsUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Increment the discipline counter",
	Args:  cobra.NoArgs,
	RunE:  runThumbsUp,
}

var thumbsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the discipline counter to zero",
	Args:  cobra.NoArgs,
	RunE:  runThumbsReset,
}

func init() {
	rootCmd.AddCommand(thumbsCmd)
	thumbsCmd.AddCommand(thumbsUpCmd)
	thumbsCmd.AddCommand(thumbsResetCmd)
}

func runThumbsShow(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Printf("Discipline counter: %d\n", st.GetSettings().ThumbsUp)
	return nil
}

func runThumbsUp(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.IncrementThumbsUp()
	if err != nil {
		return fmt.Errorf("increment: %w", err)
	}

	fmt.Printf("✓ Discipline +1, total %d. Keep it up!\n", n)
	return nil
}

func runThumbsReset(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.ResetThumbsUp()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Printf("✓ Discipline counter reset to %d\n", n)
	return nil
}
