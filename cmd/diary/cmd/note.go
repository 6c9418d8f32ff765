package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <id> <text...>",
	Short: "Attach or replace the review note on a trade",
	Long: `Overwrite the note on a recorded trade. The note is the only field
that can change after a trade is saved.

Example:
  diary note 12 held through news, should have closed earlier`,
	Args: cobra.MinimumNArgs(2),
	RunE: runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("trade id: %w", err)
	}
	text := strings.Join(args[1:], " ")

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.UpdateNote(id, text); err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	fmt.Printf("✓ Note updated on trade #%d\n", id)
	return nil
}
