package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rustyeddy/diary/journal"
	"github.com/rustyeddy/diary/pkg/id"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all trades to a CSV file",
	Long: `Write every trade, most recent first, to a CSV file the way a
spreadsheet expects it (UTF-8 with a byte-order mark). The file lands in
the configured export directory unless -o is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default export dir + generated name)")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trades, err := st.AllTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	if len(trades) == 0 {
		fmt.Println("No trades to export.")
		return nil
	}

	path := exportOutput
	if path == "" {
		path = filepath.Join(cfg.Export.Dir, "trade_export_"+id.New()+".csv")
	}

	if err := journal.ExportCSVFile(path, trades); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("✓ Exported %d trades: %s\n", len(trades), path)
	return nil
}
