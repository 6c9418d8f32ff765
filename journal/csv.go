// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"ID", "Symbol", "Dir", "Lots", "Entry", "Exit", "PnL", "Time", "Note"}

// ExportCSV writes the trades in the given order, one row each, after a
// UTF-8 byte-order mark so spreadsheet apps pick up the encoding. Floats
// are written at full precision.
func ExportCSV(w io.Writer, trades []Trade) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		err := cw.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Pair,
			string(t.Direction),
			f(t.Lots),
			f(t.EntryPrice),
			f(t.ExitPrice),
			f(t.PnlUSD),
			t.EntryTime,
			t.Note,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile creates path and exports the trades into it.
func ExportCSVFile(path string, trades []Trade) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := ExportCSV(fh, trades); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
