package journal

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportCSVHeaderAndBOM(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, nil))

	data := buf.Bytes()
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(data[3:]))
	header, err := r.Read()
	assert.NoError(t, err)
	assert.Equal(t, []string{"ID", "Symbol", "Dir", "Lots", "Entry", "Exit", "PnL", "Time", "Note"}, header)
}

func TestExportCSVRows(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: 2, Pair: "XAUUSD", Direction: Sell, Lots: 0.5, EntryPrice: 2360, ExitPrice: 2350, PnlUSD: 500, EntryTime: "2024-01-03 10:00:00", Note: "news spike"},
		{ID: 1, Pair: "EURUSD", Direction: Buy, Lots: 1, EntryPrice: 1.1, ExitPrice: 1.2, PnlUSD: 10000, EntryTime: "2024-01-02 09:00:00"},
	}

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, trades))

	r := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	rows, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// rows come out in the given (descending id) order
	assert.Equal(t, []string{"2", "XAUUSD", "SELL", "0.5", "2360", "2350", "500", "2024-01-03 10:00:00", "news spike"}, rows[1])
	assert.Equal(t, []string{"1", "EURUSD", "BUY", "1", "1.1", "1.2", "10000", "2024-01-02 09:00:00", ""}, rows[2])
}

func TestExportCSVFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.csv")
	trades := []Trade{{ID: 1, Pair: "EURUSD", Direction: Buy, Lots: 1, EntryPrice: 1, ExitPrice: 2, PnlUSD: 100000, EntryTime: "2024-01-02 09:00:00"}}

	assert.NoError(t, ExportCSVFile(path, trades))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(data), "EURUSD")
}
