package journal

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	st := Open(path)
	assert.NoError(t, st.Err())
	t.Cleanup(func() { _ = st.Close() })

	return st, path
}

func TestOpenCreatesSchema(t *testing.T) {
	t.Parallel()

	st, path := newTestStore(t)
	assert.NoError(t, st.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','settings')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["settings"])

	// the singleton settings row is seeded on first open
	var n int
	assert.NoError(t, db.QueryRow(`SELECT count(*) FROM settings`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestAddTradeRoundTrip(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)

	id, err := st.AddTrade(Trade{
		Pair:       "xauusd",
		Direction:  Buy,
		Lots:       0.01,
		EntryPrice: 2350.5,
		ExitPrice:  2361.2,
		PnlUSD:     10.7,
	})
	assert.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := st.GetTrade(id)
	assert.NoError(t, err)
	assert.Equal(t, "XAUUSD", got.Pair)
	assert.Equal(t, Buy, got.Direction)
	assert.InDelta(t, 0.01, got.Lots, 1e-9)
	assert.InDelta(t, 2350.5, got.EntryPrice, 1e-9)
	assert.InDelta(t, 2361.2, got.ExitPrice, 1e-9)
	assert.InDelta(t, 10.7, got.PnlUSD, 1e-9)
	assert.NotEmpty(t, got.EntryTime)
	assert.Equal(t, "", got.Note)
}

func TestAllTradesDescendingOrder(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := st.AddTrade(Trade{Pair: "EURUSD", Direction: Sell, Lots: 1, EntryPrice: 1.1, ExitPrice: 1.0, PnlUSD: float64(i)})
		assert.NoError(t, err)
	}

	trades, err := st.AllTrades()
	assert.NoError(t, err)
	assert.Len(t, trades, 3)

	for i := 1; i < len(trades); i++ {
		assert.Greater(t, trades[i-1].ID, trades[i].ID)
	}
	for _, tr := range trades {
		assert.Equal(t, "", tr.Note)
	}
}

func TestUpdateNoteLeavesOtherFieldsAlone(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)

	id, err := st.AddTrade(Trade{Pair: "GBPUSD", Direction: Buy, Lots: 0.5, EntryPrice: 1.25, ExitPrice: 1.26, PnlUSD: 500})
	assert.NoError(t, err)

	before, err := st.GetTrade(id)
	assert.NoError(t, err)

	assert.NoError(t, st.UpdateNote(id, "followed the plan"))

	after, err := st.GetTrade(id)
	assert.NoError(t, err)
	assert.Equal(t, "followed the plan", after.Note)
	assert.Equal(t, before.Pair, after.Pair)
	assert.Equal(t, before.Direction, after.Direction)
	assert.Equal(t, before.Lots, after.Lots)
	assert.Equal(t, before.EntryPrice, after.EntryPrice)
	assert.Equal(t, before.ExitPrice, after.ExitPrice)
	assert.Equal(t, before.PnlUSD, after.PnlUSD)
	assert.Equal(t, before.EntryTime, after.EntryTime)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)

	_, err := st.GetTrade(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTrade(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)

	id, err := st.AddTrade(Trade{Pair: "USDJPY", Direction: Buy, Lots: 1, EntryPrice: 150, ExitPrice: 151, PnlUSD: 1})
	assert.NoError(t, err)

	assert.NoError(t, st.DeleteTrade(id))
	_, err = st.GetTrade(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingTradeIsNoop(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)

	id, err := st.AddTrade(Trade{Pair: "USDJPY", Direction: Buy, Lots: 1, EntryPrice: 150, ExitPrice: 151, PnlUSD: 1})
	assert.NoError(t, err)

	assert.NoError(t, st.DeleteTrade(id+100))

	trades, err := st.AllTrades()
	assert.NoError(t, err)
	assert.Len(t, trades, 1)
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	st, path := newTestStore(t)

	_, err := st.AddTrade(Trade{Pair: "EURUSD", Direction: Buy, Lots: 1, EntryPrice: 1, ExitPrice: 2, PnlUSD: 100000})
	assert.NoError(t, err)
	assert.NoError(t, st.Close())

	st2 := Open(path)
	assert.NoError(t, st2.Err())
	t.Cleanup(func() { _ = st2.Close() })

	trades, err := st2.AllTrades()
	assert.NoError(t, err)
	assert.Len(t, trades, 1)

	// only one settings row, even after two opens
	s := st2.GetSettings()
	assert.InDelta(t, 100000, s.Forex, 1e-9)
}

func TestMigrateLegacyDatabase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.db")

	// A database created before the note, contract_crypto and
	// thumbs_up_count columns existed.
	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE trades (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pair TEXT, direction TEXT, lots REAL,
			entry_price REAL, exit_price REAL, pnl_usd REAL, entry_time TEXT
		);
		CREATE TABLE settings (id INTEGER PRIMARY KEY, contract_forex REAL, contract_gold REAL);
		INSERT INTO settings (id, contract_forex, contract_gold) VALUES (1, 50000, 42);
		INSERT INTO trades (pair, direction, lots, entry_price, exit_price, pnl_usd, entry_time)
		VALUES ('EURUSD', 'BUY', 1, 1.1, 1.2, 5000, '2024-01-02 03:04:05');`)
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	st := Open(path)
	assert.NoError(t, st.Err())
	t.Cleanup(func() { _ = st.Close() })

	// existing values survive, added columns get their defaults
	s := st.GetSettings()
	assert.InDelta(t, 50000, s.Forex, 1e-9)
	assert.InDelta(t, 42, s.Gold, 1e-9)
	assert.InDelta(t, 1, s.Crypto, 1e-9)
	assert.Equal(t, int64(0), s.ThumbsUp)

	trades, err := st.AllTrades()
	assert.NoError(t, err)
	assert.Len(t, trades, 1)
	assert.Equal(t, "", trades[0].Note)

	// and the migration holds on a second open
	assert.NoError(t, st.Close())
	st2 := Open(path)
	assert.NoError(t, st2.Err())
	assert.NoError(t, st2.Close())
}

func TestDegradedStore(t *testing.T) {
	t.Parallel()

	// parent directory does not exist, so the file cannot be created
	path := filepath.Join(t.TempDir(), "missing", "diary.db")

	st := Open(path)
	assert.Error(t, st.Err())
	t.Cleanup(func() { _ = st.Close() })

	trades, err := st.AllTrades()
	assert.NoError(t, err)
	assert.Empty(t, trades)

	assert.Equal(t, DefaultSettings(), st.GetSettings())

	_, err = st.AddTrade(Trade{Pair: "EURUSD", Direction: Buy, Lots: 1})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, st.UpdateNote(1, "x"), ErrUnavailable)
	assert.ErrorIs(t, st.DeleteTrade(1), ErrUnavailable)

	_, err = st.GetTrade(1)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = st.IncrementThumbsUp()
	assert.ErrorIs(t, err, ErrUnavailable)
}
