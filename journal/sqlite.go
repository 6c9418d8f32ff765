package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// TimeLayout is the format trades stamp their entry time with.
const TimeLayout = "2006-01-02 15:04:05"

// SQLite is the diary store: a single process-wide connection held for the
// process lifetime. There is exactly one writer, so no locking beyond
// SQLite's own transaction semantics is needed.
type SQLite struct {
	db  *sql.DB
	err error // set once at open time, never cleared
}

// Open opens or creates the diary database at path, sets WAL mode, creates
// the tables, seeds the singleton settings row and runs the column
// migrations. Open never fails: when the file cannot be opened or prepared
// the returned store is degraded — reads yield empty/default results,
// writes return ErrUnavailable, and Err reports what went wrong.
func Open(path string) *SQLite {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return &SQLite{err: fmt.Errorf("open db: %w", err)}
	}

	if err := prepare(db); err != nil {
		db.Close()
		return &SQLite{err: err}
	}

	return &SQLite{db: db}
}

func prepare(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var n int
	if err := db.QueryRow(`SELECT count(*) FROM settings`).Scan(&n); err != nil {
		return fmt.Errorf("probe settings: %w", err)
	}
	if n == 0 {
		_, err := db.Exec(`
			INSERT INTO settings (id, contract_forex, contract_gold, contract_crypto, thumbs_up_count)
			VALUES (1, 100000.0, 100.0, 1.0, 0)`)
		if err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	}

	return migrate(db)
}

// migrate adds the columns that database files from older versions predate.
// Each step probes with a trivial read and alters only when the probe
// fails, so running it against a current database is a no-op. Columns are
// append-only: nothing is ever renamed or removed.
func migrate(db *sql.DB) error {
	steps := []struct {
		probe string
		alter string
	}{
		{`SELECT note FROM trades LIMIT 1`,
			`ALTER TABLE trades ADD COLUMN note TEXT DEFAULT ''`},
		{`SELECT contract_crypto FROM settings LIMIT 1`,
			`ALTER TABLE settings ADD COLUMN contract_crypto REAL DEFAULT 1.0`},
		{`SELECT thumbs_up_count FROM settings LIMIT 1`,
			`ALTER TABLE settings ADD COLUMN thumbs_up_count INTEGER DEFAULT 0`},
	}

	for _, s := range steps {
		if _, err := db.Exec(s.probe); err == nil {
			continue
		}
		if _, err := db.Exec(s.alter); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Err reports the persistent degraded state, nil when the store is healthy.
func (s *SQLite) Err() error {
	return s.err
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
