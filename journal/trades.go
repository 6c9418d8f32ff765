package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// AddTrade inserts one closed trade and returns its assigned id. The pair
// is stored uppercased, the entry time is stamped now, and the note starts
// empty. Callers compute PnlUSD before calling; it is stored as given.
func (s *SQLite) AddTrade(t Trade) (int64, error) {
	if s.err != nil {
		return 0, ErrUnavailable
	}

	res, err := s.db.Exec(`
		INSERT INTO trades (pair, direction, lots, entry_price, exit_price, pnl_usd, entry_time, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, '')`,
		strings.ToUpper(strings.TrimSpace(t.Pair)), string(t.Direction),
		t.Lots, t.EntryPrice, t.ExitPrice, t.PnlUSD,
		time.Now().Format(TimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert trade: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert trade: %w", err)
	}
	return id, nil
}

// AllTrades returns every trade, most recent first. A degraded store
// returns an empty set. Notes stored as NULL by pre-migration versions
// come back as "" so consumers never branch on null.
func (s *SQLite) AllTrades() ([]Trade, error) {
	if s.err != nil {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, pair, direction, lots, entry_price, exit_price, pnl_usd, entry_time, note
		FROM trades
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTrade returns a single trade by id, ErrNotFound when it is absent.
func (s *SQLite) GetTrade(id int64) (Trade, error) {
	if s.err != nil {
		return Trade{}, ErrNotFound
	}

	row := s.db.QueryRow(`
		SELECT id, pair, direction, lots, entry_price, exit_price, pnl_usd, entry_time, note
		FROM trades
		WHERE id = ?`, id)

	t, err := scanTrade(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, ErrNotFound
		}
		return Trade{}, err
	}
	return t, nil
}

// UpdateNote overwrites the note of a trade. Notes are free text, no
// validation. Updating a missing id is a silent no-op.
func (s *SQLite) UpdateNote(id int64, note string) error {
	if s.err != nil {
		return ErrUnavailable
	}

	if _, err := s.db.Exec(`UPDATE trades SET note = ? WHERE id = ?`, note, id); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// DeleteTrade removes a trade. Deleting a missing id is a silent no-op.
func (s *SQLite) DeleteTrade(id int64) error {
	if s.err != nil {
		return ErrUnavailable
	}

	if _, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return nil
}

func scanTrade(scan func(...any) error) (Trade, error) {
	var t Trade
	var note sql.NullString

	err := scan(
		&t.ID,
		&t.Pair,
		&t.Direction,
		&t.Lots,
		&t.EntryPrice,
		&t.ExitPrice,
		&t.PnlUSD,
		&t.EntryTime,
		&note,
	)
	if err != nil {
		return Trade{}, err
	}

	t.Note = note.String
	return t, nil
}
