package journal

import (
	"database/sql"
	"fmt"
)

// GetSettings returns the singleton settings record. It always returns a
// complete record: a degraded store, a missing row, or columns a partially
// migrated database never gained all fall back to the hardcoded defaults.
func (s *SQLite) GetSettings() Settings {
	out := DefaultSettings()
	if s.err != nil {
		return out
	}

	var forex, gold, crypto sql.NullFloat64
	var thumbs sql.NullInt64

	err := s.db.QueryRow(`
		SELECT contract_forex, contract_gold, contract_crypto, thumbs_up_count
		FROM settings
		WHERE id = 1`).Scan(&forex, &gold, &crypto, &thumbs)
	if err != nil {
		return out
	}

	if forex.Valid {
		out.Forex = forex.Float64
	}
	if gold.Valid {
		out.Gold = gold.Float64
	}
	if crypto.Valid {
		out.Crypto = crypto.Float64
	}
	if thumbs.Valid {
		out.ThumbsUp = thumbs.Int64
	}
	return out
}

// UpdateContracts overwrites the three contract multipliers. The discipline
// counter is untouched. Already-stored trades keep their recorded PnL.
func (s *SQLite) UpdateContracts(forex, gold, crypto float64) error {
	if s.err != nil {
		return ErrUnavailable
	}

	_, err := s.db.Exec(`
		UPDATE settings
		SET contract_forex = ?, contract_gold = ?, contract_crypto = ?
		WHERE id = 1`, forex, gold, crypto)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

// IncrementThumbsUp bumps the discipline counter and returns the new count.
func (s *SQLite) IncrementThumbsUp() (int64, error) {
	if s.err != nil {
		return 0, ErrUnavailable
	}

	if _, err := s.db.Exec(`UPDATE settings SET thumbs_up_count = thumbs_up_count + 1 WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("increment thumbs: %w", err)
	}

	var n int64
	if err := s.db.QueryRow(`SELECT thumbs_up_count FROM settings WHERE id = 1`).Scan(&n); err != nil {
		return 0, fmt.Errorf("increment thumbs: %w", err)
	}
	return n, nil
}

// ResetThumbsUp zeroes the discipline counter.
func (s *SQLite) ResetThumbsUp() (int64, error) {
	if s.err != nil {
		return 0, ErrUnavailable
	}

	if _, err := s.db.Exec(`UPDATE settings SET thumbs_up_count = 0 WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("reset thumbs: %w", err)
	}
	return 0, nil
}
