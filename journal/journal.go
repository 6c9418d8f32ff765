// journal/journal.go
package journal

import "errors"

// Direction of a closed position.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// Trade is one closed position entry. PnlUSD is computed once when the
// trade is recorded and never recomputed, so later contract-size changes
// do not drift historical results. Note is the only field that can change
// after creation.
type Trade struct {
	ID         int64
	Pair       string
	Direction  Direction
	Lots       float64
	EntryPrice float64
	ExitPrice  float64
	PnlUSD     float64
	EntryTime  string
	Note       string
}

// Settings is the singleton configuration row (id = 1): one contract
// multiplier per instrument class plus the discipline counter.
type Settings struct {
	Forex    float64
	Gold     float64
	Crypto   float64
	ThumbsUp int64
}

// DefaultSettings are the values used when no settings row can be read.
func DefaultSettings() Settings {
	return Settings{Forex: 100000, Gold: 100, Crypto: 1, ThumbsUp: 0}
}

var (
	// ErrNotFound is returned when a trade id does not exist.
	ErrNotFound = errors.New("trade not found")

	// ErrUnavailable is returned by writes on a degraded store.
	ErrUnavailable = errors.New("journal storage unavailable")
)

type Store interface {
	AddTrade(Trade) (int64, error)
	AllTrades() ([]Trade, error)
	GetTrade(id int64) (Trade, error)
	UpdateNote(id int64, note string) error
	DeleteTrade(id int64) error

	GetSettings() Settings
	UpdateContracts(forex, gold, crypto float64) error
	IncrementThumbsUp() (int64, error)
	ResetThumbsUp() (int64, error)

	Close() error
}
