// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pair TEXT NOT NULL,
	direction TEXT NOT NULL,
	lots REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	pnl_usd REAL NOT NULL,
	entry_time TEXT NOT NULL,
	note TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY,
	contract_forex REAL DEFAULT 100000.0,
	contract_gold REAL DEFAULT 100.0,
	contract_crypto REAL DEFAULT 1.0,
	thumbs_up_count INTEGER DEFAULT 0
);
`
