package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
//
// AUTOINCREMENT keeps SQLite from ever handing out a deleted row's id again.
// price is stored as TEXT and parsed into a decimal, so monetary values
// round-trip exactly; NULL means the price is unknown, not zero.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    name  TEXT NOT NULL CHECK (length(name) > 0),
    sku   TEXT NOT NULL CHECK (length(sku) > 0),
    qty   INTEGER NOT NULL DEFAULT 0 CHECK (qty >= 0),
    price TEXT CHECK (price IS NULL OR CAST(price AS NUMERIC) >= 0)
);

CREATE INDEX IF NOT EXISTS idx_items_sku ON items(sku);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
