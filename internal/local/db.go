// Package local is the CLI's client-local state: the session blob and the
// per-coach custom exercise list. Both live in one SQLite file under fixed
// keys with no expiry; nothing here is ever synchronized anywhere.
package local

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	key        TEXT PRIMARY KEY,
	role       TEXT NOT NULL,
	code       TEXT NOT NULL,
	coach_name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS custom_exercise (
	id           TEXT PRIMARY KEY,
	coach_code   TEXT NOT NULL,
	name         TEXT NOT NULL,
	muscle_group TEXT NOT NULL,
	image_url    TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_custom_exercise_coach ON custom_exercise(coach_code);
`

// Open opens (creating if needed) the local state database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
