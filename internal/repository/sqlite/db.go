package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Open opens (creating if necessary) the SQLite database at path and applies
// the schema. Pass ":memory:" for an in-memory database, as the tests do.
// The connection pool is capped at one connection: SQLite serializes writers
// anyway, and a single handle keeps an in-memory database coherent.
func Open(path string) (*sql.DB, error) {
	dsn := "file::memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = "file:" + path
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initSchema creates the tables on first run. Idempotent.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workout_days (
            id        TEXT PRIMARY KEY,
            name      TEXT NOT NULL,
            dayOfWeek TEXT NOT NULL DEFAULT ''
        );

        CREATE TABLE IF NOT EXISTS day_exercises (
            instanceId     TEXT PRIMARY KEY,
            workout_day_id TEXT NOT NULL,
            exerciseId     TEXT NOT NULL,
            name           TEXT NOT NULL,
            bodyPart       TEXT NOT NULL,
            reps           INTEGER NOT NULL,
            sets           INTEGER NOT NULL,
            sort_order     INTEGER NOT NULL,
            FOREIGN KEY (workout_day_id) REFERENCES workout_days(id) ON DELETE CASCADE
        );

        CREATE INDEX IF NOT EXISTS idx_day_exercises_workout_day_id
            ON day_exercises (workout_day_id);
    `)
	if err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// migrate applies best-effort additive migrations for databases created
// before the dayOfWeek column existed. "duplicate column name" means the
// column is already there.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE workout_days ADD COLUMN dayOfWeek TEXT NOT NULL DEFAULT ''`)
	if err != nil && !strings.Contains(err.Error(), "duplicate column name") {
		return fmt.Errorf("migrate workout_days: %w", err)
	}
	return nil
}
