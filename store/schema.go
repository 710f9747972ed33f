package store

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations[i] upgrades a database from schema version i to i+1. The
// version is recorded in PRAGMA user_version.
var migrations = [][]string{
	// v1: sessions, session_rows, zones
	{
		`CREATE TABLE IF NOT EXISTS sessions (
			name     TEXT PRIMARY KEY,
			saved_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_rows (
			session            TEXT NOT NULL REFERENCES sessions(name) ON DELETE CASCADE,
			id                 TEXT NOT NULL,
			position           INTEGER NOT NULL,
			item_id            TEXT NOT NULL DEFAULT '',
			kind               TEXT NOT NULL DEFAULT 'redaction',
			text               TEXT NOT NULL DEFAULT '',
			category           TEXT NOT NULL DEFAULT '',
			confidence         TEXT NOT NULL DEFAULT '',
			exemption_category TEXT NOT NULL DEFAULT '',
			exemption_codes    TEXT NOT NULL DEFAULT '',
			exemption_other    TEXT NOT NULL DEFAULT '',
			viewed             INTEGER NOT NULL DEFAULT 0,
			viewed_at          TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (session, id)
		)`,
		`CREATE TABLE IF NOT EXISTS zones (
			session  TEXT NOT NULL,
			row_id   TEXT NOT NULL,
			seq      INTEGER NOT NULL,
			page     INTEGER NOT NULL,
			left_x   REAL NOT NULL,
			top_y    REAL NOT NULL,
			right_x  REAL NOT NULL,
			bottom_y REAL NOT NULL,
			PRIMARY KEY (session, row_id, seq),
			FOREIGN KEY (session, row_id) REFERENCES session_rows(session, id) ON DELETE CASCADE
		)`,
	},
	// v2: zone coordinates are nullable; NULL holds NaN
	{
		`CREATE TABLE zones_v2 (
			session  TEXT NOT NULL,
			row_id   TEXT NOT NULL,
			seq      INTEGER NOT NULL,
			page     INTEGER NOT NULL,
			left_x   REAL,
			top_y    REAL,
			right_x  REAL,
			bottom_y REAL,
			PRIMARY KEY (session, row_id, seq),
			FOREIGN KEY (session, row_id) REFERENCES session_rows(session, id) ON DELETE CASCADE
		)`,
		`INSERT INTO zones_v2 (session, row_id, seq, page, left_x, top_y, right_x, bottom_y)
			SELECT session, row_id, seq, page, left_x, top_y, right_x, bottom_y FROM zones`,
		`DROP TABLE zones`,
		`ALTER TABLE zones_v2 RENAME TO zones`,
	},
}

// schemaVersion is the version a fully migrated database reports
var schemaVersion = len(migrations)

// migrate brings the schema up to date and refuses databases written by a
// newer version
func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}
	if version == schemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer tx.Rollback()

	for v := version; v < schemaVersion; v++ {
		for _, stmt := range migrations[v] {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrating schema to version %d: %w", v+1, err)
			}
		}
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return tx.Commit()
}
