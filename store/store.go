package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/verify"
)

// driverName is the database/sql name registered by modernc.org/sqlite
const driverName = "sqlite"

// timeFormat has fixed width so stored timestamps sort as text
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when no session has the requested name
var ErrNotFound = errors.New("session not found")

// Store persists review sessions
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// SessionInfo describes a saved session
type SessionInfo struct {
	Name    string
	SavedAt time.Time
	Rows    int
}

// Open opens (creating if needed) a store at path. Use ":memory:" for a
// throwaway database. A nil logger disables logging.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("Failed to set busy_timeout", zap.Error(err))
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Store opened", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes rows under name, replacing any session saved with that name
func (s *Store) Save(ctx context.Context, name string, rows []verify.Row) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("session name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE name = ?", name); err != nil {
		return fmt.Errorf("clearing session %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO sessions (name, saved_at) VALUES (?, ?)",
		name, time.Now().UTC().Format(timeFormat)); err != nil {
		return fmt.Errorf("inserting session %q: %w", name, err)
	}

	rowStmt, err := tx.PrepareContext(ctx, `INSERT INTO session_rows
		(session, id, position, item_id, kind, text, category, confidence,
		 exemption_category, exemption_codes, exemption_other, viewed, viewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing row insert: %w", err)
	}
	defer rowStmt.Close()

	zoneStmt, err := tx.PrepareContext(ctx, `INSERT INTO zones
		(session, row_id, seq, page, left_x, top_y, right_x, bottom_y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing zone insert: %w", err)
	}
	defer zoneStmt.Close()

	for pos, row := range rows {
		item := row.Item
		if item == nil {
			item = &model.Redaction{}
		}
		id := row.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		viewedAt := ""
		if !row.ViewedAt.IsZero() {
			viewedAt = row.ViewedAt.UTC().Format(timeFormat)
		}

		if _, err := rowStmt.ExecContext(ctx, name, id.String(), pos, item.ID, item.Kind.String(),
			item.Text, item.Category, item.Confidence.String(),
			item.Exemptions.Category, strings.Join(item.Exemptions.Codes, "\n"), item.Exemptions.Other,
			row.Viewed, viewedAt); err != nil {
			return fmt.Errorf("inserting row %d: %w", pos, err)
		}

		for seq, z := range item.Zones {
			if _, err := zoneStmt.ExecContext(ctx, name, id.String(), seq,
				z.Page, coord(z.Left), coord(z.Top), coord(z.Right), coord(z.Bottom)); err != nil {
				return fmt.Errorf("inserting zone %d of row %d: %w", seq, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session %q: %w", name, err)
	}

	s.logger.Info("Session saved", zap.String("name", name), zap.Int("rows", len(rows)))
	return nil
}

// Load reads the rows of a saved session in their saved order
func (s *Store) Load(ctx context.Context, name string) ([]verify.Row, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE name = ?", name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up session %q: %w", name, err)
	}

	rows, index, err := s.loadRows(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.loadZones(ctx, name, rows, index); err != nil {
		return nil, err
	}

	s.logger.Debug("Session loaded", zap.String("name", name), zap.Int("rows", len(rows)))
	return rows, nil
}

func (s *Store) loadRows(ctx context.Context, name string) ([]verify.Row, map[string]int, error) {
	q, err := s.db.QueryContext(ctx, `SELECT id, item_id, kind, text, category, confidence,
		exemption_category, exemption_codes, exemption_other, viewed, viewed_at
		FROM session_rows WHERE session = ? ORDER BY position`, name)
	if err != nil {
		return nil, nil, fmt.Errorf("querying rows: %w", err)
	}
	defer q.Close()

	var rows []verify.Row
	index := make(map[string]int)
	for q.Next() {
		var (
			id, kind, confidence, codes, viewedAt string
			item                                  model.Redaction
			viewed                                bool
		)
		if err := q.Scan(&id, &item.ID, &kind, &item.Text, &item.Category, &confidence,
			&item.Exemptions.Category, &codes, &item.Exemptions.Other, &viewed, &viewedAt); err != nil {
			return nil, nil, fmt.Errorf("scanning row: %w", err)
		}

		rowID, err := uuid.Parse(id)
		if err != nil {
			return nil, nil, fmt.Errorf("row id %q: %w", id, err)
		}
		if err := item.Kind.UnmarshalText([]byte(kind)); err != nil {
			return nil, nil, fmt.Errorf("row %s: %w", id, err)
		}
		if err := item.Confidence.UnmarshalText([]byte(confidence)); err != nil {
			return nil, nil, fmt.Errorf("row %s: %w", id, err)
		}
		if codes != "" {
			item.Exemptions.Codes = strings.Split(codes, "\n")
		}

		row := verify.Row{ID: rowID, Item: &item, Viewed: viewed}
		if viewedAt != "" {
			row.ViewedAt, err = time.Parse(timeFormat, viewedAt)
			if err != nil {
				return nil, nil, fmt.Errorf("row %s viewed_at: %w", id, err)
			}
		}

		index[id] = len(rows)
		rows = append(rows, row)
	}
	if err := q.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, index, nil
}

func (s *Store) loadZones(ctx context.Context, name string, rows []verify.Row, index map[string]int) error {
	q, err := s.db.QueryContext(ctx, `SELECT row_id, page, left_x, top_y, right_x, bottom_y
		FROM zones WHERE session = ? ORDER BY row_id, seq`, name)
	if err != nil {
		return fmt.Errorf("querying zones: %w", err)
	}
	defer q.Close()

	for q.Next() {
		var (
			rowID                    string
			z                        model.Region
			left, top, right, bottom sql.NullFloat64
		)
		if err := q.Scan(&rowID, &z.Page, &left, &top, &right, &bottom); err != nil {
			return fmt.Errorf("scanning zone: %w", err)
		}
		z.Left, z.Top, z.Right, z.Bottom = fromCoord(left), fromCoord(top), fromCoord(right), fromCoord(bottom)
		i, ok := index[rowID]
		if !ok {
			continue
		}
		rows[i].Item.Zones = append(rows[i].Item.Zones, z)
	}
	if err := q.Err(); err != nil {
		return fmt.Errorf("reading zones: %w", err)
	}
	return nil
}

// coord maps NaN, which SQLite cannot store as REAL, to NULL
func coord(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func fromCoord(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// List returns every saved session, most recent first
func (s *Store) List(ctx context.Context) ([]SessionInfo, error) {
	q, err := s.db.QueryContext(ctx, `SELECT s.name, s.saved_at, COUNT(r.id)
		FROM sessions s LEFT JOIN session_rows r ON r.session = s.name
		GROUP BY s.name, s.saved_at
		ORDER BY s.saved_at DESC, s.name`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer q.Close()

	var out []SessionInfo
	for q.Next() {
		var (
			info    SessionInfo
			savedAt string
		)
		if err := q.Scan(&info.Name, &savedAt, &info.Rows); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if info.SavedAt, err = time.Parse(timeFormat, savedAt); err != nil {
			return nil, fmt.Errorf("session %q saved_at: %w", info.Name, err)
		}
		out = append(out, info)
	}
	return out, q.Err()
}

// Delete removes a saved session
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting session %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	s.logger.Info("Session deleted", zap.String("name", name))
	return nil
}
