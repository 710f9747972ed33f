package verify

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/order"
)

// ErrNotFound is returned when a row ID is not part of the session
var ErrNotFound = errors.New("row not found")

// Row is one line of the review list
type Row struct {
	ID       uuid.UUID
	Item     *model.Redaction
	Viewed   bool
	ViewedAt time.Time
}

// Session is a review list kept in spatial order. It is safe for
// concurrent use.
type Session struct {
	mu      sync.RWMutex
	orderer *order.Orderer
	logger  *zap.Logger
	rows    []Row
	now     func() time.Time
}

// NewSession creates a session holding the given items in spatial order.
// A nil logger disables logging.
func NewSession(orderer *order.Orderer, logger *zap.Logger, items ...*model.Redaction) *Session {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{ID: uuid.New(), Item: item})
	}
	return NewSessionFromRows(orderer, logger, rows)
}

// NewSessionFromRows restores a session from saved rows, keeping their IDs
// and viewed state. Rows are re-sorted; rows that compare equal keep
// their given order.
func NewSessionFromRows(orderer *order.Orderer, logger *zap.Logger, rows []Row) *Session {
	if orderer == nil {
		orderer = order.NewOrderer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		orderer: orderer,
		logger:  logger,
		rows:    slices.Clone(rows),
		now:     time.Now,
	}
	for i := range s.rows {
		if s.rows[i].ID == uuid.Nil {
			s.rows[i].ID = uuid.New()
		}
	}
	slices.SortStableFunc(s.rows, s.compareRows)

	s.logger.Debug("Session created", zap.Int("rows", len(s.rows)))
	return s
}

func (s *Session) compareRows(a, b Row) int {
	return s.orderer.Compare(a.Item, b.Item)
}

// Len returns the number of rows
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Rows returns a snapshot of all rows in display order
func (s *Session) Rows() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rows)
}

// Row returns the row at a display index
func (s *Session) Row(i int) (Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[i], true
}

// Index returns the display index of a row, or -1
func (s *Session) Index(id uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(id)
}

func (s *Session) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.rows, func(r Row) bool { return r.ID == id })
}

// Add inserts an item at its spatial position, after any rows it compares
// equal to, and returns the new row
func (s *Session) Add(item *model.Redaction) Row {
	row := Row{ID: uuid.New(), Item: item}

	s.mu.Lock()
	i := s.insertLocked(row)
	s.mu.Unlock()

	s.logger.Debug("Row added", zap.Stringer("id", row.ID), zap.Int("index", i))
	return row
}

// insertLocked places row after every row that does not sort after it
func (s *Session) insertLocked(row Row) int {
	i, _ := slices.BinarySearchFunc(s.rows, row, func(existing, target Row) int {
		if s.compareRows(existing, target) == order.Greater {
			return order.Greater
		}
		return order.Less
	})
	s.rows = slices.Insert(s.rows, i, row)
	return i
}

// Remove deletes a row
func (s *Session) Remove(id uuid.UUID) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.rows = slices.Delete(s.rows, i, i+1)
	s.mu.Unlock()

	s.logger.Debug("Row removed", zap.Stringer("id", id), zap.Int("index", i))
	return nil
}

// Update replaces a row's item and moves the row to its new position.
// It returns the new display index.
func (s *Session) Update(id uuid.UUID, item *model.Redaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return -1, ErrNotFound
	}
	row := s.rows[i]
	row.Item = item
	s.rows = slices.Delete(s.rows, i, i+1)

	j := s.insertLocked(row)

	s.logger.Debug("Row updated", zap.Stringer("id", id), zap.Int("from", i), zap.Int("to", j))
	return j, nil
}

// MarkViewed flags a row as reviewed
func (s *Session) MarkViewed(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return ErrNotFound
	}
	if !s.rows[i].Viewed {
		s.rows[i].Viewed = true
		s.rows[i].ViewedAt = s.now()
	}
	return nil
}

// Next returns the index of the first unviewed row after from.
// Pass -1 to search from the start.
func (s *Session) Next(from int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := max(from+1, 0); i < len(s.rows); i++ {
		if !s.rows[i].Viewed {
			return i, true
		}
	}
	return -1, false
}

// Previous returns the index of the last unviewed row before from.
// Pass Len() to search from the end.
func (s *Session) Previous(from int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := min(from-1, len(s.rows)-1); i >= 0; i-- {
		if !s.rows[i].Viewed {
			return i, true
		}
	}
	return -1, false
}
