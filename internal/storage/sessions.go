package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oluyale/portfolio/internal/navstate"
	"github.com/oluyale/portfolio/internal/pages"
)

// SessionStore persists navigation state in the sessions table.
type SessionStore struct {
	db  *DB
	now func() time.Time
}

var _ navstate.Store = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore on db.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

func (s *SessionStore) Load(ctx context.Context, sessionID string) (navstate.State, error) {
	var (
		page     string
		menuOpen bool
		updated  int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT page, menu_open, updated_at FROM sessions WHERE id = ?`, sessionID,
	).Scan(&page, &menuOpen, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return navstate.New(), nil
	}
	if err != nil {
		return navstate.New(), fmt.Errorf("load session: %w", err)
	}
	id, ok := pages.Parse(page)
	if !ok {
		id = pages.Default
	}
	return navstate.State{
		Page:      id,
		MenuOpen:  menuOpen,
		UpdatedAt: time.Unix(0, updated).UTC(),
	}, nil
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, st navstate.State) error {
	if !st.Page.Valid() {
		st.Page = pages.Default
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, page, menu_open, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			page = excluded.page,
			menu_open = excluded.menu_open,
			updated_at = excluded.updated_at
	`, sessionID, string(st.Page), st.MenuOpen, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, olderThan.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	return res.RowsAffected()
}
