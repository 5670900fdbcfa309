package local

import (
	"context"
	"database/sql"

	"nakram/coach-builder/internal/domain"
)

// Fixed storage key for the session blob, one session per state file.
const sessionKey = "coach_app_session"

// SessionStore persists the logged-in identity between CLI invocations.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a SessionStore over the local database.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Get returns the stored session, or (nil, nil) when logged out.
func (s *SessionStore) Get(ctx context.Context) (*domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT role, code, coach_name FROM session WHERE key = ?", sessionKey)

	var sess domain.Session
	err := row.Scan(&sess.Role, &sess.Code, &sess.CoachName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Set stores the session, replacing any previous one.
func (s *SessionStore) Set(ctx context.Context, sess domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session (key, role, code, coach_name) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET role=excluded.role, code=excluded.code, coach_name=excluded.coach_name`,
		sessionKey, sess.Role, sess.Code, sess.CoachName)
	return err
}

// Clear removes the session. Clearing an absent session is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE key = ?", sessionKey)
	return err
}
