package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/models"
)

const (
	saveSession = `INSERT INTO sessions (server_url, user_id, pseudo, access_token, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (server_url) DO UPDATE SET
			user_id = excluded.user_id,
			pseudo = excluded.pseudo,
			access_token = excluded.access_token,
			saved_at = excluded.saved_at;`

	loadSession = `SELECT server_url, user_id, pseudo, access_token, saved_at
		FROM sessions
		WHERE server_url = ?;`

	deleteSession = `DELETE FROM sessions WHERE server_url = ?;`
)

// sessionRepository is the SQLite-backed implementation of [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] on the client's SQLite file.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession replaces the session stored for session.ServerURL.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveSession, session.ServerURL, session.UserID, session.Pseudo, session.AccessToken, session.SavedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns [ErrSessionNotFound] when nothing is saved for
// serverURL.
func (r *sessionRepository) LoadSession(ctx context.Context, serverURL string) (models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, loadSession, serverURL).Scan(&s.ServerURL, &s.UserID, &s.Pseudo, &s.AccessToken, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, r.db.wrap(ErrScanningRow, err)
	}
	return s, nil
}

// DeleteSession is a no-op when nothing is stored.
func (r *sessionRepository) DeleteSession(ctx context.Context, serverURL string) error {
	if _, err := r.db.ExecContext(ctx, deleteSession, serverURL); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}
