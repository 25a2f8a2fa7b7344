package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token_hash, user_id, expires_at, revoked, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.TokenHash, s.UserID, s.ExpiresAt, s.Revoked, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, user_id, expires_at, revoked, created_at, updated_at
		 FROM sessions
		 WHERE token_hash = ? AND revoked = 0 AND expires_at > ?`,
		hash, now.UTC())

	var s domain.Session
	err := row.Scan(&s.ID, &s.TokenHash, &s.UserID, &s.ExpiresAt, &s.Revoked, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE token_hash = ?`,
		time.Now().UTC(), hash)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ? OR revoked = 1`, now.UTC())
	return err
}
