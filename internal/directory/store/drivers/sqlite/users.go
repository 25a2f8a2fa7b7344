package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

func (r *usersRepo) scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return r.scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
