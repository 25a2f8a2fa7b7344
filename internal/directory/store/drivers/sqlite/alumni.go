package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
)

type alumniRepo struct {
	db dbtx
}

const alumniColumns = `id, name, email, graduation_year, department, company, position, achievements, notable, created_at, updated_at`

func scanAlumnus(scan func(...any) error) (domain.AlumniProfile, error) {
	var p domain.AlumniProfile
	var achievements string
	err := scan(&p.ID, &p.Name, &p.Email, &p.GraduationYear, &p.Department,
		&p.Company, &p.Position, &achievements, &p.Notable, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.AlumniProfile{}, mapNotFound(err)
	}

	p.Achievements, err = unmarshalAchievements(achievements)
	if err != nil {
		return domain.AlumniProfile{}, err
	}
	return p, nil
}

func (r *alumniRepo) GetAlumnus(ctx context.Context, id string) (domain.AlumniProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+alumniColumns+` FROM alumni WHERE id = ?`, id)
	return scanAlumnus(row.Scan)
}

func (r *alumniRepo) CreateAlumnus(ctx context.Context, p domain.AlumniProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	achievements, err := marshalAchievements(p.Achievements)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO alumni (id, name, email, graduation_year, department, company, position, achievements, notable, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, p.GraduationYear, p.Department,
		p.Company, p.Position, achievements, p.Notable, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

// UpdateAlumnus rewrites the self-editable fields only. Identity fields,
// graduation year, department and the notable flag stay as inserted.
func (r *alumniRepo) UpdateAlumnus(ctx context.Context, p domain.AlumniProfile) error {
	achievements, err := marshalAchievements(p.Achievements)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE alumni SET company = ?, position = ?, achievements = ?, updated_at = ? WHERE id = ?`,
		p.Company, p.Position, achievements, time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *alumniRepo) DeleteAlumnus(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM alumni WHERE id = ?`, id)
	return err
}

func (r *alumniRepo) list(ctx context.Context, query string, args ...any) ([]domain.AlumniProfile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AlumniProfile
	for rows.Next() {
		p, err := scanAlumnus(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *alumniRepo) ListAlumni(ctx context.Context) ([]domain.AlumniProfile, error) {
	return r.list(ctx, `SELECT `+alumniColumns+` FROM alumni ORDER BY rowid`)
}

func (r *alumniRepo) ListNotableAlumni(ctx context.Context) ([]domain.AlumniProfile, error) {
	return r.list(ctx, `SELECT `+alumniColumns+` FROM alumni WHERE notable = 1 ORDER BY rowid`)
}

func (r *alumniRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alumni`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
