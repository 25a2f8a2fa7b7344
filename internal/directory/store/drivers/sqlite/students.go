package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
)

type studentsRepo struct {
	db dbtx
}

func (r *studentsRepo) GetStudent(ctx context.Context, id string) (domain.StudentProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, graduation_year, department, created_at, updated_at
		 FROM students WHERE id = ?`, id)

	var p domain.StudentProfile
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.GraduationYear, &p.Department, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.StudentProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *studentsRepo) CreateStudent(ctx context.Context, p domain.StudentProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (id, name, email, graduation_year, department, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, p.GraduationYear, p.Department, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *studentsRepo) DeleteStudent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	return err
}

func (r *studentsRepo) ListStudents(ctx context.Context) ([]domain.StudentProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, graduation_year, department, created_at, updated_at
		 FROM students ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StudentProfile
	for rows.Next() {
		var p domain.StudentProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.GraduationYear, &p.Department, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *studentsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
