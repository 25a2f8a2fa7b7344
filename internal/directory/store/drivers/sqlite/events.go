package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
)

type eventsRepo struct {
	db dbtx
}

// Event dates are calendar dates; they persist as YYYY-MM-DD text.
const eventDateLayout = "2006-01-02"

func scanEvent(scan func(...any) error) (domain.Event, error) {
	var e domain.Event
	var date string
	if err := scan(&e.ID, &e.Title, &e.Description, &date, &e.Location, &e.CreatedAt); err != nil {
		return domain.Event{}, mapNotFound(err)
	}

	parsed, err := time.Parse(eventDateLayout, date)
	if err != nil {
		return domain.Event{}, err
	}
	e.Date = parsed
	return e, nil
}

func (r *eventsRepo) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, date, location, created_at FROM events WHERE id = ?`, id)
	return scanEvent(row.Scan)
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, title, description, date, location, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.Date.UTC().Format(eventDateLayout), e.Location, e.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *eventsRepo) DeleteEvent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

func (r *eventsRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, date, location, created_at FROM events ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
