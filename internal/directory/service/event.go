package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/aussiebroadwan/campusdir/internal/directory/store"
	"github.com/aussiebroadwan/campusdir/pkg/idx"
	"github.com/aussiebroadwan/campusdir/pkg/slogx"
)

// EventService owns department announcements. Events have no uniqueness
// or foreign-key constraints; they are created and deleted freely by the
// department role (the caller gates the role via Authorize).
type EventService struct {
	Store store.Store
}

type CreateEventParams struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// Create validates the required fields, generates a fresh id and stores
// the event.
func (s *EventService) Create(ctx context.Context, params CreateEventParams) (domain.Event, error) {
	log := slogx.FromContext(ctx)

	title := strings.TrimSpace(params.Title)
	location := strings.TrimSpace(params.Location)
	if title == "" || location == "" || params.Date.IsZero() {
		return domain.Event{}, ErrValidation
	}

	event := domain.Event{
		ID:          idx.New().String(),
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		Date:        params.Date,
		Location:    location,
	}

	if err := s.Store.Events().CreateEvent(ctx, event); err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return domain.Event{}, err
	}

	log.Info("event created", slog.String("event_id", event.ID), slog.String("title", event.Title))
	return event, nil
}

// Delete removes an event. Absent ids are a no-op.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.Store.Events().DeleteEvent(ctx, id)
}

// List returns all events in insertion order.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.Store.Events().ListEvents(ctx)
}
