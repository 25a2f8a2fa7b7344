package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	svc := &EventService{Store: newTestStore(t)}

	t.Run("stores and lists events in insertion order", func(t *testing.T) {
		first, err := svc.Create(ctx, CreateEventParams{
			Title:       "Career Fair",
			Description: "Annual career fair with industry partners",
			Date:        time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
			Location:    "Main Hall",
		})
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)

		second, err := svc.Create(ctx, CreateEventParams{
			Title:    "Alumni Mixer",
			Date:     time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC),
			Location: "Rooftop Lounge",
		})
		require.NoError(t, err)

		events, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, first.ID, events[0].ID)
		require.Equal(t, second.ID, events[1].ID)
		require.Equal(t, "Career Fair", events[0].Title)
	})

	t.Run("trims whitespace from fields", func(t *testing.T) {
		event, err := svc.Create(ctx, CreateEventParams{
			Title:       "  Hackathon  ",
			Description: " 24 hours of building ",
			Date:        time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
			Location:    " Engineering Building ",
		})
		require.NoError(t, err)
		require.Equal(t, "Hackathon", event.Title)
		require.Equal(t, "24 hours of building", event.Description)
		require.Equal(t, "Engineering Building", event.Location)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		date := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

		cases := []struct {
			name   string
			params CreateEventParams
		}{
			{"blank title", CreateEventParams{Title: "  ", Date: date, Location: "Main Hall"}},
			{"blank location", CreateEventParams{Title: "Career Fair", Date: date, Location: ""}},
			{"zero date", CreateEventParams{Title: "Career Fair", Location: "Main Hall"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tc.params)
				require.ErrorIs(t, err, ErrValidation)
			})
		}
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := &EventService{Store: newTestStore(t)}

	event, err := svc.Create(ctx, CreateEventParams{
		Title:    "Guest Lecture",
		Date:     time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC),
		Location: "Auditorium",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, event.ID))

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, events)

	// Deleting an id that no longer exists is a no-op.
	require.NoError(t, svc.Delete(ctx, event.ID))
}
