package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/aussiebroadwan/campusdir/internal/directory/store"
	"github.com/aussiebroadwan/campusdir/pkg/cryptox"
	"github.com/aussiebroadwan/campusdir/pkg/idx"
	"github.com/aussiebroadwan/campusdir/pkg/slogx"
)

// MetaInitializedKey marks a store that has already been seeded.
const MetaInitializedKey = "initialized"

// BootstrapService seeds the demo dataset on first boot. The marker row in
// the meta table gates the whole thing, so restarting against an existing
// database is a no-op even after all demo rows are deleted.
type BootstrapService struct {
	Store store.Store
}

// IsSeeded reports whether the initialized marker is present.
func (s *BootstrapService) IsSeeded(ctx context.Context) (bool, error) {
	_, err := s.Store.Meta().GetMeta(ctx, MetaInitializedKey)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnsureSeeded writes the seed data and the initialized marker in one
// transaction, unless the marker already exists.
func (s *BootstrapService) EnsureSeeded(ctx context.Context, data domain.SeedData) error {
	log := slogx.FromContext(ctx)

	seeded, err := s.IsSeeded(ctx)
	if err != nil {
		return err
	}
	if seeded {
		log.Debug("store already seeded, skipping bootstrap")
		return nil
	}

	// Hash passwords before opening the transaction; argon2 is slow.
	hashes := make([]string, len(data.Users))
	for i, u := range data.Users {
		hash, err := cryptox.HashPassword(u.Password)
		if err != nil {
			log.Error("failed to hash seed password", slog.Any("error", err))
			return err
		}
		hashes[i] = hash
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for i, seed := range data.Users {
			user := domain.User{
				ID:           idx.New().String(),
				Name:         seed.Name,
				Email:        normalizeEmail(seed.Email),
				PasswordHash: hashes[i],
				Role:         seed.Role,
			}
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return err
			}

			switch seed.Role {
			case domain.RoleStudent:
				if err := tx.Students().CreateStudent(ctx, domain.StudentProfile{
					ID:             user.ID,
					Name:           user.Name,
					Email:          user.Email,
					GraduationYear: seed.GraduationYear,
					Department:     seed.Department,
				}); err != nil {
					return err
				}
			case domain.RoleAlumni:
				if err := tx.Alumni().CreateAlumnus(ctx, domain.AlumniProfile{
					ID:             user.ID,
					Name:           user.Name,
					Email:          user.Email,
					GraduationYear: seed.GraduationYear,
					Department:     seed.Department,
					Company:        seed.Company,
					Position:       seed.Position,
					Achievements:   seed.Achievements,
					Notable:        seed.Notable,
				}); err != nil {
					return err
				}
			}
		}

		for _, p := range data.Students {
			p.ID = idx.New().String()
			if err := tx.Students().CreateStudent(ctx, p); err != nil {
				return err
			}
		}

		for _, p := range data.Alumni {
			p.ID = idx.New().String()
			if err := tx.Alumni().CreateAlumnus(ctx, p); err != nil {
				return err
			}
		}

		for _, e := range data.Events {
			e.ID = idx.New().String()
			if err := tx.Events().CreateEvent(ctx, e); err != nil {
				return err
			}
		}

		return tx.Meta().SetMeta(ctx, MetaInitializedKey, "true")
	})
	if err != nil {
		log.Error("bootstrap seeding failed", slog.Any("error", err))
		return err
	}

	log.Info("seeded demo data",
		slog.Int("users", len(data.Users)),
		slog.Int("students", len(data.Students)),
		slog.Int("alumni", len(data.Alumni)),
		slog.Int("events", len(data.Events)),
	)
	return nil
}
