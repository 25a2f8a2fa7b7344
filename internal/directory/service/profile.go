package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/aussiebroadwan/campusdir/internal/directory/store"
	"github.com/aussiebroadwan/campusdir/pkg/slogx"
)

// ProfileService exposes the student and alumni directory tables. Role
// gating belongs to the caller via Authorize; ownership of alumni
// self-edits is re-checked here because it is cheap and load-bearing.
type ProfileService struct {
	Store store.Store
}

// AlumniProfileUpdate is a partial update of the self-editable alumni
// fields. Nil fields are left untouched; everything else on the profile
// (identity, graduation year, department, notable flag) is not
// self-editable and has no representation here.
type AlumniProfileUpdate struct {
	Company      *string
	Position     *string
	Achievements *[]string
}

func (s *ProfileService) ListStudents(ctx context.Context) ([]domain.StudentProfile, error) {
	return s.Store.Students().ListStudents(ctx)
}

func (s *ProfileService) ListAlumni(ctx context.Context) ([]domain.AlumniProfile, error) {
	return s.Store.Alumni().ListAlumni(ctx)
}

// FilterStudents returns students whose name, email or department contains
// the query, case-insensitively. An empty query matches everything.
// Ordering is insertion order.
func (s *ProfileService) FilterStudents(ctx context.Context, query string) ([]domain.StudentProfile, error) {
	students, err := s.Store.Students().ListStudents(ctx)
	if err != nil || query == "" {
		return students, err
	}

	q := strings.ToLower(query)
	var out []domain.StudentProfile
	for _, p := range students {
		if containsFold(q, p.Name, p.Email, p.Department) {
			out = append(out, p)
		}
	}
	return out, nil
}

// FilterAlumni is FilterStudents over the alumni table, additionally
// matching company and position.
func (s *ProfileService) FilterAlumni(ctx context.Context, query string) ([]domain.AlumniProfile, error) {
	alumni, err := s.Store.Alumni().ListAlumni(ctx)
	if err != nil || query == "" {
		return alumni, err
	}

	q := strings.ToLower(query)
	var out []domain.AlumniProfile
	for _, p := range alumni {
		if containsFold(q, p.Name, p.Email, p.Department, p.Company, p.Position) {
			out = append(out, p)
		}
	}
	return out, nil
}

// NotableAlumni returns the promoted subset, preserving table order.
func (s *ProfileService) NotableAlumni(ctx context.Context) ([]domain.AlumniProfile, error) {
	return s.Store.Alumni().ListNotableAlumni(ctx)
}

// DeleteStudent removes a student profile. Absent ids are a no-op, and the
// credential record behind the profile is deliberately left alone.
func (s *ProfileService) DeleteStudent(ctx context.Context, id string) error {
	return s.Store.Students().DeleteStudent(ctx, id)
}

// DeleteAlumnus removes an alumni profile. Same semantics as DeleteStudent.
func (s *ProfileService) DeleteAlumnus(ctx context.Context, id string) error {
	return s.Store.Alumni().DeleteAlumnus(ctx, id)
}

// UpdateAlumniProfile merges the provided fields into the acting alumnus's
// own profile. Only the owner may edit, and only company, position and
// achievements are reachable.
func (s *ProfileService) UpdateAlumniProfile(ctx context.Context, actor domain.Identity, id string, update AlumniProfileUpdate) error {
	log := slogx.FromContext(ctx)

	if actor.Role != domain.RoleAlumni || actor.ID != id {
		log.Warn("alumni profile edit denied",
			slog.String("actor_id", actor.ID),
			slog.String("profile_id", id),
		)
		return ErrForbidden
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		profile, err := tx.Alumni().GetAlumnus(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		if update.Company != nil {
			profile.Company = strings.TrimSpace(*update.Company)
		}
		if update.Position != nil {
			profile.Position = strings.TrimSpace(*update.Position)
		}
		if update.Achievements != nil {
			achievements := make([]string, 0, len(*update.Achievements))
			for _, a := range *update.Achievements {
				if strings.TrimSpace(a) == "" {
					return ErrValidation
				}
				achievements = append(achievements, a)
			}
			profile.Achievements = achievements
		}

		return tx.Alumni().UpdateAlumnus(ctx, profile)
	})
}

// AddAchievement appends one achievement to the acting alumnus's profile.
// Blank or whitespace-only text is rejected up front rather than filtered
// at save time.
func (s *ProfileService) AddAchievement(ctx context.Context, actor domain.Identity, id string, text string) error {
	if actor.Role != domain.RoleAlumni || actor.ID != id {
		return ErrForbidden
	}
	if strings.TrimSpace(text) == "" {
		return ErrValidation
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		profile, err := tx.Alumni().GetAlumnus(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		profile.Achievements = append(profile.Achievements, text)
		return tx.Alumni().UpdateAlumnus(ctx, profile)
	})
}

// RemoveAchievement deletes the achievement at index, preserving the order
// of the rest.
func (s *ProfileService) RemoveAchievement(ctx context.Context, actor domain.Identity, id string, index int) error {
	if actor.Role != domain.RoleAlumni || actor.ID != id {
		return ErrForbidden
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		profile, err := tx.Alumni().GetAlumnus(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		if index < 0 || index >= len(profile.Achievements) {
			return ErrIndexOutOfRange
		}
		profile.Achievements = append(profile.Achievements[:index], profile.Achievements[index+1:]...)
		return tx.Alumni().UpdateAlumnus(ctx, profile)
	})
}

// containsFold reports whether any field contains the already-lowercased
// query.
func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
