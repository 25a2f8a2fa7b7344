package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/aussiebroadwan/campusdir/pkg/idx"
	"github.com/stretchr/testify/require"
)

// seededProfiles loads the demo dataset and returns the profile service
// plus the identity of the demo alumnus (the only self-editable profile).
func seededProfiles(t *testing.T) (*ProfileService, domain.Identity, context.Context) {
	t.Helper()
	ctx := context.Background()
	db := newTestStore(t)
	require.NoError(t, (&BootstrapService{Store: db}).EnsureSeeded(ctx, domain.DefaultSeedData()))

	user, err := db.Users().GetUserByEmail(ctx, "alumni@university.edu")
	require.NoError(t, err)

	return &ProfileService{Store: db}, user.Identity(), ctx
}

func TestFilterStudents(t *testing.T) {
	svc, _, ctx := seededProfiles(t)

	t.Run("empty query returns all in insertion order", func(t *testing.T) {
		all, err := svc.FilterStudents(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "Student User", all[0].Name)
		require.Equal(t, "Emily Johnson", all[1].Name)
		require.Equal(t, "Michael Brown", all[2].Name)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got, err := svc.FilterStudents(ctx, "eMiLy")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Emily Johnson", got[0].Name)
	})

	t.Run("matches department", func(t *testing.T) {
		got, err := svc.FilterStudents(ctx, "business")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Michael Brown", got[0].Name)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		got, err := svc.FilterStudents(ctx, "astrophysics")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestFilterAlumniMatchesCompanyAndPosition(t *testing.T) {
	svc, _, ctx := seededProfiles(t)

	got, err := svc.FilterAlumni(ctx, "tesla")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "David Martinez", got[0].Name)

	got, err = svc.FilterAlumni(ctx, "marketing director")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Jennifer Lee", got[0].Name)
}

func TestNotableAlumniIsOrderedSubsetOfAll(t *testing.T) {
	svc, _, ctx := seededProfiles(t)

	all, err := svc.FilterAlumni(ctx, "")
	require.NoError(t, err)
	notable, err := svc.NotableAlumni(ctx)
	require.NoError(t, err)

	require.NotEmpty(t, notable)
	require.Less(t, len(notable), len(all))

	// Subset, and in the same relative order as the full listing.
	i := 0
	for _, p := range all {
		if i < len(notable) && notable[i].ID == p.ID {
			require.True(t, p.Notable)
			i++
		}
	}
	require.Equal(t, len(notable), i)
}

func TestDeleteProfileIsNoOpWhenAbsent(t *testing.T) {
	svc, _, ctx := seededProfiles(t)

	before, err := svc.ListStudents(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, idx.New().String()))
	require.NoError(t, svc.DeleteAlumnus(ctx, idx.New().String()))

	after, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Equal(t, len(before), len(after))
}

func TestDeleteProfileDoesNotCascadeToCredential(t *testing.T) {
	svc, alumnus, ctx := seededProfiles(t)

	require.NoError(t, svc.DeleteAlumnus(ctx, alumnus.ID))

	// The credential survives; login still works against it.
	sessions := &SessionService{Store: svc.Store}
	identity, _, err := sessions.Login(ctx, "alumni@university.edu", "password")
	require.NoError(t, err)
	require.Equal(t, alumnus.ID, identity.ID)
}

func TestUpdateAlumniProfile(t *testing.T) {
	svc, alumnus, ctx := seededProfiles(t)

	t.Run("merges only the provided fields", func(t *testing.T) {
		company := "Globex"
		require.NoError(t, svc.UpdateAlumniProfile(ctx, alumnus, alumnus.ID, AlumniProfileUpdate{
			Company: &company,
		}))

		profile, err := svc.Store.Alumni().GetAlumnus(ctx, alumnus.ID)
		require.NoError(t, err)
		require.Equal(t, "Globex", profile.Company)
		require.Equal(t, "Software Engineer", profile.Position, "untouched field keeps its value")
		require.True(t, profile.Notable, "notable flag is not self-editable")
	})

	t.Run("rejects edits by anyone but the owner", func(t *testing.T) {
		position := "CEO"
		other := domain.Identity{ID: idx.New().String(), Role: domain.RoleAlumni}
		err := svc.UpdateAlumniProfile(ctx, other, alumnus.ID, AlumniProfileUpdate{Position: &position})
		require.ErrorIs(t, err, ErrForbidden)

		student := domain.Identity{ID: alumnus.ID, Role: domain.RoleStudent}
		err = svc.UpdateAlumniProfile(ctx, student, alumnus.ID, AlumniProfileUpdate{Position: &position})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("absent profile is NotFound", func(t *testing.T) {
		ghost := domain.Identity{ID: idx.New().String(), Role: domain.RoleAlumni}
		company := "Nowhere Inc"
		err := svc.UpdateAlumniProfile(ctx, ghost, ghost.ID, AlumniProfileUpdate{Company: &company})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank achievement in replacement list is rejected", func(t *testing.T) {
		achievements := []string{"Shipped v1", "   "}
		err := svc.UpdateAlumniProfile(ctx, alumnus, alumnus.ID, AlumniProfileUpdate{
			Achievements: &achievements,
		})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestAchievementRoundTrip(t *testing.T) {
	svc, alumnus, ctx := seededProfiles(t)

	before, err := svc.Store.Alumni().GetAlumnus(ctx, alumnus.ID)
	require.NoError(t, err)

	require.NoError(t, svc.AddAchievement(ctx, alumnus, alumnus.ID, "Keynote speaker"))

	after, err := svc.Store.Alumni().GetAlumnus(ctx, alumnus.ID)
	require.NoError(t, err)
	require.Len(t, after.Achievements, len(before.Achievements)+1)
	require.Equal(t, "Keynote speaker", after.Achievements[len(after.Achievements)-1])

	// Removing what was just appended restores length and order.
	require.NoError(t, svc.RemoveAchievement(ctx, alumnus, alumnus.ID, len(after.Achievements)-1))

	restored, err := svc.Store.Alumni().GetAlumnus(ctx, alumnus.ID)
	require.NoError(t, err)
	require.Equal(t, before.Achievements, restored.Achievements)
}

func TestAchievementValidation(t *testing.T) {
	svc, alumnus, ctx := seededProfiles(t)

	require.ErrorIs(t, svc.AddAchievement(ctx, alumnus, alumnus.ID, ""), ErrValidation)
	require.ErrorIs(t, svc.AddAchievement(ctx, alumnus, alumnus.ID, "   \t"), ErrValidation)

	profile, err := svc.Store.Alumni().GetAlumnus(ctx, alumnus.ID)
	require.NoError(t, err)

	require.ErrorIs(t, svc.RemoveAchievement(ctx, alumnus, alumnus.ID, -1), ErrIndexOutOfRange)
	require.ErrorIs(t, svc.RemoveAchievement(ctx, alumnus, alumnus.ID, len(profile.Achievements)), ErrIndexOutOfRange)

	other := domain.Identity{ID: idx.New().String(), Role: domain.RoleAlumni}
	require.ErrorIs(t, svc.AddAchievement(ctx, other, alumnus.ID, "Not mine"), ErrForbidden)
	require.ErrorIs(t, svc.RemoveAchievement(ctx, other, alumnus.ID, 0), ErrForbidden)
}
