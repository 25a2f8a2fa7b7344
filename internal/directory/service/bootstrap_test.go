package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/stretchr/testify/require"
)

func TestBootstrapService_EnsureSeeded(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st}

	seeded, err := svc.IsSeeded(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	require.NoError(t, svc.EnsureSeeded(ctx, domain.DefaultSeedData()))

	seeded, err = svc.IsSeeded(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	t.Run("demo credentials can log in", func(t *testing.T) {
		sessions := &SessionService{Store: st}

		for email, role := range map[string]domain.Role{
			"admin@university.edu":   domain.RoleDepartment,
			"student@university.edu": domain.RoleStudent,
			"alumni@university.edu":  domain.RoleAlumni,
		} {
			identity, _, err := sessions.Login(ctx, email, "password")
			require.NoError(t, err, "login for %s", email)
			require.Equal(t, role, identity.Role)
		}
	})

	t.Run("demo users own a matching profile", func(t *testing.T) {
		user, err := st.Users().GetUserByEmail(ctx, "student@university.edu")
		require.NoError(t, err)
		student, err := st.Students().GetStudent(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "Computer Science", student.Department)

		user, err = st.Users().GetUserByEmail(ctx, "alumni@university.edu")
		require.NoError(t, err)
		alum, err := st.Alumni().GetAlumnus(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "Google", alum.Company)
		require.True(t, alum.Notable)
	})

	t.Run("sample rows and events are present", func(t *testing.T) {
		students, err := st.Students().ListStudents(ctx)
		require.NoError(t, err)
		require.Len(t, students, 3)

		alumni, err := st.Alumni().ListAlumni(ctx)
		require.NoError(t, err)
		require.Len(t, alumni, 3)

		events, err := st.Events().ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, svc.EnsureSeeded(ctx, domain.DefaultSeedData()))

		students, err := st.Students().ListStudents(ctx)
		require.NoError(t, err)
		require.Len(t, students, 3)
	})

	t.Run("marker survives deleting every demo row", func(t *testing.T) {
		students, err := st.Students().ListStudents(ctx)
		require.NoError(t, err)
		for _, p := range students {
			require.NoError(t, st.Students().DeleteStudent(ctx, p.ID))
		}

		require.NoError(t, svc.EnsureSeeded(ctx, domain.DefaultSeedData()))

		students, err = st.Students().ListStudents(ctx)
		require.NoError(t, err)
		require.Empty(t, students)
	})
}
