package service

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/campusdir/internal/directory/store/drivers/sqlite"
	"github.com/aussiebroadwan/campusdir/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway file-backed store with migrations applied
// and points password hashing at a throwaway pepper.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "directory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}
