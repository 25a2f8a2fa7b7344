package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortedIDs(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	_, err := Parse(a.String())
	require.NoError(t, err)
	_, err = Parse(b.String())
	require.NoError(t, err)

	// Monotonic entropy guarantees ordering even within the same ms.
	require.Less(t, a.String(), b.String())
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		_, err := Parse(input)
		require.ErrorIs(t, err, ErrInvalid, "input %q", input)
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	require.True(t, id.Time().Equal(at), "got %v, want %v", id.Time(), at)
}

func TestZeroID(t *testing.T) {
	t.Parallel()

	require.True(t, Zero.IsZero())
	require.True(t, Zero.Time().IsZero())
	require.False(t, New().IsZero())
}
