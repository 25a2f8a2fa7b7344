package ratex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterEnforcesBurstPerKey(t *testing.T) {
	t.Parallel()

	l := NewLimiter(Config{AttemptsPerWindow: 3, Window: time.Minute, Burst: 3})

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("alice@example.com"), "attempt %d", i)
	}
	require.False(t, l.Allow("alice@example.com"))

	// A different key has its own bucket.
	require.True(t, l.Allow("bob@example.com"))
}

func TestLimiterAllowsEmptyKey(t *testing.T) {
	t.Parallel()

	l := NewLimiter(Config{AttemptsPerWindow: 1, Window: time.Minute, Burst: 1})

	for i := 0; i < 10; i++ {
		require.True(t, l.Allow(""))
	}
}
