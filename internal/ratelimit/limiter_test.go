package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndRecord(t *testing.T) {
	t.Run("should allow the first five attempts and reject the sixth", func(t *testing.T) {
		limiter := NewDailyLimiter(NewMemoryCounter())

		for i := 1; i <= 5; i++ {
			ok, err := limiter.CheckAndRecord(context.Background(), "5551234567")
			require.NoError(t, err)
			assert.True(t, ok, "attempt %d should be under quota", i)
		}

		ok, err := limiter.CheckAndRecord(context.Background(), "5551234567")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should count phone numbers independently", func(t *testing.T) {
		limiter := NewDailyLimiter(NewMemoryCounter())

		for i := 0; i < 5; i++ {
			_, err := limiter.CheckAndRecord(context.Background(), "5551111111")
			require.NoError(t, err)
		}

		ok, err := limiter.CheckAndRecord(context.Background(), "5552222222")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should reset at the UTC day boundary", func(t *testing.T) {
		day := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
		limiter := NewDailyLimiter(NewMemoryCounter())
		limiter.now = func() time.Time { return day }

		for i := 0; i < 6; i++ {
			_, err := limiter.CheckAndRecord(context.Background(), "5551234567")
			require.NoError(t, err)
		}

		limiter.now = func() time.Time { return day.Add(2 * time.Minute) }

		ok, err := limiter.CheckAndRecord(context.Background(), "5551234567")
		require.NoError(t, err)
		assert.True(t, ok, "a new day starts a fresh quota")
	})

	t.Run("should never lose concurrent attempts", func(t *testing.T) {
		limiter := NewDailyLimiter(NewMemoryCounter())

		var wg sync.WaitGroup
		allowed := make(chan bool, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := limiter.CheckAndRecord(context.Background(), "5551234567")
				assert.NoError(t, err)
				allowed <- ok
			}()
		}
		wg.Wait()
		close(allowed)

		count := 0
		for ok := range allowed {
			if ok {
				count++
			}
		}
		assert.Equal(t, 5, count, "exactly the quota is admitted")
	})
}
