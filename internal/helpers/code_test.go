package helpers

import (
	"strconv"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChallengeCode(t *testing.T) {
	t.Run("should generate six digit codes inside the range", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			code, err := GenerateChallengeCode()

			require.NoError(t, err)
			assert.Len(t, code, 6)

			n, err := strconv.Atoi(code)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 100000)
			assert.LessOrEqual(t, n, 999999)
		}
	})

	t.Run("should generate different codes across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := GenerateChallengeCode()
			require.NoError(t, err)
			seen[code] = true
		}
		assert.Greater(t, len(seen), 1, "codes should not repeat every time")
	})
}

func TestCreateHash(t *testing.T) {
	t.Run("should produce a hash the original code verifies against", func(t *testing.T) {
		hash, err := CreateHash("482913")

		require.NoError(t, err)

		match, err := argon2id.ComparePasswordAndHash("482913", hash)
		require.NoError(t, err)
		assert.True(t, match)

		match, err = argon2id.ComparePasswordAndHash("482914", hash)
		require.NoError(t, err)
		assert.False(t, match)
	})
}
