package flow

import (
	"testing"
	"time"

	"portal/internal/helpers"
	"portal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conversationWithChallenge(t *testing.T, code string, issuedAt time.Time) *models.Conversation {
	t.Helper()

	hash, err := helpers.CreateHash(code)
	require.NoError(t, err)

	return &models.Conversation{
		ID:       uuid.New(),
		Username: "jdoe",
		Phone:    "5551234567",
		Intent:   models.IntentUnlock,
		Challenge: &models.Challenge{
			HashedCode: hash,
			IssuedAt:   issuedAt,
		},
	}
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	verifier := &Verifier{now: func() time.Time { return now }}

	t.Run("should accept the right code inside the validity window", func(t *testing.T) {
		conv := conversationWithChallenge(t, "482913", now.Add(-119*time.Second))

		outcome := verifier.Evaluate(conv, "482913")

		assert.Equal(t, OutcomeSuccess, outcome)
		assert.Nil(t, conv.Challenge, "a spent challenge is removed")
	})

	t.Run("should expire the challenge after the validity window", func(t *testing.T) {
		conv := conversationWithChallenge(t, "482913", now.Add(-121*time.Second))

		outcome := verifier.Evaluate(conv, "482913")

		assert.Equal(t, OutcomeExpired, outcome)
		assert.Nil(t, conv.Challenge, "an expired challenge is removed")
	})

	t.Run("should expire exactly at the validity boundary", func(t *testing.T) {
		conv := conversationWithChallenge(t, "482913", now.Add(-120*time.Second))

		outcome := verifier.Evaluate(conv, "482913")

		assert.Equal(t, OutcomeExpired, outcome)
	})

	t.Run("should keep the challenge pending on a wrong code", func(t *testing.T) {
		conv := conversationWithChallenge(t, "482913", now.Add(-10*time.Second))

		outcome := verifier.Evaluate(conv, "111111")

		assert.Equal(t, OutcomeMismatch, outcome)
		require.NotNil(t, conv.Challenge)
		assert.Equal(t, 1, conv.Challenge.FailedAttempts)

		outcome = verifier.Evaluate(conv, "222222")
		assert.Equal(t, OutcomeMismatch, outcome)
		assert.Equal(t, 2, conv.Challenge.FailedAttempts)
	})

	t.Run("should still accept the right code after wrong attempts", func(t *testing.T) {
		conv := conversationWithChallenge(t, "482913", now.Add(-10*time.Second))

		_ = verifier.Evaluate(conv, "111111")
		outcome := verifier.Evaluate(conv, "482913")

		assert.Equal(t, OutcomeSuccess, outcome)
	})

	t.Run("should check expiry before the code", func(t *testing.T) {
		conv := conversationWithChallenge(t, "482913", now.Add(-200*time.Second))

		outcome := verifier.Evaluate(conv, "111111")

		assert.Equal(t, OutcomeExpired, outcome)
	})

	t.Run("should report a conversation without a challenge", func(t *testing.T) {
		conv := &models.Conversation{ID: uuid.New(), Username: "jdoe"}

		outcome := verifier.Evaluate(conv, "482913")

		assert.Equal(t, OutcomeNoPendingChallenge, outcome)
	})
}
