package helpers

import (
	"context"
	"testing"

	"portal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func testConversation() *models.Conversation {
	return &models.Conversation{
		ID:       uuid.New(),
		Username: "jdoe",
		Phone:    "5551234567",
		Intent:   models.IntentUnlock,
	}
}

func TestChallengeToken(t *testing.T) {
	t.Run("should round-trip conversation claims", func(t *testing.T) {
		conv := testConversation()

		token, err := NewChallengeToken(testSecret, conv)
		require.NoError(t, err)

		claims, err := ParseChallengeToken(testSecret, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, claims.ConversationID)
		assert.Equal(t, conv.Username, claims.Username)
		assert.Equal(t, conv.Intent, claims.Intent)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		token, err := NewChallengeToken("another-secret", testConversation())
		require.NoError(t, err)

		_, err = ParseChallengeToken(testSecret, "Bearer "+token)
		assert.Error(t, err)
	})

	t.Run("should reject a missing bearer prefix", func(t *testing.T) {
		token, err := NewChallengeToken(testSecret, testConversation())
		require.NoError(t, err)

		_, err = ParseChallengeToken(testSecret, token)
		assert.Error(t, err)
	})

	t.Run("should reject garbage tokens", func(t *testing.T) {
		_, err := ParseChallengeToken(testSecret, "Bearer not-a-token")
		assert.Error(t, err)
	})
}

func TestGetConversationClaims(t *testing.T) {
	t.Run("should fail when claims are absent from context", func(t *testing.T) {
		_, err := GetConversationClaims(context.Background())
		assert.Error(t, err)
	})

	t.Run("should return claims stored in context", func(t *testing.T) {
		claims := models.ConversationClaims{Username: "jdoe"}
		ctx := context.WithValue(context.Background(), models.ConversationClaimKey{}, claims)

		got, err := GetConversationClaims(ctx)
		require.NoError(t, err)
		assert.Equal(t, "jdoe", got.Username)
	})
}
