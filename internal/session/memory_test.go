package session

import (
	"context"
	"testing"
	"time"

	"portal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedConversation() *models.Conversation {
	return &models.Conversation{
		ID:       uuid.New(),
		Username: "jdoe",
		Phone:    "5551234567",
		Intent:   models.IntentUnlock,
		Challenge: &models.Challenge{
			HashedCode: "$argon2id$fake",
			IssuedAt:   time.Now(),
		},
	}
}

func TestMemoryStore(t *testing.T) {
	t.Run("should round-trip a conversation", func(t *testing.T) {
		store := NewMemoryStore()
		conv := storedConversation()

		require.NoError(t, store.Set(context.Background(), conv))

		got, err := store.Get(context.Background(), conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.Username, got.Username)
		require.NotNil(t, got.Challenge)
		assert.Equal(t, conv.Challenge.HashedCode, got.Challenge.HashedCode)
	})

	t.Run("should return copies that do not alias stored state", func(t *testing.T) {
		store := NewMemoryStore()
		conv := storedConversation()
		require.NoError(t, store.Set(context.Background(), conv))

		got, err := store.Get(context.Background(), conv.ID)
		require.NoError(t, err)
		got.Challenge.FailedAttempts = 99

		again, err := store.Get(context.Background(), conv.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, again.Challenge.FailedAttempts)
	})

	t.Run("should miss on unknown conversations", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Get(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})

	t.Run("should expire conversations after the TTL", func(t *testing.T) {
		store := NewMemoryStore()
		conv := storedConversation()

		base := time.Now()
		store.now = func() time.Time { return base }
		require.NoError(t, store.Set(context.Background(), conv))

		store.now = func() time.Time { return base.Add(16 * time.Minute) }

		_, err := store.Get(context.Background(), conv.ID)
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})

	t.Run("should miss after clear", func(t *testing.T) {
		store := NewMemoryStore()
		conv := storedConversation()
		require.NoError(t, store.Set(context.Background(), conv))

		require.NoError(t, store.Clear(context.Background(), conv.ID))

		_, err := store.Get(context.Background(), conv.ID)
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})
}
