package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portal/internal/cache"
	"portal/internal/configuration"
	"portal/internal/models"

	"github.com/google/uuid"
)

// CacheStore keeps conversations in the shared cache so any instance can
// serve the verification request.
type CacheStore struct {
	cache cache.ICache
}

func NewCacheStore(c cache.ICache) *CacheStore {
	return &CacheStore{cache: c}
}

func (s *CacheStore) Get(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	payload, err := s.cache.GetConversation(ctx, id.String())
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	var conv models.Conversation
	if err = json.Unmarshal(payload, &conv); err != nil {
		return nil, fmt.Errorf("failed to decode conversation: %w", err)
	}
	return &conv, nil
}

func (s *CacheStore) Set(ctx context.Context, conv *models.Conversation) error {
	payload, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to encode conversation: %w", err)
	}
	return s.cache.SetConversation(ctx, conv.ID.String(), payload, configuration.ConversationTTL)
}

func (s *CacheStore) Clear(ctx context.Context, id uuid.UUID) error {
	return s.cache.DeleteConversation(ctx, id.String())
}
