package session

import (
	"context"
	"sync"
	"time"

	"portal/internal/configuration"
	"portal/internal/models"

	"github.com/google/uuid"
)

type memoryEntry struct {
	conv      models.Conversation
	expiresAt time.Time
}

// MemoryStore is the single-instance conversation store. Expiry is evaluated
// lazily on Get; there is no background sweeper.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     configuration.ConversationTTL,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, ErrConversationNotFound
	}

	conv := entry.conv
	if entry.conv.Challenge != nil {
		challenge := *entry.conv.Challenge
		conv.Challenge = &challenge
	}
	return &conv, nil
}

func (s *MemoryStore) Set(_ context.Context, conv *models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *conv
	if conv.Challenge != nil {
		challenge := *conv.Challenge
		stored.Challenge = &challenge
	}

	s.entries[conv.ID] = memoryEntry{
		conv:      stored,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}
