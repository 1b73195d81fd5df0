package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a conversation key has no value.
var ErrKeyNotFound = errors.New("key not found")

type ICache interface {
	// IncrementSMSCount atomically increments the issuance counter for one
	// phone number on one UTC calendar day and returns the new count.
	IncrementSMSCount(ctx context.Context, phone string, day string) (int64, error)

	GetConversation(ctx context.Context, id string) ([]byte, error)
	SetConversation(ctx context.Context, id string, payload []byte, ttl time.Duration) error
	DeleteConversation(ctx context.Context, id string) error

	Close() error
}
