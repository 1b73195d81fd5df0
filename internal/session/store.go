package session

import (
	"context"
	"errors"

	"portal/internal/models"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when no conversation exists for the
// given ID, whether it never existed or has expired.
var ErrConversationNotFound = errors.New("conversation not found")

// IStore holds per-conversation state between the issuance request and the
// verification request. Implementations must isolate conversations from each
// other and make Get/Set/Clear atomic per conversation.
type IStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	Set(ctx context.Context, conv *models.Conversation) error
	Clear(ctx context.Context, id uuid.UUID) error
}
