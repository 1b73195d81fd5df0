package models

import (
	"time"

	"github.com/google/uuid"
)

// Intent is the privileged action carried through a conversation. It is set
// when the conversation is opened and never changes afterwards.
type Intent string

const (
	IntentUnlock Intent = "unlock"
	IntentReset  Intent = "reset"
)

// Operation returns the VPN management API operation selector for the intent.
func (i Intent) Operation() string {
	return string(i)
}

// Severity is the user-facing classification of an action result.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// ActionResult is derived from the VPN management system's structured response.
type ActionResult struct {
	Succeeded bool     `json:"succeeded"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
}

// IdentityRecord is the outcome of resolving a username through the directory
// and the enterprise record system. Never persisted.
type IdentityRecord struct {
	EmployeeID      string
	RegisteredPhone string
}

// Challenge is the pending SMS challenge of one conversation. The code is
// stored argon2id-hashed; the plaintext only ever exists in the SMS payload.
type Challenge struct {
	HashedCode     string    `json:"hashed_code"`
	IssuedAt       time.Time `json:"issued_at"`
	FailedAttempts int       `json:"failed_attempts"`
}

// Conversation spans the issuance request and the subsequent verification
// request of one user interaction. At most one challenge is pending at a time;
// it is overwritten on reissue and cleared on success or expiry.
type Conversation struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Phone     string     `json:"phone"`
	Intent    Intent     `json:"intent"`
	Challenge *Challenge `json:"challenge,omitempty"`
}
