package flow

import (
	"time"

	"portal/internal/configuration"
	"portal/internal/models"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
)

// Outcome is the result of evaluating a submitted code against a
// conversation's pending challenge.
type Outcome int

const (
	// OutcomeSuccess: the code matched within its validity window. The
	// challenge has been removed from the conversation.
	OutcomeSuccess Outcome = iota
	// OutcomeMismatch: the code did not match. The challenge stays pending
	// with its failed-attempt count incremented.
	OutcomeMismatch
	// OutcomeExpired: the validity window elapsed before evaluation. The
	// challenge has been removed from the conversation.
	OutcomeExpired
	// OutcomeNoPendingChallenge: the conversation holds no challenge.
	OutcomeNoPendingChallenge
)

// Verifier evaluates submitted codes. Expiry is checked before the hash so an
// attacker gains nothing from hammering a stale challenge.
type Verifier struct {
	now func() time.Time
}

func NewVerifier() *Verifier {
	return &Verifier{now: time.Now}
}

// Evaluate checks the submitted code against the conversation's pending
// challenge and mutates the conversation accordingly. The caller is
// responsible for persisting the mutated conversation.
func (v *Verifier) Evaluate(conv *models.Conversation, code string) Outcome {
	challenge := conv.Challenge
	if challenge == nil {
		return OutcomeNoPendingChallenge
	}

	if v.now().Sub(challenge.IssuedAt) >= configuration.ChallengeValidity {
		conv.Challenge = nil
		return OutcomeExpired
	}

	match, err := argon2id.ComparePasswordAndHash(code, challenge.HashedCode)
	if err != nil {
		zap.L().Error("Failed to compare challenge hash", zap.Error(err))
		match = false
	}
	if !match {
		challenge.FailedAttempts++
		return OutcomeMismatch
	}

	conv.Challenge = nil
	return OutcomeSuccess
}
