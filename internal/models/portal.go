package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PortalRequestBody is the phase 1 submission: claimed identity plus intent.
type PortalRequestBody struct {
	Username    string `json:"username"     validate:"required,max=128"`
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
	Intent      Intent `json:"intent"       validate:"required,oneof=unlock reset"`
}

type PortalRequestResponse struct {
	ChallengeToken   string `json:"challenge_token"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// PortalVerifyBody is the phase 2 submission: the code received over SMS.
type PortalVerifyBody struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type PortalVerifyResponse struct {
	Succeeded bool     `json:"succeeded"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
}

// ConversationClaimKey is the context key under which parsed conversation
// claims are stored by the challenge-token middleware.
type ConversationClaimKey struct{}

// ConversationClaims links the phase 2 request to the conversation opened by
// phase 1. The claims carry the intent so the caller can be routed back to the
// correct entry point even when the server-side conversation is gone.
type ConversationClaims struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Username       string    `json:"username"`
	Intent         Intent    `json:"intent"`
	Aud            string    `json:"aud"`
	Issuer         string    `json:"iss"`
	jwt.RegisteredClaims
}
