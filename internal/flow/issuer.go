package flow

import (
	"context"
	"time"

	"portal/internal/audit"
	"portal/internal/helpers"
	"portal/internal/models"
	"portal/internal/session"
	"portal/internal/sms"

	"go.uber.org/zap"
)

// Issuer opens challenges: it generates a code, stores its hash on the
// conversation, and dispatches the plaintext over SMS. The hash is persisted
// before dispatch so a slow gateway can never race a fast verification.
type Issuer struct {
	Gateway  sms.IGateway
	Sessions session.IStore
	Audit    audit.ILogger

	now func() time.Time
}

func NewIssuer(gateway sms.IGateway, sessions session.IStore, auditLogger audit.ILogger) *Issuer {
	return &Issuer{
		Gateway:  gateway,
		Sessions: sessions,
		Audit:    auditLogger,
		now:      time.Now,
	}
}

// Issue attaches a fresh challenge to the conversation and sends the code to
// the conversation's phone number. A previously pending challenge is
// overwritten; only the newest code is ever accepted.
func (i *Issuer) Issue(ctx context.Context, conv *models.Conversation) error {
	code, err := helpers.GenerateChallengeCode()
	if err != nil {
		return err
	}

	hash, err := helpers.CreateHash(code)
	if err != nil {
		return err
	}

	conv.Challenge = &models.Challenge{
		HashedCode:     hash,
		IssuedAt:       i.now(),
		FailedAttempts: 0,
	}

	if err = i.Sessions.Set(ctx, conv); err != nil {
		return err
	}

	if err = i.Gateway.Send(ctx, conv.Phone, code); err != nil {
		i.record(conv, audit.ChallengeIssued, audit.OutcomeFailure, "SMS dispatch failed")
		return err
	}

	zap.L().Info("Challenge issued",
		zap.String("conversation_id", conv.ID.String()),
		zap.String("username", conv.Username),
	)

	i.record(conv, audit.ChallengeIssued, audit.OutcomeSuccess, "Challenge code sent over SMS")
	return nil
}

func (i *Issuer) record(conv *models.Conversation, action string, outcome string, message string) {
	entry := audit.Entry{
		Message:   message,
		Action:    action,
		Username:  conv.Username,
		Phone:     conv.Phone,
		Outcome:   outcome,
		Timestamp: i.now(),
	}
	if err := i.Audit.Send(entry); err != nil {
		zap.L().Error("Failed to write audit entry", zap.Error(err))
	}
}
