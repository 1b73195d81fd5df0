package flow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portal/internal/audit"
	"portal/internal/configuration"
	apierrors "portal/internal/errors"
	"portal/internal/helpers"
	"portal/internal/identity"
	"portal/internal/models"
	"portal/internal/notifier"
	"portal/internal/session"
	"portal/internal/sms"
	"portal/internal/vpn"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IIdentityVerifier cross-checks a claimed identity against the authoritative
// sources.
type IIdentityVerifier interface {
	Verify(ctx context.Context, username string, claimedPhone string) (bool, error)
}

// ILimiter enforces the per-phone daily SMS quota.
type ILimiter interface {
	CheckAndRecord(ctx context.Context, phone string) (bool, error)
}

// Controller drives the two-phase verification workflow: identity submission
// opens a conversation and issues a challenge; code submission evaluates the
// challenge and dispatches the privileged action.
type Controller struct {
	Identity IIdentityVerifier
	Limiter  ILimiter
	Issuer   *Issuer
	Verifier *Verifier
	Sessions session.IStore
	VPN      vpn.IClient
	Audit    audit.ILogger
	Notifier notifier.INotifier

	JWTSecret string
}

// SubmitIdentity is phase 1. On success the caller receives a signed token
// binding it to the opened conversation; everything sensitive stays
// server-side.
func (c *Controller) SubmitIdentity(
	ctx context.Context,
	body models.PortalRequestBody,
) (models.PortalRequestResponse, error) {
	username := identity.NormalizeUsername(body.Username)

	verified, err := c.Identity.Verify(ctx, body.Username, body.PhoneNumber)
	if err != nil {
		zap.L().Error("Identity verification failed", zap.Error(err))
		code := apierrors.ErrRecordLookupFailed
		message := "Employee record lookup failed"
		if errors.Is(err, identity.ErrDirectory) {
			code = apierrors.ErrDirectoryUnavailable
			message = "Directory lookup failed"
		}
		c.record(username, body.PhoneNumber, audit.UpstreamFailure, audit.OutcomeFailure, message)
		return models.PortalRequestResponse{}, apierrors.NewAPIError(http.StatusBadGateway, code)
	}
	if !verified {
		c.record(username, body.PhoneNumber, audit.IdentityVerified, audit.OutcomeFailure,
			"Claimed phone number does not match the registered one")
		return models.PortalRequestResponse{},
			apierrors.NewAPIError(http.StatusUnauthorized, apierrors.ErrIdentityMismatch)
	}

	c.record(username, body.PhoneNumber, audit.IdentityVerified, audit.OutcomeSuccess,
		"Identity verified against directory and records")

	// Fail closed: when quota state cannot be read, no SMS goes out.
	underQuota, err := c.Limiter.CheckAndRecord(ctx, body.PhoneNumber)
	if err != nil {
		zap.L().Error("Rate limit check failed", zap.Error(err))
		c.record(username, body.PhoneNumber, audit.UpstreamFailure, audit.OutcomeFailure,
			"Quota state unreadable")
		return models.PortalRequestResponse{},
			apierrors.NewAPIError(http.StatusServiceUnavailable, apierrors.ErrServiceUnavailable)
	}
	if !underQuota {
		c.record(username, body.PhoneNumber, audit.RateLimitHit, audit.OutcomeFailure,
			"Daily SMS quota exceeded")
		c.notify("Daily SMS quota exceeded",
			fmt.Sprintf("User %s hit the daily SMS quota for phone number %s.",
				username, body.PhoneNumber))
		return models.PortalRequestResponse{},
			apierrors.NewAPIError(http.StatusTooManyRequests, apierrors.ErrRateLimitExceeded)
	}

	conv := &models.Conversation{
		ID:       uuid.New(),
		Username: username,
		Phone:    body.PhoneNumber,
		Intent:   body.Intent,
	}

	if err = c.Issuer.Issue(ctx, conv); err != nil {
		var dispatchErr *sms.DispatchError
		if errors.As(err, &dispatchErr) && dispatchErr.Reason == sms.UnknownGatewayError {
			c.notify("SMS gateway returned an unmapped error",
				fmt.Sprintf("Gateway answered with code %s while sending to %s.",
					dispatchErr.Code, body.PhoneNumber))
		}
		return models.PortalRequestResponse{},
			apierrors.NewAPIError(http.StatusBadGateway, apierrors.ErrSMSDispatchFailed)
	}

	token, err := helpers.NewChallengeToken(c.JWTSecret, conv)
	if err != nil {
		zap.L().Error("Failed to sign challenge token", zap.Error(err))
		return models.PortalRequestResponse{},
			apierrors.NewAPIError(http.StatusInternalServerError, apierrors.ErrInternalServerError)
	}

	return models.PortalRequestResponse{
		ChallengeToken:   token,
		ExpiresInSeconds: int(configuration.ChallengeValidity.Seconds()),
	}, nil
}

// SubmitCode is phase 2. The claims were validated by the challenge-token
// middleware; the conversation they point at may still be gone or expired.
func (c *Controller) SubmitCode(
	ctx context.Context,
	claims models.ConversationClaims,
	body models.PortalVerifyBody,
) (models.PortalVerifyResponse, error) {
	redirect := redirectFor(claims.Intent)

	conv, err := c.Sessions.Get(ctx, claims.ConversationID)
	if err != nil {
		if errors.Is(err, session.ErrConversationNotFound) {
			return models.PortalVerifyResponse{}, apierrors.NewRedirectError(
				http.StatusConflict, apierrors.ErrNoPendingChallenge, redirect)
		}
		zap.L().Error("Failed to load conversation", zap.Error(err))
		c.record(claims.Username, "", audit.UpstreamFailure, audit.OutcomeFailure,
			"Conversation store unreadable")
		return models.PortalVerifyResponse{},
			apierrors.NewAPIError(http.StatusServiceUnavailable, apierrors.ErrServiceUnavailable)
	}

	switch c.Verifier.Evaluate(conv, body.Code) {
	case OutcomeNoPendingChallenge:
		return models.PortalVerifyResponse{}, apierrors.NewRedirectError(
			http.StatusConflict, apierrors.ErrNoPendingChallenge, redirect)

	case OutcomeExpired:
		if err = c.Sessions.Set(ctx, conv); err != nil {
			zap.L().Error("Failed to persist conversation", zap.Error(err))
		}
		c.record(conv.Username, conv.Phone, audit.ChallengeExpired, audit.OutcomeFailure,
			"Challenge code submitted after the validity window")
		return models.PortalVerifyResponse{}, apierrors.NewRedirectError(
			http.StatusGone, apierrors.ErrChallengeExpired, redirect)

	case OutcomeMismatch:
		if conv.Challenge.FailedAttempts >= configuration.ChallengeMaxFailedAttempts {
			if err = c.Sessions.Clear(ctx, conv.ID); err != nil {
				zap.L().Error("Failed to clear conversation", zap.Error(err))
			}
			c.record(conv.Username, conv.Phone, audit.ChallengeVerified, audit.OutcomeFailure,
				"Challenge destroyed after too many wrong codes")
			return models.PortalVerifyResponse{}, apierrors.NewRedirectError(
				http.StatusForbidden, apierrors.ErrChallengeLocked, redirect)
		}
		if err = c.Sessions.Set(ctx, conv); err != nil {
			zap.L().Error("Failed to persist conversation", zap.Error(err))
		}
		c.record(conv.Username, conv.Phone, audit.ChallengeVerified, audit.OutcomeFailure,
			"Wrong challenge code submitted")
		return models.PortalVerifyResponse{},
			apierrors.NewAPIError(http.StatusUnauthorized, apierrors.ErrWrongCode)
	}

	if err = c.Sessions.Clear(ctx, conv.ID); err != nil {
		zap.L().Error("Failed to clear conversation", zap.Error(err))
	}
	c.record(conv.Username, conv.Phone, audit.ChallengeVerified, audit.OutcomeSuccess,
		"Challenge code verified")

	result, err := c.VPN.Dispatch(ctx, conv.Username, conv.Intent)
	if err != nil {
		zap.L().Error("VPN dispatch failed", zap.Error(err))
		c.record(conv.Username, conv.Phone, audit.ActionDispatched, audit.OutcomeFailure,
			"VPN management system unreachable")
		return models.PortalVerifyResponse{},
			apierrors.NewAPIError(http.StatusBadGateway, apierrors.ErrVPNUnreachable)
	}

	outcome := audit.OutcomeSuccess
	if !result.Succeeded {
		outcome = audit.OutcomeFailure
	}
	c.record(conv.Username, conv.Phone, audit.ActionDispatched, outcome, result.Message)

	return models.PortalVerifyResponse{
		Succeeded: result.Succeeded,
		Message:   result.Message,
		Severity:  result.Severity,
	}, nil
}

func redirectFor(intent models.Intent) string {
	if intent == models.IntentReset {
		return configuration.RedirectReset
	}
	return configuration.RedirectUnlock
}

func (c *Controller) record(username, phone, action, outcome, message string) {
	entry := audit.Entry{
		Message:   message,
		Action:    action,
		Username:  username,
		Phone:     phone,
		Outcome:   outcome,
		Timestamp: time.Now(),
	}
	if err := c.Audit.Send(entry); err != nil {
		zap.L().Error("Failed to write audit entry", zap.Error(err))
	}
}

func (c *Controller) notify(subject string, body string) {
	if c.Notifier == nil {
		return
	}
	if err := c.Notifier.Notify(subject, body); err != nil {
		zap.L().Error("Failed to send operator notification", zap.Error(err))
	}
}
