package sms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portal/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// UnknownGatewayError is the reason attached to gateway error codes absent
// from the mapping table (the gateway documents 4 and 8 but never defines
// them).
const UnknownGatewayError = "unknown gateway error"

// errorReasons maps the gateway's numeric error codes to their meanings.
var errorReasons = map[string]string{
	"1":  "invalid credential",
	"2":  "account in debit",
	"3":  "invalid action element",
	"5":  "xml error",
	"6":  "invalid originator element",
	"7":  "message id not found",
	"9":  "invalid date",
	"10": "sms not sent",
}

// DispatchError is a non-success response from the SMS gateway.
type DispatchError struct {
	Code   string
	Reason string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("sms dispatch failed: code %s (%s)", e.Code, e.Reason)
}

// IGateway dispatches a challenge code to a phone number.
type IGateway interface {
	Send(ctx context.Context, phone string, code string) error
}

// Gateway submits single text messages to the carrier's HTTP API. The API
// accepts one fixed-schema XML document and answers with either a message ID
// token or a bare numeric error code.
type Gateway struct {
	http   *resty.Client
	config models.SMSConfiguration
}

func NewGateway(config models.SMSConfiguration) *Gateway {
	client := resty.New().
		SetBaseURL(config.URL).
		SetTimeout(15 * time.Second)

	return &Gateway{http: client, config: config}
}

func (g *Gateway) Send(ctx context.Context, phone string, code string) error {
	payload := fmt.Sprintf(
		"<SingleTextSMS> <UserName>%s</UserName> <PassWord>%s</PassWord> <Action>0</Action> "+
			"<Mesgbody>OTP Reset/Unlock Code: %s</Mesgbody> <Numbers>%s</Numbers> "+
			"</SingleTextSMS>",
		g.config.Username, g.config.Password, code, phone,
	)

	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("")
	if err != nil {
		return fmt.Errorf("failed to reach sms gateway: %w", err)
	}

	body := strings.TrimSpace(resp.String())

	if strings.Contains(body, "ID") {
		zap.L().Info("Sent SMS",
			zap.String("phone", phone),
			zap.String("message_id", body),
		)
		return nil
	}

	reason, ok := errorReasons[body]
	if !ok {
		reason = UnknownGatewayError
	}

	zap.L().Warn("SMS gateway rejected message",
		zap.String("phone", phone),
		zap.String("code", body),
		zap.String("reason", reason),
	)

	return &DispatchError{Code: body, Reason: reason}
}
