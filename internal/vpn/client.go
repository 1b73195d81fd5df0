package vpn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portal/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrUnreachable covers transport-level failures against the VPN management
// endpoint; the privileged action did not happen.
var ErrUnreachable = errors.New("vpn management system unreachable")

const unknownFailureMessage = "Unknown Failure! Contact Administrator"

// IClient executes the privileged action once a challenge is verified.
type IClient interface {
	Dispatch(ctx context.Context, username string, intent models.Intent) (models.ActionResult, error)
}

type apiMessage struct {
	Message string `json:"message"`
}

type apiResponse struct {
	Result struct {
		Info   []apiMessage `json:"info"`
		Errors []apiMessage `json:"errors"`
	} `json:"result"`
}

// Client talks to the VPN management system's user endpoint. The operation
// selector (unlock or reset) rides as a query parameter on a PUT to the
// username's resource.
type Client struct {
	http *resty.Client
}

func NewClient(config models.VPNConfiguration) *Client {
	client := resty.New().
		SetBaseURL(config.URL).
		SetHeader("Authorization", "Basic "+config.APIKey).
		SetTimeout(15 * time.Second)

	return &Client{http: client}
}

func (c *Client) Dispatch(
	ctx context.Context,
	username string,
	intent models.Intent,
) (models.ActionResult, error) {
	var parsed apiResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("operation", intent.Operation()).
		SetResult(&parsed).
		SetError(&parsed).
		Put(username)
	if err != nil {
		return models.ActionResult{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	message := extractMessage(resp.StatusCode(), parsed)
	severity := ClassifySeverity(message)

	zap.L().Info("VPN management response",
		zap.String("username", username),
		zap.String("operation", intent.Operation()),
		zap.Int("status", resp.StatusCode()),
		zap.String("message", message),
	)

	return models.ActionResult{
		Succeeded: severity == models.SeveritySuccess,
		Message:   message,
		Severity:  severity,
	}, nil
}

func extractMessage(status int, parsed apiResponse) string {
	switch status {
	case 200:
		if len(parsed.Result.Info) > 0 {
			return parsed.Result.Info[0].Message
		}
	case 400:
		if len(parsed.Result.Errors) > 0 {
			return parsed.Result.Errors[0].Message
		}
	}
	return unknownFailureMessage
}
