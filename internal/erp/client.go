package erp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portal/internal/models"

	"github.com/go-resty/resty/v2"
)

// IEmployeeRecords resolves an employee identifier to the registered phone
// number held by the enterprise record system.
type IEmployeeRecords interface {
	GetRegisteredPhone(ctx context.Context, employeeID string) (string, error)
}

type employeeRecord struct {
	PrivateMobileNumber string `json:"privateMobileNumber"`
}

type Client struct {
	http *resty.Client
}

func NewClient(config models.RecordsConfiguration) *Client {
	client := resty.New().
		SetBaseURL(config.URL).
		SetHeader("api-key", config.APIKey).
		SetTimeout(15 * time.Second)

	return &Client{http: client}
}

func (c *Client) GetRegisteredPhone(ctx context.Context, employeeID string) (string, error) {
	var record employeeRecord

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&record).
		Get(employeeID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch employee record: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("employee record request returned status %d", resp.StatusCode())
	}

	if record.PrivateMobileNumber == "" {
		return "", fmt.Errorf("employee record for %s has no private mobile number", employeeID)
	}

	return NormalizePhone(record.PrivateMobileNumber), nil
}

// NormalizePhone reduces the free-text number held by the record system to
// its comparable form: the last two whitespace-separated tokens joined, with
// parenthesis characters stripped.
func NormalizePhone(raw string) string {
	tokens := strings.Fields(raw)
	if len(tokens) > 2 {
		tokens = tokens[len(tokens)-2:]
	}
	joined := strings.Join(tokens, "")
	return strings.NewReplacer("(", "", ")", "").Replace(joined)
}
