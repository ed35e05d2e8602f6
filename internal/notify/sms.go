package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// SMSClient talks to the messaging gateway. With an empty base URL it
// degrades to a no-op.
type SMSClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

type smsRequest struct {
	PhoneNumbers []string `json:"phone_numbers"`
	Message      string   `json:"message"`
}

// NewSMSClient creates a new SMSClient
func NewSMSClient(baseURL string, log *zap.Logger) *SMSClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil
	if log != nil {
		client.Logger = zap.NewStdLog(log)
	}

	return &SMSClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Send delivers one message to the given phone numbers
func (c *SMSClient) Send(ctx context.Context, phoneNumbers []string, message string) error {
	if c.baseURL == "" || len(phoneNumbers) == 0 {
		return nil
	}

	body, err := json.Marshal(smsRequest{PhoneNumbers: phoneNumbers, Message: message})
	if err != nil {
		return fmt.Errorf("sms client: failed to marshal request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sms", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sms client: unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
