// Package notify holds the clients for the external delivery gateways. Both
// collaborators are best-effort: callers invoke them after commit and only
// log failures.
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

	"github.com/avc/studyhub-backend/internal/domain"
)

// PushClient talks to the push-notification gateway. With an empty base URL
// it degrades to a no-op so the rest of the system runs without a gateway.
type PushClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

type pushRequest struct {
	UserID int64               `json:"user_id"`
	Tokens []string            `json:"tokens"`
	Notice domain.Notification `json:"notification"`
}

type pushResponse struct {
	FailedTokens []string `json:"failed_tokens"`
}

// NewPushClient creates a new PushClient
func NewPushClient(baseURL string, log *zap.Logger) *PushClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil
	if log != nil {
		client.Logger = zap.NewStdLog(log)
	}

	return &PushClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Push delivers one notification to all of the user's devices and returns the
// tokens the gateway reported as dead
func (c *PushClient) Push(ctx context.Context, userID int64, tokens []string, n domain.Notification) ([]string, error) {
	if c.baseURL == "" || len(tokens) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(pushRequest{UserID: userID, Tokens: tokens, Notice: n})
	if err != nil {
		return nil, fmt.Errorf("push client: failed to marshal request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/push", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("push client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("push client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("push client: unexpected status code: %d", resp.StatusCode)
	}

	var pushResp pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResp); err != nil {
		return nil, fmt.Errorf("push client: failed to decode response: %w", err)
	}

	return pushResp.FailedTokens, nil
}
