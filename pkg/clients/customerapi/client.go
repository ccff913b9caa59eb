package customerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"solar-lead-webhook/pkg/logger"
	"solar-lead-webhook/pkg/models"
)

// Client defines the interface for delivering leads to the customer API
type Client interface {
	SendLead(ctx context.Context, payload models.LeadPayload) error
}

type clientImpl struct {
	url     string
	token   string
	timeout time.Duration
}

// NewClient creates a new customer API client
func NewClient(url, token string, timeout time.Duration) Client {
	return &clientImpl{
		url:     url,
		token:   token,
		timeout: timeout,
	}
}

func (c *clientImpl) SendLead(ctx context.Context, payload models.LeadPayload) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication and content type headers
	req.Header.Add("Authorization", "Bearer "+c.token)
	req.Header.Add("Content-Type", "application/json")

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending lead: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logger.GetLogger().Error("Customer API error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("error from customer API: status %d: %s", resp.StatusCode, string(body))
	}

	logger.GetLogger().Info("Customer was successfully created")
	return nil
}
