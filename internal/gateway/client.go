package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/docmindhq/docmind/internal/config"
	"github.com/docmindhq/docmind/internal/domain"
	"go.uber.org/zap"
)

const apiVersion = "v1"

// Failure codes
const (
	CodeNetworkError = "NETWORK_ERROR"
)

// Client is the single point of contact with the external automation
// backend. Every outcome — HTTP success, HTTP error status, transport
// failure, malformed response — is normalized into a Result envelope;
// no error ever crosses the client boundary.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a gateway client from the static deployment-time
// configuration. The API key is attached to every request as-is.
func NewClient(cfg config.GatewayConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Chat sends one chat turn. req.SessionID is empty on the first turn and
// echoes the backend-assigned token on every turn after that.
func (c *Client) Chat(ctx context.Context, req domain.ChatRequest) domain.Result[domain.ChatPayload] {
	return call[domain.ChatPayload](ctx, c, http.MethodPost, "/chat", req)
}

// SyncNotion triggers a Notion content sync for an organization.
func (c *Client) SyncNotion(ctx context.Context, req domain.SyncRequest) domain.Result[domain.SyncPayload] {
	return call[domain.SyncPayload](ctx, c, http.MethodPost, "/sync/notion", req)
}

// SyncStatus reports the last sync state for an organization.
func (c *Client) SyncStatus(ctx context.Context, organizationID string) domain.Result[domain.SyncStatusPayload] {
	return call[domain.SyncStatusPayload](ctx, c, http.MethodGet, "/sync/status/"+organizationID, nil)
}

func call[T any](ctx context.Context, c *Client, method, endpoint string, body any) domain.Result[T] {
	url := fmt.Sprintf("%s/webhook/%s%s", c.baseURL, apiVersion, endpoint)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.Fail[T](CodeNetworkError, err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return domain.Fail[T](CodeNetworkError, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("gateway request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return domain.Fail[T](CodeNetworkError, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Fail[T](CodeNetworkError, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code := fmt.Sprintf("HTTP_%d", resp.StatusCode)
		message := http.StatusText(resp.StatusCode)
		if message == "" {
			message = resp.Status
		}

		var details map[string]any
		if err := json.Unmarshal(raw, &details); err == nil {
			if m, ok := details["message"].(string); ok && m != "" {
				message = m
			}
		}

		c.logger.Warn("gateway returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		return domain.FailDetails[T](code, message, details)
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		c.logger.Warn("gateway returned malformed response",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return domain.Fail[T](CodeNetworkError, err.Error())
	}

	return domain.Ok(data)
}
