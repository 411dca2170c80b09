// Package bitrix talks to the Bitrix24 REST API through an incoming webhook URL.
package bitrix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dephea/bitrix-task/internal/core/domain"
)

const (
	MethodTaskAdd        = "tasks.task.add"
	MethodTaskList       = "tasks.task.list"
	MethodTaskGet        = "tasks.task.get"
	MethodTaskUpdate     = "tasks.task.update"
	MethodTaskDelete     = "tasks.task.delete"
	MethodCommentAdd     = "task.commentitem.add"
	MethodCommentGetList = "task.commentitem.getlist"
	MethodServerTime     = "server.time"
)

var ErrMissingWebhookURL = errors.New("bitrix webhook url is not configured")

type Config struct {
	// WebhookURL is the incoming webhook base, e.g. https://example.bitrix24.ru/rest/1/secret.
	WebhookURL string
	// Timeout bounds a whole call. Zero leaves the call bound only by the request context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.WebhookURL), "/")
	if baseURL == "" {
		return nil, ErrMissingWebhookURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Call posts params as JSON to the given REST method and returns the raw response body.
// Transport failures, non-2xx answers and bodies carrying an "error" key are returned as
// *domain.RemoteCallError.
func (c *Client) Call(ctx context.Context, method string, params any) ([]byte, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, &domain.RemoteCallError{Method: method, Err: fmt.Errorf("marshal params: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.RemoteCallError{Method: method, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.RemoteCallError{Method: method, Err: fmt.Errorf("send request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteCallError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	zap.L().Debug("bitrix call",
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.RemoteCallError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Body:       body,
			Err:        errors.New(describeFailure(resp.StatusCode, body)),
		}
	}

	var apiErr providerError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return nil, &domain.RemoteCallError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Body:       body,
			Err:        errors.New(apiErr.message()),
		}
	}

	return body, nil
}

// Ping checks that the webhook answers at all.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, MethodServerTime, struct{}{})
	return err
}

func (e providerError) message() string {
	if e.ErrorDescription == "" {
		return e.Error
	}
	return e.Error + ": " + e.ErrorDescription
}

func describeFailure(statusCode int, body []byte) string {
	var apiErr providerError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return apiErr.message()
	}
	return http.StatusText(statusCode)
}
