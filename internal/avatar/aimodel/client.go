// Package aimodel calls the remote image-generation service that produces
// photographic ID portraits. It speaks the generation API over HTTP and
// classifies every failure into one of the chain's failure classes, so the
// fallback machine can decide what a response means without inspecting
// transport details.
package aimodel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"shenfen/internal/avatar"
)

const (
	defaultTimeout = 30 * time.Second
	defaultModelID = "doubao-seedream-3-0-t2i-250415"
)

// Client implements avatar.AIBackend against the generation service.
type Client struct {
	baseURL    string
	apiKey     string
	modelID    string
	timeout    time.Duration
	httpClient *http.Client
}

var _ avatar.AIBackend = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets the service base URL, without a trailing slash.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithAPIKey sets the bearer token.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithModelID selects the generation model.
func WithModelID(id string) Option {
	return func(c *Client) {
		c.modelID = id
	}
}

// WithTimeout bounds each generation call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a generation client.
func New(opts ...Option) *Client {
	c := &Client{
		modelID: defaultModelID,
		timeout: defaultTimeout,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// generateRequest is the request body for image generation.
type generateRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	Size      string `json:"size"`
	Seed      int64  `json:"seed"`
	Watermark bool   `json:"watermark"`
}

// generateResponse covers the three payload shapes the service emits.
type generateResponse struct {
	Data   []imageItem  `json:"data"`
	Output []outputItem `json:"output"`
	Error  *apiError    `json:"error"`
}

type imageItem struct {
	URL         string `json:"url"`
	ImageBase64 string `json:"image_base64"`
}

type outputItem struct {
	Content []contentItem `json:"content"`
}

type contentItem struct {
	Type        string `json:"type"`
	ImageBase64 string `json:"image_base64"`
	ImageURL    string `json:"image_url"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Generate requests one portrait and returns the raw image bytes. The
// caller normalizes them; this method only extracts and classifies.
func (c *Client) Generate(ctx context.Context, req avatar.Request) ([]byte, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.modelID,
		Prompt: buildPrompt(req),
		Size:   fmt.Sprintf("%dx%d", req.Width, req.Height),
		Seed:   req.Seed,
	})
	if err != nil {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureInternal, "failed to marshal request", err)
	}

	url := fmt.Sprintf("%s/images/generations", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureInternal, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureTimeout, "request timeout", err)
		}
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureUnavailable, "failed to execute request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureTimeout, "response read timeout", err)
		}
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureInternal, "failed to read response body", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to parse
	case http.StatusBadRequest:
		var gr generateResponse
		if json.Unmarshal(respBody, &gr) == nil && gr.Error != nil {
			if isFilterCode(gr.Error.Code) {
				return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureFiltered, gr.Error.Message, nil)
			}
			return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, gr.Error.Message, nil)
		}
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "bad request", nil)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureUnavailable, "authentication failed", nil)
	case http.StatusTooManyRequests:
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureUnavailable, "rate limited", nil)
	default:
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureUnavailable,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "failed to parse response", err)
	}
	return c.extractImage(ctx, &gr)
}

// extractImage pulls image bytes out of whichever payload shape the service
// used. An explicitly empty data list is the content-filter signal and is
// never treated as success.
func (c *Client) extractImage(ctx context.Context, gr *generateResponse) ([]byte, error) {
	if gr.Error != nil {
		if isFilterCode(gr.Error.Code) {
			return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureFiltered, gr.Error.Message, nil)
		}
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, gr.Error.Message, nil)
	}

	if gr.Data != nil {
		if len(gr.Data) == 0 {
			return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureFiltered, "empty image list", nil)
		}
		item := gr.Data[0]
		if item.ImageBase64 != "" {
			return decodeImage(item.ImageBase64)
		}
		if item.URL != "" {
			return c.fetchImage(ctx, item.URL)
		}
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "image item carries no payload", nil)
	}

	for _, out := range gr.Output {
		for _, content := range out.Content {
			if content.Type != "image" {
				continue
			}
			if content.ImageBase64 != "" {
				return decodeImage(content.ImageBase64)
			}
			if content.ImageURL != "" {
				return c.fetchImage(ctx, content.ImageURL)
			}
		}
	}
	return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "no image in response", nil)
}

// fetchImage follows a signed image URL returned by the service.
func (c *Client) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureInternal, "failed to create image request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureTimeout, "image fetch timeout", err)
		}
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureUnavailable, "failed to fetch image", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload,
			fmt.Sprintf("image fetch returned status %d", resp.StatusCode), nil)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "failed to read image body", err)
	}
	if len(data) == 0 {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "image fetch returned empty body", nil)
	}
	return data, nil
}

func decodeImage(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, avatar.NewBackendError(avatar.BackendAIModel, avatar.FailureBadPayload, "failed to decode base64 image", err)
	}
	return data, nil
}

// isTimeout classifies both context deadlines and the client's own timeout.
func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// isFilterCode reports whether an error code names the content filter.
func isFilterCode(code string) bool {
	lower := strings.ToLower(code)
	return lower == "content_filter" || strings.Contains(lower, "sensitive")
}
