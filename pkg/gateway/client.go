package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the OpenRouter API base.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// defaultTimeout is the per-call HTTP timeout applied when the caller's
// context carries no earlier deadline.
const defaultTimeout = 5 * time.Minute

// Client talks to the LLM gateway. It is safe for concurrent use; API keys
// are supplied per call, so one client serves all users.
type Client struct {
	baseURL    string
	httpClient *http.Client
	catalog    *catalogCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a gateway client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		catalog:    newCatalogCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends one chat completion call. User-role messages are rewritten
// into multimodal content arrays when attachments are present.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	body := ChatRequest{
		Model:    req.Model,
		Messages: encodeMessages(req.Messages, req.Attachments),
	}

	var resp ChatResponse
	if err := c.postJSON(ctx, "/chat/completions", req.APIKey, body, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return nil, &GatewayError{Message: "response contained no choices"}
	}

	return &Completion{
		Content: resp.Choices[0].Message.Content,
		Cost:    extractCost(&resp),
	}, nil
}

// ListModels fetches the gateway's model catalog.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]CatalogModel, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, &GatewayError{Message: fmt.Sprintf("create request: %v", err)}
	}
	setHeaders(httpReq, apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &GatewayError{Message: err.Error()}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, httpError(httpResp)
	}

	var catalog catalogResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&catalog); err != nil {
		return nil, &GatewayError{Message: fmt.Sprintf("decode catalog: %v", err)}
	}
	return catalog.Data, nil
}

// postJSON sends a JSON POST and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path, apiKey string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("marshal request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("create request: %v", err)}
	}
	setHeaders(httpReq, apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return httpError(httpResp)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return &GatewayError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func setHeaders(req *http.Request, apiKey string) {
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
}

func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &GatewayError{
		Status:  resp.StatusCode,
		Message: strings.TrimSpace(string(body)),
	}
}
