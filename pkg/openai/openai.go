package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	pkgErrors "omi-relay/pkg/errors"
)

// CreateChatCompletion sends a request to POST /chat/completions.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	var result ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat/completions", req, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// Name returns the provider label.
func (c *Client) Name() string {
	return c.name
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// do executes a JSON request and decodes the JSON response into out.
// Non-2xx answers become UpstreamError, transport failures NetworkError.
func (c *Client) do(ctx context.Context, method, path string, in, out any, beta bool) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", c.name, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", c.name, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if beta {
		httpReq.Header.Set("OpenAI-Beta", assistantsBetaHeader)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return pkgErrors.NewNetwork(c.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", c.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return pkgErrors.NewUpstream(c.name, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", c.name, err)
	}
	return nil
}
