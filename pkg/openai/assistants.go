package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateThread opens an empty thread.
func (c *Client) CreateThread(ctx context.Context) (*Thread, error) {
	var thread Thread
	if err := c.do(ctx, http.MethodPost, "/threads", map[string]any{}, &thread, true); err != nil {
		return nil, err
	}
	return &thread, nil
}

// CreateMessage appends a message to the thread.
func (c *Client) CreateMessage(ctx context.Context, threadID string, req CreateMessageRequest) error {
	path := fmt.Sprintf("/threads/%s/messages", url.PathEscape(threadID))
	return c.do(ctx, http.MethodPost, path, req, nil, true)
}

// CreateRun starts the assistant on the thread.
func (c *Client) CreateRun(ctx context.Context, threadID string, req CreateRunRequest) (*Run, error) {
	path := fmt.Sprintf("/threads/%s/runs", url.PathEscape(threadID))
	var run Run
	if err := c.do(ctx, http.MethodPost, path, req, &run, true); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetRun fetches the current state of a run.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	path := fmt.Sprintf("/threads/%s/runs/%s", url.PathEscape(threadID), url.PathEscape(runID))
	var run Run
	if err := c.do(ctx, http.MethodGet, path, nil, &run, true); err != nil {
		return nil, err
	}
	return &run, nil
}

// SubmitToolOutputs resumes a run waiting on tool results.
func (c *Client) SubmitToolOutputs(ctx context.Context, threadID, runID string, req SubmitToolOutputsRequest) (*Run, error) {
	path := fmt.Sprintf("/threads/%s/runs/%s/submit_tool_outputs", url.PathEscape(threadID), url.PathEscape(runID))
	var run Run
	if err := c.do(ctx, http.MethodPost, path, req, &run, true); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListMessages returns the newest messages of the thread first.
func (c *Client) ListMessages(ctx context.Context, threadID string, limit int) (*MessageList, error) {
	if limit <= 0 {
		limit = 1
	}
	path := fmt.Sprintf("/threads/%s/messages?order=desc&limit=%d", url.PathEscape(threadID), limit)
	var list MessageList
	if err := c.do(ctx, http.MethodGet, path, nil, &list, true); err != nil {
		return nil, err
	}
	return &list, nil
}
