package omi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	pkgErrors "omi-relay/pkg/errors"
)

// SendNotification posts one notification. It makes exactly one attempt;
// any non-2xx answer is returned as an UpstreamError.
func (c *Client) SendNotification(ctx context.Context, uid, message string) error {
	if c.appID == "" {
		return pkgErrors.NewConfig("OMI_APP_ID")
	}
	if c.httpClient == nil {
		return pkgErrors.NewConfig("OMI_API_KEY")
	}
	if uid == "" {
		return pkgErrors.NewValidation("uid", "is required")
	}

	q := url.Values{}
	q.Set("uid", uid)
	q.Set("message", message)
	endpoint := fmt.Sprintf("%s/v2/integrations/%s/notification?%s", c.baseURL, url.PathEscape(c.appID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("omi: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return pkgErrors.NewNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return pkgErrors.NewUpstream(serviceName, resp.StatusCode, body)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
