package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgErrors "omi-relay/pkg/errors"
)

// ErrCollectionNotFound is returned by GetCollection on a 404.
var ErrCollectionNotFound = errors.New("qdrant: collection not found")

// NewClient creates a new Qdrant client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, pkgErrors.NewConfig("QDRANT_URL")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// GetCollection returns collection info, or ErrCollectionNotFound.
func (c *Client) GetCollection(ctx context.Context, name string) (*CollectionInfo, error) {
	var out collectionInfoResponse
	err := c.do(ctx, http.MethodGet, "/collections/"+url.PathEscape(name), nil, &out)
	if ue, ok := pkgErrors.AsUpstream(err); ok && ue.StatusCode == http.StatusNotFound {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out.Result, nil
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	return c.do(ctx, http.MethodPut, "/collections/"+url.PathEscape(req.Name), req, nil)
}

// EnsureCollection creates the collection when it does not exist yet.
// It reports whether a collection was created.
func (c *Client) EnsureCollection(ctx context.Context, req CreateCollectionRequest) (bool, error) {
	_, err := c.GetCollection(ctx, req.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrCollectionNotFound) {
		return false, err
	}
	if err := c.CreateCollection(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

// UpsertPoints inserts or updates points in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	path := fmt.Sprintf("/collections/%s/points?wait=true", url.PathEscape(collectionName))
	return c.do(ctx, http.MethodPut, path, req, nil)
}

// SearchPoints performs similarity search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	path := fmt.Sprintf("/collections/%s/points/search", url.PathEscape(collectionName))
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	path := fmt.Sprintf("/collections/%s/points/delete", url.PathEscape(collectionName))
	return c.do(ctx, http.MethodPost, path, DeletePointsRequest{Points: ids}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("qdrant: failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("qdrant: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return pkgErrors.NewNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("qdrant: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return pkgErrors.NewUpstream(serviceName, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("qdrant: failed to decode response: %w", err)
	}
	return nil
}
