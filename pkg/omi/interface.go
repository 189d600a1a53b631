package omi

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// INotifier delivers a message to one Omi user.
// Implementations are safe for concurrent use.
type INotifier interface {
	SendNotification(ctx context.Context, uid, message string) error
}

// New creates a notification client. Requests carry the API key as a
// bearer token through an oauth2 static token source.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	var httpClient *http.Client
	if cfg.APIKey != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})
		httpClient = &http.Client{
			Transport: &oauth2.Transport{Source: src, Base: http.DefaultTransport},
			Timeout:   cfg.Timeout,
		}
	}

	return &Client{
		appID:      cfg.AppID,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}
