package omi

import (
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.omi.me"
	DefaultTimeout = 10 * time.Second

	serviceName = "omi"
)

// Config holds the notification API settings. Empty credentials are
// accepted here and reported when a notification is attempted.
type Config struct {
	AppID   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client sends notifications through the Omi integrations API.
type Client struct {
	appID      string
	baseURL    string
	httpClient *http.Client
}
