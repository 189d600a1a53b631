package websearch

import "net/http"

const (
	DefaultMaxResults = 3

	// Custom Search caps num at 10 per request.
	maxResultsCap = 10

	serviceName = "websearch"
)

// Config holds Google Programmable Search settings.
type Config struct {
	APIKey     string
	EngineID   string
	MaxResults int
	Endpoint   string // optional override of the API base URL
	HTTPClient *http.Client
}

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
