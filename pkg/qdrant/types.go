package qdrant

import "net/http"

const serviceName = "qdrant"

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string // optional, sent as the api-key header
	HTTPClient *http.Client
}

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // Vector dimension (1024 for voyage-3)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// CollectionInfo is the subset of GET /collections/{name} we read.
type CollectionInfo struct {
	Status      string `json:"status"`
	PointsCount int    `json:"points_count"`
}

type collectionInfoResponse struct {
	Result CollectionInfo `json:"result"`
}

// Point represents a vector with payload.
// Qdrant requires the ID to be a UUID or uint64.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for similarity search.
type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

// Filter restricts a search to points whose payload matches every condition.
type Filter struct {
	Must []Condition `json:"must"`
}

// Condition is a payload key match.
type Condition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

// Match holds the exact value a payload key must have.
type Match struct {
	Value interface{} `json:"value"`
}

// MatchKey builds a filter with a single exact-match condition.
func MatchKey(key string, value interface{}) *Filter {
	return &Filter{Must: []Condition{{Key: key, Match: Match{Value: value}}}}
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}
