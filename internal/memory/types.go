package memory

import "time"

const (
	DefaultCategory = "general"
	DefaultTopK     = 3
	MaxSearchLimit  = 20
)

// Memory is one remembered piece of text owned by a user.
type Memory struct {
	ID        string
	UserID    string
	Content   string
	Category  string
	CreatedAt time.Time
	Score     float64 // similarity, set on search results only
}

// --- UseCase Inputs ---

type SaveInput struct {
	UserID   string
	Content  string
	Category string
}

type SearchInput struct {
	UserID string
	Query  string
	Limit  int
}

// --- UseCase Outputs ---

type SaveOutput struct {
	Memory Memory
}

type SearchOutput struct {
	Memories []Memory
}
