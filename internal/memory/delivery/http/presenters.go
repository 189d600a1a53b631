package http

import (
	"time"

	"omi-relay/internal/memory"
)

// --- Request DTOs ---

type saveReq struct {
	UserID   string `json:"user_id"  binding:"required"`
	Content  string `json:"content"  binding:"required,max=4000"`
	Category string `json:"category" binding:"max=64"`
}

func (r saveReq) toInput() memory.SaveInput {
	return memory.SaveInput{
		UserID:   r.UserID,
		Content:  r.Content,
		Category: r.Category,
	}
}

type searchReq struct {
	UserID string `form:"user_id" binding:"required"`
	Query  string `form:"q"       binding:"required"`
	Limit  int    `form:"limit"   binding:"min=0"`
}

func (r searchReq) toInput() memory.SearchInput {
	return memory.SearchInput{
		UserID: r.UserID,
		Query:  r.Query,
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type memoryResp struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Score     float64   `json:"score,omitempty"`
}

func newMemoryResp(m memory.Memory) memoryResp {
	return memoryResp{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		Score:     m.Score,
	}
}

type saveResp struct {
	Memory memoryResp `json:"memory"`
}

func (h *handler) newSaveResp(out memory.SaveOutput) saveResp {
	return saveResp{Memory: newMemoryResp(out.Memory)}
}

type searchResp struct {
	Memories []memoryResp `json:"memories"`
	Count    int          `json:"count"`
}

func (h *handler) newSearchResp(out memory.SearchOutput) searchResp {
	items := make([]memoryResp, len(out.Memories))
	for i, m := range out.Memories {
		items[i] = newMemoryResp(m)
	}
	return searchResp{Memories: items, Count: len(items)}
}
