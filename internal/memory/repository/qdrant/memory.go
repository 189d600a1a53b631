package qdrant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"omi-relay/internal/memory"
	"omi-relay/internal/memory/repository"
	pkgLog "omi-relay/pkg/log"
	pkgQdrant "omi-relay/pkg/qdrant"
	"omi-relay/pkg/voyage"
)

var errEmptyEmbedding = errors.New("embedder returned no vectors")

// Payload keys stored with every point.
const (
	payloadUserID    = "user_id"
	payloadContent   = "content"
	payloadCategory  = "category"
	payloadTimestamp = "timestamp"
)

// VectorClient is the subset of pkg/qdrant the repository needs.
type VectorClient interface {
	EnsureCollection(ctx context.Context, req pkgQdrant.CreateCollectionRequest) (bool, error)
	UpsertPoints(ctx context.Context, collectionName string, req pkgQdrant.UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req pkgQdrant.SearchRequest) (*pkgQdrant.SearchResponse, error)
}

type implRepository struct {
	client         VectorClient
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
	now            func() time.Time
}

// New creates a new Qdrant backed memory repository.
func New(client VectorClient, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
		now:            time.Now,
	}
}

// EnsureCollection creates the collection on first use.
func (r *implRepository) EnsureCollection(ctx context.Context) (bool, error) {
	created, err := r.client.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to ensure collection %s: %w", r.collectionName, err)
	}
	if created {
		r.l.Infof(ctx, "qdrant repository: created collection %s (size=%d)", r.collectionName, r.vectorSize)
	}
	return created, nil
}

// Upsert embeds the content and stores it as a single point.
func (r *implRepository) Upsert(ctx context.Context, m memory.Memory) (memory.Memory, error) {
	vectors, err := r.embedder.Embed(ctx, []string{m.Content})
	if err == nil && len(vectors) == 0 {
		err = errEmptyEmbedding
	}
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embedding: %v", err)
		return memory.Memory{}, fmt.Errorf("failed to generate embedding: %w", err)
	}

	m.ID = PointID(m.UserID, m.Content)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.now().UTC()
	}

	point := pkgQdrant.Point{
		ID:     m.ID,
		Vector: vectors[0],
		Payload: map[string]interface{}{
			payloadUserID:    m.UserID,
			payloadContent:   m.Content,
			payloadCategory:  m.Category,
			payloadTimestamp: m.CreatedAt.Format(time.RFC3339),
		},
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{
		Points: []pkgQdrant.Point{point},
	}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert point: %v", err)
		return memory.Memory{}, fmt.Errorf("failed to upsert point: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: stored memory %s for user %s", m.ID, m.UserID)
	return m, nil
}

// Search embeds the query and returns the user's nearest memories, best first.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]memory.Memory, error) {
	vector, err := r.embedder.EmbedQuery(ctx, opt.Query)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       opt.Limit,
		WithPayload: true,
		Filter:      pkgQdrant.MatchKey(payloadUserID, opt.UserID),
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]memory.Memory, 0, len(resp.Result))
	for _, scored := range resp.Result {
		content, ok := scored.Payload[payloadContent].(string)
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: content missing in payload for point %v", scored.ID)
			continue
		}
		m := memory.Memory{
			ID:       scored.ID,
			UserID:   stringField(scored.Payload, payloadUserID),
			Content:  content,
			Category: stringField(scored.Payload, payloadCategory),
			Score:    scored.Score,
		}
		if ts, err := time.Parse(time.RFC3339, stringField(scored.Payload, payloadTimestamp)); err == nil {
			m.CreatedAt = ts
		}
		results = append(results, m)
	}

	r.l.Debugf(ctx, "qdrant repository: found %d memories for user %s", len(results), opt.UserID)
	return results, nil
}

// PointID derives a deterministic UUID v5 from the owner and the content,
// so saving the same memory twice overwrites one point.
func PointID(userID, content string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(userID+"\x00"+content)).String()
}

func stringField(payload map[string]interface{}, key string) string {
	s, _ := payload[key].(string)
	return s
}
