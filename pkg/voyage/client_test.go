package voyage_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "omi-relay/pkg/errors"
	"omi-relay/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var lastInputType, lastModel string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"bad key"}`))
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lastInputType = req.InputType
		lastModel = req.Model

		if req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`overloaded`))
			return
		}

		// answer in reverse order to exercise index placement
		var resp voyage.EmbedResponse
		for i := len(req.Input) - 1; i >= 0; i-- {
			resp.Data = append(resp.Data, voyage.EmbeddingData{
				Embedding: []float32{float32(i), 0.5},
				Index:     i,
			})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := voyage.New("test-voyage-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.WithBaseURL(ts.URL).WithModel("custom-model")
	ctx := context.Background()

	t.Run("Embed keeps input order", func(t *testing.T) {
		out, err := client.Embed(ctx, []string{"first", "second"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0][0] != 0 || out[1][0] != 1 {
			t.Errorf("embeddings = %v", out)
		}
		if lastInputType != voyage.InputTypeDocument || lastModel != "custom-model" {
			t.Errorf("input_type = %q model = %q", lastInputType, lastModel)
		}
	})

	t.Run("EmbedQuery sends query input type", func(t *testing.T) {
		vec, err := client.EmbedQuery(ctx, "first")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vec) != 2 {
			t.Errorf("vector = %v", vec)
		}
		if lastInputType != voyage.InputTypeQuery {
			t.Errorf("input_type = %q", lastInputType)
		}
	})

	t.Run("Upstream error", func(t *testing.T) {
		_, err := client.Embed(ctx, []string{"cause_500"})
		ue, ok := pkgErrors.AsUpstream(err)
		if !ok || ue.StatusCode != 500 || ue.Body != "overloaded" {
			t.Fatalf("err = %v, want 500 UpstreamError", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, _ := voyage.New("wrong")
		bad.WithBaseURL(ts.URL)
		_, err := bad.Embed(ctx, []string{"x", "y"})
		if ue, ok := pkgErrors.AsUpstream(err); !ok || ue.StatusCode != 401 {
			t.Fatalf("err = %v, want 401 UpstreamError", err)
		}
	})

	t.Run("No input", func(t *testing.T) {
		if _, err := client.Embed(ctx, nil); !errors.Is(err, voyage.ErrNoInput) {
			t.Fatalf("err = %v, want ErrNoInput", err)
		}
	})

	t.Run("Missing key", func(t *testing.T) {
		_, err := voyage.New("")
		if ce, ok := pkgErrors.AsConfig(err); !ok || ce.Key != "VOYAGE_API_KEY" {
			t.Fatalf("err = %v, want ConfigError VOYAGE_API_KEY", err)
		}
	})
}
