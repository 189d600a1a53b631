package errors_test

import (
	"fmt"
	"strings"
	"testing"

	pkgErrors "omi-relay/pkg/errors"
)

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	t.Run("Upstream", func(t *testing.T) {
		err := fmt.Errorf("notify: %w", pkgErrors.NewUpstream("omi", 401, []byte(`{"detail":"bad key"}`)))
		up, ok := pkgErrors.AsUpstream(err)
		if !ok {
			t.Fatalf("expected UpstreamError in chain")
		}
		if up.StatusCode != 401 || up.Service != "omi" || !strings.Contains(up.Body, "bad key") {
			t.Errorf("unexpected upstream error: %+v", up)
		}
	})

	t.Run("Network", func(t *testing.T) {
		err := fmt.Errorf("wrap: %w", pkgErrors.NewNetwork("openai", fmt.Errorf("dial tcp: refused")))
		ne, ok := pkgErrors.AsNetwork(err)
		if !ok || ne.Service != "openai" {
			t.Fatalf("expected NetworkError, got %v", err)
		}
		if !strings.Contains(err.Error(), "network error contacting openai") {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("Config", func(t *testing.T) {
		err := pkgErrors.NewConfig("OMI_API_KEY")
		if err.Error() != "OMI_API_KEY not set" {
			t.Errorf("unexpected message: %s", err.Error())
		}
		if _, ok := pkgErrors.AsConfig(fmt.Errorf("x: %w", err)); !ok {
			t.Errorf("expected ConfigError in chain")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		err := pkgErrors.NewValidation("session_id", "is required")
		if err.Error() != "session_id: is required" {
			t.Errorf("unexpected message: %s", err.Error())
		}
		if _, ok := pkgErrors.AsUpstream(err); ok {
			t.Errorf("validation error must not match upstream")
		}
	})
}
