package llmprovider

import (
	"errors"
	"testing"

	"omi-relay/config"
)

func TestInitializeProviders(t *testing.T) {
	t.Run("sorted by priority and disabled skipped", func(t *testing.T) {
		providers, warnings, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k2", Model: "deepseek-chat"},
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "k1"},
				{Name: "qwen", Enabled: false, Priority: 3, APIKey: "k3"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("warnings = %v", warnings)
		}
		if len(providers) != 2 || providers[0].Name() != "openai" || providers[1].Name() != "deepseek" {
			t.Fatalf("providers = %v", providers)
		}
	})

	t.Run("missing key becomes warning", func(t *testing.T) {
		providers, warnings, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1},
				{Name: "openrouter", Enabled: true, Priority: 2, APIKey: "k"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 1 || len(warnings) != 1 {
			t.Errorf("providers = %d warnings = %d, want 1/1", len(providers), len(warnings))
		}
	})

	t.Run("unknown provider without base url", func(t *testing.T) {
		_, _, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "mystery", Enabled: true, APIKey: "k"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("none enabled", func(t *testing.T) {
		_, _, err := InitializeProviders(&config.LLMConfig{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("err = %v, want ErrNoProvidersConfigured", err)
		}
	})
}
