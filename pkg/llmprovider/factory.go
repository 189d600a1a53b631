package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"omi-relay/config"
	"omi-relay/pkg/openai"
)

// Default base URLs for the OpenAI compatible backends we know about.
var defaultBaseURLs = map[string]string{
	"openai":     openai.DefaultBaseURL,
	"deepseek":   "https://api.deepseek.com/v1",
	"qwen":       "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"openrouter": "https://openrouter.ai/api/v1",
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped and reported in the returned warnings.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []string, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var warnings []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}
	return providers, warnings, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	name := strings.ToLower(cfg.Name)
	if name == "alibaba" {
		name = "qwen"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		def, ok := defaultBaseURLs[name]
		if !ok {
			return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
		}
		baseURL = def
	}

	timeout := openai.DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	client, err := openai.New(openai.Config{
		Name:       name,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, err
	}
	return NewOpenAIAdapter(client), nil
}
