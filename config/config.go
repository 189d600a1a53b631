package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Metrics    MetricsConfig

	// Relay
	Trigger      TriggerConfig
	Conversation ConversationConfig
	RateLimit    RateLimitConfig
	Webhook      WebhookConfig
	Omi          OmiConfig

	// Completion
	LLM        LLMConfig
	Completion CompletionConfig
	Assistant  AssistantConfig
	WebSearch  WebSearchConfig

	// Memory store
	Memory MemoryConfig
	Qdrant QdrantConfig
	Voyage VoyageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// TriggerConfig selects wake phrases, help keywords and matching policies.
// From the environment, list entries are separated by "|" because the
// phrases themselves contain commas.
type TriggerConfig struct {
	WakePhrases  []string
	HelpKeywords []string
	MatchPolicy  string
	Extraction   string
}

type ConversationConfig struct {
	MaxTurns    int
	MaxSessions int
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

type WebhookConfig struct {
	Secret     string
	AllowedIPs []string
}

type OmiConfig struct {
	AppID   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain

	// Sampling parameters shared by every provider.
	MaxTokens    int     `yaml:"max_tokens"`
	Temperature  float64 `yaml:"temperature"`
	SystemPrompt string  `yaml:"system_prompt"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type CompletionConfig struct {
	MaxToolSteps int
}

type AssistantConfig struct {
	Enabled          bool
	APIKey           string
	AssistantID      string
	BaseURL          string
	PollInitialDelay time.Duration
	PollMaxDelay     time.Duration
	PollMaxAttempts  int
}

type WebSearchConfig struct {
	Enabled    bool
	APIKey     string
	EngineID   string
	MaxResults int
}

type MemoryConfig struct {
	Enabled bool
	TopK    int
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Missing credentials are not an error here; they surface when used.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = getList("http_server.trusted_proxies", ",")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")

	// Relay
	cfg.Trigger.WakePhrases = getList("trigger.wake_phrases", "|")
	cfg.Trigger.HelpKeywords = getList("trigger.help_keywords", "|")
	cfg.Trigger.MatchPolicy = viper.GetString("trigger.match_policy")
	cfg.Trigger.Extraction = viper.GetString("trigger.extraction")

	cfg.Conversation.MaxTurns = viper.GetInt("conversation.max_turns")
	cfg.Conversation.MaxSessions = viper.GetInt("conversation.max_sessions")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.AllowedIPs = getList("webhook.allowed_ips", ",")

	cfg.Omi.AppID = viper.GetString("omi.app_id")
	cfg.Omi.APIKey = viper.GetString("omi.api_key")
	cfg.Omi.BaseURL = viper.GetString("omi.base_url")
	cfg.Omi.Timeout = viper.GetDuration("omi.timeout")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.SystemPrompt = viper.GetString("llm.system_prompt")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section, fall back to a single OpenAI provider
	// driven by OPENAI_API_KEY / OPENAI_MODEL.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "openai",
			Enabled:  true,
			Priority: 1,
			APIKey:   viper.GetString("openai.api_key"),
			BaseURL:  viper.GetString("openai.base_url"),
			Model:    viper.GetString("openai.model"),
			Timeout:  viper.GetString("openai.timeout"),
		}}
	}

	cfg.Completion.MaxToolSteps = viper.GetInt("completion.max_tool_steps")

	cfg.Assistant.Enabled = viper.GetBool("assistant.enabled")
	cfg.Assistant.APIKey = viper.GetString("assistant.api_key")
	if cfg.Assistant.APIKey == "" {
		cfg.Assistant.APIKey = viper.GetString("openai.api_key")
	}
	cfg.Assistant.AssistantID = viper.GetString("assistant.assistant_id")
	cfg.Assistant.BaseURL = viper.GetString("assistant.base_url")
	cfg.Assistant.PollInitialDelay = viper.GetDuration("assistant.poll_initial_delay")
	cfg.Assistant.PollMaxDelay = viper.GetDuration("assistant.poll_max_delay")
	cfg.Assistant.PollMaxAttempts = viper.GetInt("assistant.poll_max_attempts")

	cfg.WebSearch.Enabled = viper.GetBool("web_search.enabled")
	cfg.WebSearch.APIKey = viper.GetString("web_search.api_key")
	cfg.WebSearch.EngineID = viper.GetString("web_search.engine_id")
	cfg.WebSearch.MaxResults = viper.GetInt("web_search.max_results")

	// Memory store
	cfg.Memory.Enabled = viper.GetBool("memory.enabled")
	cfg.Memory.TopK = viper.GetInt("memory.top_k")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.namespace", "omi_relay")

	// Relay
	viper.SetDefault("trigger.match_policy", "word_boundary")
	viper.SetDefault("trigger.extraction", "segment")
	viper.SetDefault("conversation.max_turns", 5)
	viper.SetDefault("conversation.max_sessions", 10000)
	viper.SetDefault("rate_limit.requests_per_min", 20)
	viper.SetDefault("omi.base_url", "https://api.omi.me")
	viper.SetDefault("omi.timeout", "10s")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
	viper.SetDefault("llm.max_tokens", 300)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("completion.max_tool_steps", 3)

	viper.SetDefault("assistant.enabled", false)
	viper.SetDefault("assistant.poll_initial_delay", "500ms")
	viper.SetDefault("assistant.poll_max_delay", "4s")
	viper.SetDefault("assistant.poll_max_attempts", 30)

	viper.SetDefault("web_search.enabled", false)
	viper.SetDefault("web_search.max_results", 3)

	// Memory defaults
	viper.SetDefault("memory.enabled", false)
	viper.SetDefault("memory.top_k", 3)
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "omi_memories")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("voyage.model", "voyage-3")
}

// Warnings lists problems with the provider setup that do not stop startup.
func (c LLMConfig) Warnings() []string {
	var warnings []string
	enabledCount := 0
	priorityMap := make(map[int]string)

	for i, provider := range c.Providers {
		if provider.Name == "" {
			warnings = append(warnings, fmt.Sprintf("provider %d: name is required", i))
			continue
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if other, dup := priorityMap[provider.Priority]; dup {
			warnings = append(warnings, fmt.Sprintf("provider %s: priority %d already used by %s", provider.Name, provider.Priority, other))
		}
		priorityMap[provider.Priority] = provider.Name

		if provider.APIKey == "" {
			warnings = append(warnings, fmt.Sprintf("provider %s has no API key configured", provider.Name))
		}
	}

	if enabledCount == 0 {
		warnings = append(warnings, "no enabled LLM providers")
	}
	return warnings
}

// getList reads a YAML list, or a sep separated string from the environment.
func getList(key, sep string) []string {
	var items []string
	switch raw := viper.Get(key).(type) {
	case []interface{}:
		for _, v := range raw {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
	case []string:
		items = raw
	case string:
		items = strings.Split(raw, sep)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
