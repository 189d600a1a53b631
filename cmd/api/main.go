package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"omi-relay/config"
	_ "omi-relay/docs" // Swagger docs
	"omi-relay/internal/agent"
	"omi-relay/internal/agent/tools"
	"omi-relay/internal/assistant"
	"omi-relay/internal/completion"
	"omi-relay/internal/conversation"
	"omi-relay/internal/httpserver"
	"omi-relay/internal/memory"
	memoryQdrant "omi-relay/internal/memory/repository/qdrant"
	memoryUsecase "omi-relay/internal/memory/usecase"
	"omi-relay/internal/middleware"
	"omi-relay/internal/observability"
	"omi-relay/internal/ratelimit"
	"omi-relay/internal/relay"
	relayUsecase "omi-relay/internal/relay/usecase"
	"omi-relay/internal/trigger"
	"omi-relay/pkg/llmprovider"
	"omi-relay/pkg/log"
	"omi-relay/pkg/omi"
	"omi-relay/pkg/openai"
	"omi-relay/pkg/qdrant"
	"omi-relay/pkg/voyage"
	"omi-relay/pkg/websearch"
)

// @title       Omi Relay API
// @description Listens to Omi transcripts, answers wake phrase questions with an LLM and pushes the answer back as a notification.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Omi Relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	for _, w := range cfg.LLM.Warnings() {
		logger.Warnf(ctx, "LLM config: %s", w)
	}
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, questions will fail until OPENAI_API_KEY is set: %v", err)
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(ctx, logger, "llm.retry_delay", cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(ctx, logger, "llm.max_total_timeout", cfg.LLM.MaxTotalTimeout, 60*time.Second),
		UnconfiguredKey: "OPENAI_API_KEY",
	}, logger)

	// 4. Memory store (optional)
	var memoryUC memory.UseCase
	if cfg.Memory.Enabled {
		memoryUC = initMemory(ctx, logger, cfg)
	}

	// 5. Tools
	registry := agent.NewToolRegistry()
	webSearchOn := false
	if cfg.WebSearch.Enabled {
		searcher, wsErr := websearch.New(ctx, websearch.Config{
			APIKey:     cfg.WebSearch.APIKey,
			EngineID:   cfg.WebSearch.EngineID,
			MaxResults: cfg.WebSearch.MaxResults,
		})
		if wsErr != nil {
			logger.Warnf(ctx, "Web search disabled: %v", wsErr)
		} else {
			registry.Register(tools.NewWebSearchTool(searcher, cfg.WebSearch.MaxResults))
			webSearchOn = true
		}
	}
	if memoryUC != nil {
		registry.Register(tools.NewSearchMemoriesTool(memoryUC))
	}
	logger.Infof(ctx, "Registered %d tools", registry.Len())

	// 6. Assistant runner (optional)
	var runner completion.Runner
	if cfg.Assistant.Enabled {
		if r, aErr := initAssistant(cfg, registry, logger); aErr != nil {
			logger.Warnf(ctx, "Assistant mode disabled: %v", aErr)
		} else {
			runner = r
		}
	}

	// 7. Completion client
	completer := completion.New(llmManager, registry, runner, completion.Config{
		SystemPrompt: cfg.LLM.SystemPrompt,
		MaxTokens:    cfg.LLM.MaxTokens,
		Temperature:  cfg.LLM.Temperature,
		MaxToolSteps: cfg.Completion.MaxToolSteps,
	}, logger)

	// 8. Relay pipeline
	detector, err := trigger.New(trigger.Config{
		WakePhrases:  cfg.Trigger.WakePhrases,
		HelpKeywords: cfg.Trigger.HelpKeywords,
		MatchPolicy:  trigger.MatchPolicy(cfg.Trigger.MatchPolicy),
		Extraction:   trigger.ExtractionStrategy(cfg.Trigger.Extraction),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize trigger detector: ", err)
		return
	}

	store, err := conversation.New(conversation.Config{
		MaxTurns:    cfg.Conversation.MaxTurns,
		MaxSessions: cfg.Conversation.MaxSessions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize conversation store: ", err)
		return
	}

	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Burst:          cfg.RateLimit.Burst,
	})

	notifier := omi.New(omi.Config{
		AppID:   cfg.Omi.AppID,
		APIKey:  cfg.Omi.APIKey,
		BaseURL: cfg.Omi.BaseURL,
		Timeout: cfg.Omi.Timeout,
	})
	if cfg.Omi.AppID == "" || cfg.Omi.APIKey == "" {
		logger.Warn(ctx, "OMI_APP_ID or OMI_API_KEY is missing, notifications will fail")
	}

	deps := relayUsecase.Deps{
		Detector:  detector,
		Store:     store,
		Completer: completer,
		Notifier:  notifier,
		Limiter:   limiter,
		Memory:    memoryUC,
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
		deps.Observer = metrics
	}

	relayUC := relayUsecase.New(logger, deps, relay.Features{
		Assistant:    runner != nil,
		WebSearch:    webSearchOn,
		Memory:       memoryUC != nil,
		LLMProviders: llmManager.Providers(),
	}, cfg.Memory.TopK)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.New(logger, middleware.Config{
			Secret:     cfg.Webhook.Secret,
			AllowedIPs: cfg.Webhook.AllowedIPs,
		}),
		Metrics:       metrics,
		RelayUseCase:  relayUC,
		MemoryUseCase: memoryUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func initMemory(ctx context.Context, logger log.Logger, cfg *config.Config) memory.UseCase {
	qdrantClient, err := qdrant.NewClient(qdrant.Config{
		URL:    cfg.Qdrant.URL,
		APIKey: cfg.Qdrant.APIKey,
	})
	if err != nil {
		logger.Warnf(ctx, "Memory disabled: %v", err)
		return nil
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Warnf(ctx, "Memory disabled: %v", err)
		return nil
	}
	if cfg.Voyage.Model != "" {
		embedder.WithModel(cfg.Voyage.Model)
	}

	repo := memoryQdrant.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
	if _, err := repo.EnsureCollection(ctx); err != nil {
		logger.Warnf(ctx, "Qdrant collection not ready, memory writes will fail until it is: %v", err)
	}

	logger.Info(ctx, "Memory store initialized")
	return memoryUsecase.New(repo, logger, cfg.Memory.TopK)
}

func initAssistant(cfg *config.Config, registry *agent.ToolRegistry, logger log.Logger) (assistant.Runner, error) {
	api, err := openai.New(openai.Config{
		APIKey:  cfg.Assistant.APIKey,
		BaseURL: cfg.Assistant.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return assistant.New(api, registry, assistant.Config{
		AssistantID:  cfg.Assistant.AssistantID,
		Instructions: cfg.LLM.SystemPrompt,
		Backoff: assistant.Backoff{
			InitialDelay: cfg.Assistant.PollInitialDelay,
			MaxDelay:     cfg.Assistant.PollMaxDelay,
			MaxPolls:     cfg.Assistant.PollMaxAttempts,
		},
	}, logger)
}

func parseDuration(ctx context.Context, logger log.Logger, key, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warnf(ctx, "Invalid %s %q, using %s", key, value, def)
		return def
	}
	return d
}
