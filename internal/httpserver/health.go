package httpserver

import (
	"github.com/gin-gonic/gin"

	"omi-relay/internal/relay"
	"omi-relay/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Omi relay is listening"
	HealthVersion = "1.0.0"
	ServiceName   = "omi-relay"
)

type featuresResp struct {
	Assistant    bool     `json:"assistant"`
	WebSearch    bool     `json:"web_search"`
	Memory       bool     `json:"memory"`
	LLMProviders []string `json:"llm_providers"`
}

type capabilitiesResp struct {
	WakePhrases  []string     `json:"wake_phrases"`
	HelpKeywords []string     `json:"help_keywords"`
	MatchPolicy  string       `json:"match_policy"`
	Extraction   string       `json:"extraction"`
	MaxTurns     int          `json:"max_context_turns"`
	Features     featuresResp `json:"features"`
}

type healthResp struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	Version      string            `json:"version"`
	Service      string            `json:"service"`
	Environment  string            `json:"environment,omitempty"`
	Capabilities *capabilitiesResp `json:"capabilities,omitempty"`
}

func newCapabilitiesResp(c relay.Capabilities) *capabilitiesResp {
	providers := c.Features.LLMProviders
	if providers == nil {
		providers = []string{}
	}
	return &capabilitiesResp{
		WakePhrases:  c.WakePhrases,
		HelpKeywords: c.HelpKeywords,
		MatchPolicy:  c.MatchPolicy,
		Extraction:   c.Extraction,
		MaxTurns:     c.MaxTurns,
		Features: featuresResp{
			Assistant:    c.Features.Assistant,
			WebSearch:    c.Features.WebSearch,
			Memory:       c.Features.Memory,
			LLMProviders: providers,
		},
	}
}

func (srv HTTPServer) status(s string) healthResp {
	return healthResp{
		Status:  s,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Service status plus the wake phrases, help keywords and enabled features
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	resp := srv.status("healthy")
	resp.Environment = srv.environment
	resp.Capabilities = newCapabilitiesResp(srv.relayUC.Capabilities())
	response.OK(c, resp)
}

// readyCheck handles readiness check. Missing LLM credentials do not make
// the service unready; requests report them as configuration errors.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
