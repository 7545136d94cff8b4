package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAnalysisRequestTimeout = "COUNSEL_ANALYSIS_REQUEST_TIMEOUT"
	EnvAnalysisMaxTokens      = "COUNSEL_ANALYSIS_MAX_TOKENS"
	EnvAnalysisTemperature    = "COUNSEL_ANALYSIS_TEMPERATURE"
)

// AnalysisConfig holds the hosted model connection and generation settings.
// The finalized go-agents AgentConfig is exposed through Agent().
type AnalysisConfig struct {
	AgentName      string  `toml:"agent_name"`
	Provider       string  `toml:"provider"`
	BaseURL        string  `toml:"base_url"`
	Model          string  `toml:"model"`
	RequestTimeout string  `toml:"request_timeout"`
	MaxTokens      int     `toml:"max_tokens"`
	Temperature    float64 `toml:"temperature"`

	agent gaconfig.AgentConfig
}

// Agent returns the finalized go-agents configuration.
func (c *AnalysisConfig) Agent() gaconfig.AgentConfig {
	return c.agent
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *AnalysisConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation,
// then builds the go-agents AgentConfig. Hosted providers require a token;
// a missing token is a startup failure, not a per-request one.
func (c *AnalysisConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}

	agent := gaconfig.AgentConfig{
		Name: c.AgentName,
		Provider: &gaconfig.ProviderConfig{
			Name:    c.Provider,
			BaseURL: c.BaseURL,
			Options: map[string]any{},
		},
		Model: &gaconfig.ModelConfig{
			Name: c.Model,
		},
	}

	if err := FinalizeAgent(&agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}

	if agent.Model.Capabilities == nil {
		agent.Model.Capabilities = map[string]map[string]any{}
	}
	if agent.Model.Capabilities["chat"] == nil {
		agent.Model.Capabilities["chat"] = map[string]any{}
	}
	agent.Model.Capabilities["chat"]["max_tokens"] = c.MaxTokens
	agent.Model.Capabilities["chat"]["temperature"] = c.Temperature

	if agent.Provider.Name != "ollama" {
		if token, ok := agent.Provider.Options["token"].(string); !ok || token == "" {
			return fmt.Errorf("provider %s requires %s", agent.Provider.Name, EnvAgentToken)
		}
	}

	c.agent = agent
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.AgentName != "" {
		c.AgentName = overlay.AgentName
	}
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
}

func (c *AnalysisConfig) loadDefaults() {
	if c.AgentName == "" {
		c.AgentName = "counsel-analyst"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "2m"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2048
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
}

func (c *AnalysisConfig) loadEnv() {
	if v := os.Getenv(EnvAnalysisRequestTimeout); v != "" {
		c.RequestTimeout = v
	}
	if v := os.Getenv(EnvAnalysisMaxTokens); v != "" {
		if tokens, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = tokens
		}
	}
	if v := os.Getenv(EnvAnalysisTemperature); v != "" {
		if temp, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = temp
		}
	}
}

func (c *AnalysisConfig) validate() error {
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("invalid max_tokens: %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("invalid temperature: %g", c.Temperature)
	}
	return nil
}
