package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Generator produces raw model output for a prompt. It is the narrow
// boundary to the hosted generative model, kept as an interface so tests can
// substitute deterministic doubles.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// agentGenerator adapts a go-agents chat agent to the Generator contract,
// enforcing the fixed wall-clock timeout on the outbound call. This is the
// only timeout in the processing path.
type agentGenerator struct {
	cfg     gaconfig.AgentConfig
	timeout time.Duration
}

// NewAgentGenerator creates a Generator backed by the configured agent.
func NewAgentGenerator(cfg gaconfig.AgentConfig, timeout time.Duration) Generator {
	return &agentGenerator{
		cfg:     cfg,
		timeout: timeout,
	}
}

func (g *agentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&g.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}
