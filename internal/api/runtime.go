package api

import (
	"github.com/clarity-counsel/counsel/internal/config"
	"github.com/clarity-counsel/counsel/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Analysis config.AnalysisConfig
	API      config.APIConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Detector:  infra.Detector,
		},
		Analysis: cfg.Analysis,
		API:      cfg.API,
	}
}
