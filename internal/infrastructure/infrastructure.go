// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, lifecycle, the external entity
// detector) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/clarity-counsel/counsel/internal/config"
	"github.com/clarity-counsel/counsel/internal/entities"
	"github.com/clarity-counsel/counsel/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Detector is nil when the Cloud Natural Language integration is disabled;
// the local pattern detectors cover that case.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Detector  *entities.LanguageDetector
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var detector *entities.LanguageDetector
	if cfg.Language.Enabled {
		d, err := entities.NewLanguageDetector(lc.Context(), cfg.Language.CredentialsFile, logger)
		if err != nil {
			return nil, fmt.Errorf("language detector init failed: %w", err)
		}
		detector = d
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Detector:  detector,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Detector != nil {
		i.Lifecycle.OnShutdown(func() {
			if err := i.Detector.Close(); err != nil {
				i.Logger.Warn("language detector close failed", "error", err)
			}
		})
	}
	return nil
}

// ExternalDetector returns the configured external detector as the entities
// Detector interface, or nil when disabled.
func (i *Infrastructure) ExternalDetector() entities.Detector {
	if i.Detector == nil {
		return nil
	}
	return i.Detector
}
