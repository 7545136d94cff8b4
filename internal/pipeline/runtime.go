package pipeline

import (
	"log/slog"

	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/entities"
	"github.com/clarity-counsel/counsel/internal/ingest"
	"github.com/clarity-counsel/counsel/internal/segment"
)

// Runtime bundles the subsystems that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Ingest     ingest.System
	Segmenter  *segment.Segmenter
	Anonymizer *entities.Anonymizer
	Analysis   analysis.System
	Logger     *slog.Logger
}
