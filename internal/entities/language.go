package entities

import (
	"context"
	"fmt"
	"log/slog"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"google.golang.org/api/option"
)

// LanguageDetector adapts the Google Cloud Natural Language entity analysis
// API to the Detector contract. Offsets are requested in UTF-8 bytes so they
// index directly into Go strings.
type LanguageDetector struct {
	client *language.Client
	logger *slog.Logger
}

// NewLanguageDetector creates a detector backed by the Cloud Natural Language
// API. When credentialsFile is empty, ambient application-default credentials
// apply.
func NewLanguageDetector(ctx context.Context, credentialsFile string, logger *slog.Logger) (*LanguageDetector, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := language.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create language client: %w", err)
	}

	return &LanguageDetector{
		client: client,
		logger: logger.With("system", "language"),
	}, nil
}

// Detect returns one span per entity mention, labeled with the entity's type
// and weighted by its document salience.
func (d *LanguageDetector) Detect(ctx context.Context, text string) ([]Span, error) {
	resp, err := d.client.AnalyzeEntities(ctx, &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{Content: text},
			Type:   languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze entities: %w", err)
	}

	var spans []Span
	for _, entity := range resp.GetEntities() {
		entityType := normalizeEntityType(entity.GetType())
		for _, mention := range entity.GetMentions() {
			content := mention.GetText().GetContent()
			start := int(mention.GetText().GetBeginOffset())
			spans = append(spans, Span{
				Text:       content,
				Type:       entityType,
				Start:      start,
				End:        start + len(content),
				Confidence: float64(entity.GetSalience()),
			})
		}
	}

	return spans, nil
}

// Close releases the underlying API connection.
func (d *LanguageDetector) Close() error {
	return d.client.Close()
}

// normalizeEntityType maps API type names onto the sensitive-type table's
// vocabulary. PRICE is the API's name for monetary values.
func normalizeEntityType(t languagepb.Entity_Type) string {
	if t == languagepb.Entity_PRICE {
		return "MONEY"
	}
	return t.String()
}
