package driven

import (
	"context"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// Normaliser decodes a raw transcript file into plain text.
// Each normaliser handles specific file extensions (e.g. .txt, .docx).
type Normaliser interface {
	// SupportedExtensions returns the lower-case file extensions this
	// normaliser handles, including the leading dot.
	SupportedExtensions() []string

	// Normalise decodes a raw transcript into plain text, paragraph
	// order preserved as line order.
	Normalise(ctx context.Context, raw *domain.RawTranscript) (*domain.TranscriptText, error)
}
