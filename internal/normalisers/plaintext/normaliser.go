// Package plaintext normalises .txt transcripts.
package plaintext

import (
	"context"
	"strings"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text transcripts.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt"}
}

// Normalise passes the raw bytes through as text, normalising line
// endings so the segmenter only ever sees "\n".
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawTranscript) (*domain.TranscriptText, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return &domain.TranscriptText{Text: text}, nil
}
