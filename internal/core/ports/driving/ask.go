package driving

import (
	"context"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// AskRequest describes one question over the loaded corpus.
type AskRequest struct {
	// Speaker filters context to one speaker. Empty means all.
	Speaker string

	// Date filters context by date. Nil means no filter.
	Date *domain.DateFilter

	// Query is the question to answer.
	Query string

	// MaxChars is the context character budget. Zero uses the default.
	MaxChars int

	// DryRun skips the model call and returns the prompt instead.
	DryRun bool
}

// AskResponse is the outcome of one question.
type AskResponse struct {
	// Answer is the model completion. Empty in dry-run mode.
	Answer string

	// Prompt is the full prompt that was (or would be) sent.
	Prompt string

	// Context is the retrieved context in chronological order.
	Context []domain.Utterance

	// Found is false when the filters matched no utterances.
	Found bool

	// Fallback is true when recency fallback supplied the context.
	Fallback bool
}

// AskService answers questions using retrieved context and the
// configured language model.
type AskService interface {
	// Ask retrieves context for the request and generates an answer.
	// An empty candidate set is a successful empty response, not an
	// error; only upstream model failures return an error.
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)
}
