package driven

import (
	"context"
	"time"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// CorpusStore holds the ordered utterance sequence for one run or
// session. It is append-only during ingestion and read-only during
// retrieval; no removal or mutation operations exist.
type CorpusStore interface {
	// Add appends utterances, assigning each a global order that
	// increases monotonically across calls.
	Add(ctx context.Context, utterances []domain.Utterance) error

	// All returns the full corpus in global order.
	All(ctx context.Context) ([]domain.Utterance, error)

	// Speakers returns the distinct normalised speaker names present,
	// sorted alphabetically.
	Speakers(ctx context.Context) ([]string, error)

	// Dates returns the distinct dates present, sorted ascending.
	// Utterances without a date do not contribute an entry.
	Dates(ctx context.Context) ([]time.Time, error)

	// HasUndated reports whether any utterance has no date.
	HasUndated(ctx context.Context) (bool, error)

	// Len returns the number of utterances stored.
	Len(ctx context.Context) (int, error)
}
