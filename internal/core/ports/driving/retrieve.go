package driving

import (
	"context"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// RetrieveService selects the context utterances for a query.
type RetrieveService interface {
	// Retrieve filters the corpus by speaker/date, ranks candidates
	// against the query, and returns the best-fitting context within
	// the character budget, in chronological order.
	Retrieve(ctx context.Context, opts domain.RetrieveOptions) (*domain.RetrieveResult, error)
}
