package domain

import (
	"strings"
	"time"
)

// DefaultMaxChars is the context character budget used when the
// caller does not specify one.
const DefaultMaxChars = 4000

// DateFilter restricts retrieval to utterances from one date, or to
// utterances with no known date.
type DateFilter struct {
	// Date is the exact date to match. Ignored when Undated is set.
	Date time.Time

	// Undated selects only utterances whose date is unknown.
	Undated bool
}

// Matches reports whether an utterance passes the filter.
func (f DateFilter) Matches(u Utterance) bool {
	if f.Undated {
		return !u.HasDate()
	}
	return u.HasDate() && sameDay(u.Date, f.Date)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RetrieveOptions configures a retrieval request.
type RetrieveOptions struct {
	// Speaker filters to one speaker (case-insensitive exact match).
	// Empty means no speaker filter.
	Speaker string

	// Date filters by calendar date. Nil means no date filter.
	Date *DateFilter

	// Query is the question whose lexical overlap ranks candidates.
	Query string

	// MaxChars is the combined character budget for returned text.
	// Zero falls back to DefaultMaxChars.
	MaxChars int
}

// RetrieveResult is the ordered context selected for a query.
type RetrieveResult struct {
	// Utterances is the selected context in original corpus order,
	// so downstream prompt construction reads as a conversation.
	Utterances []Utterance

	// Found is false when the filters produced no candidates at all.
	Found bool

	// Fallback is true when no candidate had lexical overlap with
	// the query and the most recent utterances were returned instead.
	Fallback bool
}

// ContextText joins the selected utterances into the text block
// embedded in the model prompt.
func (r RetrieveResult) ContextText() string {
	parts := make([]string, 0, len(r.Utterances))
	for _, u := range r.Utterances {
		parts = append(parts, u.Text)
	}
	return strings.Join(parts, "\n\n")
}
