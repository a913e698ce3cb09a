package driving

import (
	"context"
	"time"

	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
)

// Session bundles the per-session pipeline for the web interface.
// Each browser session owns its corpus; sessions never share state.
type Session struct {
	// ID is the opaque session identifier held in the browser cookie.
	ID string

	// CreatedAt is when the session was first seen.
	CreatedAt time.Time

	// Corpus is the session's private corpus store.
	Corpus driven.CorpusStore

	// Ingest loads transcripts into the session corpus.
	Ingest IngestService

	// Ask answers questions over the session corpus.
	Ask AskService
}

// SessionService manages web session lifecycles: created on first
// upload or navigation, discarded when the process ends.
type SessionService interface {
	// Create makes a new isolated session.
	Create(ctx context.Context) (*Session, error)

	// Get returns an existing session, or false when the ID is
	// unknown (expired or from a previous process).
	Get(ctx context.Context, id string) (*Session, bool)

	// Delete tears down a session and its corpus.
	Delete(ctx context.Context, id string)
}
