package driving

import (
	"context"
	"time"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// IngestService loads transcripts into the session's corpus.
// All loading is best-effort: an unreadable or malformed file is
// skipped, never aborting a batch.
type IngestService interface {
	// LoadDirectory loads every supported file in dir.
	// The override date, when non-zero, is assigned to every
	// utterance; otherwise dates are inferred per file.
	// Returns the number of utterances added.
	LoadDirectory(ctx context.Context, dir string, override time.Time) (int, error)

	// LoadRaw loads one in-memory transcript (an upload).
	LoadRaw(ctx context.Context, raw *domain.RawTranscript, override time.Time) (int, error)

	// LoadPlainText loads unsegmented text (e.g. a video transcript)
	// under a single synthetic speaker label.
	LoadPlainText(ctx context.Context, speaker, text string, date time.Time) (int, error)
}
