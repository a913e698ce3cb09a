package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
	"github.com/balsas-labs/stenograma-cli/internal/normalisers"
	"github.com/balsas-labs/stenograma-cli/internal/transcript"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService loads transcript files into the corpus store.
// Loading is best-effort: a file that cannot be read or decoded is
// skipped with a warning, never failing the batch.
type IngestService struct {
	store    driven.CorpusStore
	registry *normalisers.Registry
}

// NewIngestService creates an ingest service over the given store.
func NewIngestService(store driven.CorpusStore, registry *normalisers.Registry) *IngestService {
	return &IngestService{
		store:    store,
		registry: registry,
	}
}

// LoadDirectory loads every supported file in dir, in name order.
// Returns the number of utterances added. An unreadable directory is
// an error; an unreadable file inside it is not.
func (s *IngestService) LoadDirectory(ctx context.Context, dir string, override time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read directory %s: %w", dir, domain.ErrSourceUnreadable)
	}

	logger.Section("Ingestion")
	logger.Debug("Directory: %s (%d entries)", dir, len(entries))

	total := 0
	for _, entry := range entries {
		if entry.IsDir() || !s.registry.Supported(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Skipping unreadable file %s: %v", path, err)
			continue
		}

		n, err := s.LoadRaw(ctx, &domain.RawTranscript{Name: entry.Name(), Content: content}, override)
		if err != nil {
			logger.Warn("Skipping malformed file %s: %v", path, err)
			continue
		}
		total += n
	}

	logger.Info("Loaded %d utterances from %s", total, dir)
	return total, nil
}

// LoadRaw loads one in-memory transcript: decode, segment, date, add.
func (s *IngestService) LoadRaw(ctx context.Context, raw *domain.RawTranscript, override time.Time) (int, error) {
	if raw == nil {
		return 0, domain.ErrInvalidInput
	}

	normaliser, ok := s.registry.ForName(raw.Name)
	if !ok {
		return 0, fmt.Errorf("no normaliser for %s: %w", raw.Name, domain.ErrUnsupportedType)
	}

	text, err := normaliser.Normalise(ctx, raw)
	if err != nil {
		return 0, fmt.Errorf("normalise %s: %w", raw.Name, err)
	}

	docDate := s.documentDate(raw.Name, text.Title, override)

	entries := transcript.SegmentText(text.Text)
	if len(entries) == 0 {
		logger.Debug("No speaker turns in %s", raw.Name)
		return 0, nil
	}

	utterances := make([]domain.Utterance, 0, len(entries))
	for _, e := range entries {
		utterances = append(utterances, domain.Utterance{
			Speaker: e.Speaker,
			Date:    docDate,
			Text:    e.Text,
		})
	}

	if err := s.store.Add(ctx, utterances); err != nil {
		return 0, fmt.Errorf("store %s: %w", raw.Name, err)
	}

	logger.Debug("Loaded %d utterances from %s (date %s)", len(utterances), raw.Name, dateLabel(docDate))
	return len(utterances), nil
}

// LoadPlainText loads unsegmented text under one synthetic speaker,
// one utterance per non-empty line (or the whole text when it has no
// line structure).
func (s *IngestService) LoadPlainText(ctx context.Context, speaker, text string, date time.Time) (int, error) {
	if domain.NormaliseSpeaker(speaker) == "" {
		return 0, domain.ErrInvalidInput
	}

	var utterances []domain.Utterance
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		utterances = append(utterances, domain.Utterance{
			Speaker: speaker,
			Date:    date,
			Text:    line,
		})
	}
	if len(utterances) == 0 {
		return 0, nil
	}

	if err := s.store.Add(ctx, utterances); err != nil {
		return 0, fmt.Errorf("store transcript for %s: %w", speaker, err)
	}
	return len(utterances), nil
}

// documentDate picks the date for every utterance of one document:
// explicit override first, then the file name, then the title.
func (s *IngestService) documentDate(name, title string, override time.Time) time.Time {
	if !override.IsZero() {
		return override
	}
	if d, ok := transcript.ExtractDate(name); ok {
		return d
	}
	if title != "" {
		if d, ok := transcript.ExtractDate(title); ok {
			return d
		}
	}
	return time.Time{}
}

func dateLabel(d time.Time) string {
	if d.IsZero() {
		return "unknown"
	}
	return d.Format("2006-01-02")
}
