package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
)

// Ensure RetrieveService implements the interface.
var _ driving.RetrieveService = (*RetrieveService)(nil)

// RetrieveService selects context utterances for a query using
// speaker/date filtering and lexical similarity ranking.
type RetrieveService struct {
	store driven.CorpusStore
}

// NewRetrieveService creates a retrieve service over the given store.
func NewRetrieveService(store driven.CorpusStore) *RetrieveService {
	return &RetrieveService{store: store}
}

// scoredUtterance pairs a candidate with its query similarity.
type scoredUtterance struct {
	utterance domain.Utterance
	score     float64
}

// Retrieve filters, ranks, and selects context within the character
// budget. The returned sequence is in global (chronological) order.
func (s *RetrieveService) Retrieve(ctx context.Context, opts domain.RetrieveOptions) (*domain.RetrieveResult, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q, speaker: %q", opts.Query, opts.Speaker)

	all, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	candidates := filterCandidates(all, opts)
	logger.Debug("Candidates: %d of %d", len(candidates), len(all))
	if len(candidates) == 0 {
		return &domain.RetrieveResult{Found: false}, nil
	}

	maxChars := opts.MaxChars
	if maxChars <= 0 {
		maxChars = domain.DefaultMaxChars
	}

	queryVec := termFreq(tokenise(opts.Query))

	scored := make([]scoredUtterance, 0, len(candidates))
	overlap := false
	for _, u := range candidates {
		score := cosineSimilarity(queryVec, termFreq(tokenise(u.Text)))
		if score > 0 {
			overlap = true
		}
		scored = append(scored, scoredUtterance{utterance: u, score: score})
	}

	if !overlap {
		logger.Info("No lexical overlap, using recency fallback")
		return &domain.RetrieveResult{
			Utterances: takeMostRecent(candidates, maxChars),
			Found:      true,
			Fallback:   true,
		}, nil
	}

	// Rank by descending score; equal scores keep the earlier
	// utterance first so output is deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].utterance.Order < scored[j].utterance.Order
	})

	var selected []domain.Utterance
	budget := 0
	for _, sc := range scored {
		if sc.score == 0 {
			break
		}
		length := utf8.RuneCountInString(sc.utterance.Text)
		if budget+length > maxChars {
			break
		}
		budget += length
		selected = append(selected, sc.utterance)
	}

	// Back to chronological order for prompt construction.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Order < selected[j].Order
	})

	logger.Info("Selected %d utterances (%d chars)", len(selected), budget)
	return &domain.RetrieveResult{Utterances: selected, Found: true}, nil
}

// filterCandidates applies the speaker and date filters.
func filterCandidates(all []domain.Utterance, opts domain.RetrieveOptions) []domain.Utterance {
	speakerKey := domain.NormaliseSpeaker(opts.Speaker)

	var out []domain.Utterance
	for _, u := range all {
		if speakerKey != "" && u.SpeakerKey() != speakerKey {
			continue
		}
		if opts.Date != nil && !opts.Date.Matches(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// takeMostRecent returns the latest utterances fitting the budget, in
// chronological order.
func takeMostRecent(candidates []domain.Utterance, maxChars int) []domain.Utterance {
	budget := 0
	start := len(candidates)
	for i := len(candidates) - 1; i >= 0; i-- {
		length := utf8.RuneCountInString(candidates[i].Text)
		if budget+length > maxChars {
			break
		}
		budget += length
		start = i
	}
	out := make([]domain.Utterance, len(candidates)-start)
	copy(out, candidates[start:])
	return out
}

// tokenise lower-cases the text and splits it into letter/digit runs.
func tokenise(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// termFreq builds a term-frequency vector.
func termFreq(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// cosineSimilarity computes the cosine of two term-frequency vectors.
func cosineSimilarity(a, b map[string]int) float64 {
	dot := 0
	for term, av := range a {
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}

	var normA, normB float64
	for _, v := range a {
		normA += float64(v * v)
	}
	for _, v := range b {
		normB += float64(v * v)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float64(dot) / (math.Sqrt(normA) * math.Sqrt(normB))
}
