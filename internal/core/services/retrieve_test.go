package services

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balsas-labs/stenograma-cli/internal/adapters/driven/storage/memory"
	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func corpusWith(t *testing.T, utterances ...domain.Utterance) *memory.CorpusStore {
	t.Helper()
	store := memory.NewCorpusStore()
	require.NoError(t, store.Add(context.Background(), utterances))
	return store
}

func TestRetrieve_SpeakerFilter(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "Alice", Date: date(2024, 1, 1), Text: "Labas, kaip sekasi?"},
		domain.Utterance{Speaker: "Bob", Date: date(2024, 1, 1), Text: "Viskas gerai, dėkoju."},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Speaker: "Alice",
		Query:   "kaip sekasi",
	})

	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Utterances, 1)
	assert.Equal(t, "Alice", result.Utterances[0].Speaker)
	assert.Equal(t, "Labas, kaip sekasi?", result.Utterances[0].Text)
}

func TestRetrieve_SpeakerFilterCaseInsensitive(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "PIRMININKAS", Text: "posėdis pradedamas dabar"},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Speaker: "pirmininkas",
		Query:   "posėdis",
	})

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Len(t, result.Utterances, 1)
}

func TestRetrieve_SpeakerFilterNeverLeaks(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "Alice", Text: "biudžetas svarstomas"},
		domain.Utterance{Speaker: "Bob", Text: "biudžetas priimtas"},
		domain.Utterance{Speaker: "Alice", Text: "pertrauka"},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Speaker: "Bob",
		Query:   "biudžetas",
	})

	require.NoError(t, err)
	for _, u := range result.Utterances {
		assert.Equal(t, "Bob", u.Speaker)
	}
}

func TestRetrieve_DateFilter(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "A", Date: date(2024, 1, 1), Text: "sausio kalba"},
		domain.Utterance{Speaker: "A", Date: date(2024, 2, 1), Text: "vasario kalba"},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Date:  &domain.DateFilter{Date: date(2024, 2, 1)},
		Query: "kalba",
	})

	require.NoError(t, err)
	require.Len(t, result.Utterances, 1)
	assert.Equal(t, "vasario kalba", result.Utterances[0].Text)
}

func TestRetrieve_UndatedFilter(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "A", Date: date(2024, 1, 1), Text: "datuota kalba"},
		domain.Utterance{Speaker: "A", Text: "nedatuota kalba"},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Date:  &domain.DateFilter{Undated: true},
		Query: "kalba",
	})

	require.NoError(t, err)
	require.Len(t, result.Utterances, 1)
	assert.Equal(t, "nedatuota kalba", result.Utterances[0].Text)
}

func TestRetrieve_EmptyCandidates(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "Alice", Text: "labas"},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Speaker: "Niekas",
		Query:   "labas",
	})

	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Utterances)
}

func TestRetrieve_RecencyFallback(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "A", Text: "pirma kalba"},
		domain.Utterance{Speaker: "A", Text: "antra kalba"},
		domain.Utterance{Speaker: "A", Text: "trečia kalba"},
	)
	svc := NewRetrieveService(store)

	// Query tokens appear in zero candidates.
	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Query: "xyzzy nonexistent",
	})

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.True(t, result.Fallback)
	require.NotEmpty(t, result.Utterances)
	// Most recent utterance must be included.
	assert.Equal(t, "trečia kalba", result.Utterances[len(result.Utterances)-1].Text)
}

func TestRetrieve_MaxCharsBudget(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "A", Text: "biudžetas vienas du trys keturi penki"},
		domain.Utterance{Speaker: "A", Text: "biudžetas šeši septyni aštuoni devyni"},
		domain.Utterance{Speaker: "A", Text: "biudžetas dešimt vienuolika dvylika"},
	)
	svc := NewRetrieveService(store)

	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Query:    "biudžetas",
		MaxChars: 40,
	})

	require.NoError(t, err)
	total := 0
	for _, u := range result.Utterances {
		total += utf8.RuneCountInString(u.Text)
	}
	assert.LessOrEqual(t, total, 40)
	assert.NotEmpty(t, result.Utterances)
}

func TestRetrieve_ChronologicalOrder(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "A", Text: "pirmas biudžetas"},
		domain.Utterance{Speaker: "A", Text: "antras klausimas"},
		domain.Utterance{Speaker: "A", Text: "trečias biudžetas biudžetas"},
	)
	svc := NewRetrieveService(store)

	// The third utterance scores highest, but output stays in
	// corpus order.
	result, err := svc.Retrieve(context.Background(), domain.RetrieveOptions{
		Query: "biudžetas",
	})

	require.NoError(t, err)
	require.Len(t, result.Utterances, 2)
	assert.Equal(t, "pirmas biudžetas", result.Utterances[0].Text)
	assert.Equal(t, "trečias biudžetas biudžetas", result.Utterances[1].Text)
	assert.Less(t, result.Utterances[0].Order, result.Utterances[1].Order)
}

func TestRetrieve_TieBreakDeterministic(t *testing.T) {
	store := corpusWith(t,
		domain.Utterance{Speaker: "A", Text: "žodis vienodas"},
		domain.Utterance{Speaker: "A", Text: "žodis vienodas"},
		domain.Utterance{Speaker: "A", Text: "žodis vienodas"},
	)
	svc := NewRetrieveService(store)

	opts := domain.RetrieveOptions{Query: "žodis", MaxChars: 30}

	first, err := svc.Retrieve(context.Background(), opts)
	require.NoError(t, err)
	second, err := svc.Retrieve(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Equal scores admit earlier utterances first.
	require.NotEmpty(t, first.Utterances)
	assert.Zero(t, first.Utterances[0].Order)
}

func TestCosineSimilarity(t *testing.T) {
	a := termFreq(tokenise("kaip sekasi"))
	b := termFreq(tokenise("Labas, kaip sekasi?"))
	c := termFreq(tokenise("visai kitas tekstas"))

	assert.Greater(t, cosineSimilarity(a, b), 0.0)
	assert.Zero(t, cosineSimilarity(a, c))
	assert.InDelta(t, 1.0, cosineSimilarity(a, a), 1e-9)
}

func TestTokenise(t *testing.T) {
	assert.Equal(t, []string{"labas", "kaip", "sekasi"}, tokenise("Labas, kaip sekasi?"))
	assert.Equal(t, []string{"3", "5"}, tokenise("3.5"))
	assert.Empty(t, tokenise("...!?"))
}
