package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
)

// stubLLM is a canned LLMService for tests.
type stubLLM struct {
	answer     string
	err        error
	lastPrompt string
}

func (s *stubLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func (s *stubLLM) ModelName() string            { return "stub" }
func (s *stubLLM) Ping(context.Context) error   { return nil }
func (s *stubLLM) Close() error                 { return nil }

func askService(t *testing.T, llm driven.LLMService, utterances ...domain.Utterance) *AskService {
	t.Helper()
	return NewAskService(NewRetrieveService(corpusWith(t, utterances...)), llm)
}

func TestAsk_GeneratesAnswer(t *testing.T) {
	llm := &stubLLM{answer: "Viskas gerai."}
	svc := askService(t, llm,
		domain.Utterance{Speaker: "Alice", Text: "Labas, kaip sekasi?"},
	)

	resp, err := svc.Ask(context.Background(), driving.AskRequest{
		Speaker: "Alice",
		Query:   "kaip sekasi",
	})

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "Viskas gerai.", resp.Answer)
	assert.Contains(t, llm.lastPrompt, "Labas, kaip sekasi?")
	assert.Contains(t, llm.lastPrompt, "Question: kaip sekasi")
	assert.Contains(t, llm.lastPrompt, "context from Alice")
}

func TestAsk_DryRunSkipsModel(t *testing.T) {
	llm := &stubLLM{answer: "never"}
	svc := askService(t, llm,
		domain.Utterance{Speaker: "Alice", Text: "Labas, kaip sekasi?"},
	)

	resp, err := svc.Ask(context.Background(), driving.AskRequest{
		Speaker: "Alice",
		Query:   "kaip sekasi",
		DryRun:  true,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Answer)
	assert.Empty(t, llm.lastPrompt)
	assert.Contains(t, resp.Prompt, "Context:")
}

func TestAsk_NoMatchIsNotAnError(t *testing.T) {
	svc := askService(t, &stubLLM{},
		domain.Utterance{Speaker: "Alice", Text: "labas"},
	)

	resp, err := svc.Ask(context.Background(), driving.AskRequest{
		Speaker: "Niekas",
		Query:   "labas",
	})

	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Answer)
}

func TestAsk_UpstreamFailurePropagates(t *testing.T) {
	llm := &stubLLM{err: errors.New("connection refused")}
	svc := askService(t, llm,
		domain.Utterance{Speaker: "Alice", Text: "labas pasauli"},
	)

	_, err := svc.Ask(context.Background(), driving.AskRequest{
		Speaker: "Alice",
		Query:   "labas",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsk_NoLLMConfigured(t *testing.T) {
	svc := askService(t, nil,
		domain.Utterance{Speaker: "Alice", Text: "labas pasauli"},
	)

	_, err := svc.Ask(context.Background(), driving.AskRequest{
		Speaker: "Alice",
		Query:   "labas",
	})

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestBuildPrompt_NoSpeaker(t *testing.T) {
	prompt := BuildPrompt("", "kontekstas", "klausimas")

	assert.Contains(t, prompt, "context from the transcript")
	assert.Contains(t, prompt, "Question: klausimas")
}
