package services

import (
	"context"
	"fmt"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService builds the prompt from retrieved context and forwards it
// to the language model. It owns no state and never retries; an
// upstream failure is surfaced to the caller as-is.
type AskService struct {
	retriever driving.RetrieveService
	llm       driven.LLMService
}

// NewAskService creates an ask service. The llm parameter is optional
// (can be nil); without it only dry-run requests succeed.
func NewAskService(retriever driving.RetrieveService, llm driven.LLMService) *AskService {
	return &AskService{
		retriever: retriever,
		llm:       llm,
	}
}

// Ask retrieves context for the request and generates an answer.
func (s *AskService) Ask(ctx context.Context, req driving.AskRequest) (*driving.AskResponse, error) {
	result, err := s.retriever.Retrieve(ctx, domain.RetrieveOptions{
		Speaker:  req.Speaker,
		Date:     req.Date,
		Query:    req.Query,
		MaxChars: req.MaxChars,
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	if !result.Found {
		logger.Info("No matching utterances, returning empty answer")
		return &driving.AskResponse{Found: false}, nil
	}

	prompt := BuildPrompt(req.Speaker, result.ContextText(), req.Query)

	resp := &driving.AskResponse{
		Prompt:   prompt,
		Context:  result.Utterances,
		Found:    true,
		Fallback: result.Fallback,
	}

	if req.DryRun {
		logger.Debug("Dry run, skipping model call")
		return resp, nil
	}

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	logger.Section("Generation")
	logger.Debug("Model: %s, prompt: %d chars", s.llm.ModelName(), len(prompt))

	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, err)
	}

	resp.Answer = answer
	return resp, nil
}

// BuildPrompt formats the retrieved context and the question into the
// single prompt string sent to the model.
func BuildPrompt(speaker, context, query string) string {
	who := speaker
	if who == "" {
		who = "the transcript"
	}
	return fmt.Sprintf(
		"Use the following context from %s to answer the question.\n\nContext:\n%s\n\nQuestion: %s\nAnswer:",
		who, context, query,
	)
}
