package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file format no normaliser handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrSourceUnreadable indicates a source file could not be read or
	// decoded. Batch loading skips the file and continues.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrMalformedDate indicates a date string could not be parsed.
	// Callers degrade to "no date" rather than failing.
	ErrMalformedDate = errors.New("malformed date")

	// ErrUpstreamUnavailable indicates the model or transcription
	// endpoint is unreachable or returned an error. This is the only
	// condition surfaced to the user as a request failure.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrLLMUnavailable indicates no LLM service is configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
