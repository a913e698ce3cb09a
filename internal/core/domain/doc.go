// Package domain defines the core business entities for Stenograma.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Utterance: One attributed, dated unit of speech in a transcript
//   - RawTranscript: Opaque bytes from a source file or upload
//   - RetrieveOptions / RetrieveResult: The retrieval contract
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
