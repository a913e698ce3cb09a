// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusStore: In-memory utterance storage for one run or session
//   - Normaliser: Decodes a raw transcript file into plain text
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Answer generation. Without it, only dry-run works.
//   - VideoResolver / Transcriber: Video ingestion. Without them, only
//     file uploads are accepted.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
