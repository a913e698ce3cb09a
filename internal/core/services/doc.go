// Package services implements the driving ports: transcript ingestion,
// context retrieval, answer generation, and web session management.
//
// Services orchestrate domain logic and driven ports. They contain the
// core pipeline:
//
//	raw file -> normaliser -> segmenter -> corpus store
//	query    -> retriever  -> prompt    -> LLM
//
// # Import Rules
//
//   - Can Import: domain, ports, transcript, normalisers, logger
//   - Cannot Import: Any adapter package
package services
