package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
	"github.com/balsas-labs/stenograma-cli/internal/normalisers"
)

// Ensure SessionManager implements the interface.
var _ driving.SessionService = (*SessionManager)(nil)

// SessionManager keeps one isolated pipeline per web session. The
// corpus store, ingest, retrieve, and ask services are all private to
// the session; concurrent sessions never observe each other's state.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*driving.Session

	registry *normalisers.Registry
	llm      driven.LLMService
	newStore func() driven.CorpusStore
}

// NewSessionManager creates a session manager. newStore builds the
// per-session corpus store; llm may be nil (dry-run only).
func NewSessionManager(registry *normalisers.Registry, llm driven.LLMService, newStore func() driven.CorpusStore) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*driving.Session),
		registry: registry,
		llm:      llm,
		newStore: newStore,
	}
}

// Create makes a new isolated session.
func (m *SessionManager) Create(_ context.Context) (*driving.Session, error) {
	store := m.newStore()
	retriever := NewRetrieveService(store)

	session := &driving.Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Corpus:    store,
		Ingest:    NewIngestService(store, m.registry),
		Ask:       NewAskService(retriever, m.llm),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	logger.Debug("Session created: %s", session.ID)
	return session, nil
}

// Get returns an existing session.
func (m *SessionManager) Get(_ context.Context, id string) (*driving.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Delete tears down a session and its corpus.
func (m *SessionManager) Delete(_ context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
