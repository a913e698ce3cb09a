// Package web provides the browser interface: a small gin server with
// per-session corpora. Each browser session gets its own pipeline,
// identified by a session cookie; nothing is persisted across restarts.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
)

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "session"

// sessionKey is the gin context key holding the resolved session.
const sessionKey = "stenograma-session"

// Config holds configuration for the web server.
type Config struct {
	// Addr is the listen address (default: 127.0.0.1:8080).
	Addr string

	// ReadTimeout and WriteTimeout bound request handling. The write
	// timeout must cover a full model generation.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves the web interface.
type Server struct {
	engine   *gin.Engine
	server   *http.Server
	sessions driving.SessionService

	// Video ingestion collaborators. Either may be nil, which
	// disables the /youtube route with a clear error.
	resolver    driven.VideoResolver
	transcriber driven.Transcriber
}

// NewServer creates the web server and registers its routes.
func NewServer(cfg Config, sessions driving.SessionService, resolver driven.VideoResolver, transcriber driven.Transcriber) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8080"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		// Generation plus transcription can be slow.
		cfg.WriteTimeout = 10 * time.Minute
	}

	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:      engine,
		sessions:    sessions,
		resolver:    resolver,
		transcriber: transcriber,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.withSession(s.handleIndex))
	s.engine.POST("/upload", s.withSession(s.handleUpload))
	s.engine.POST("/youtube", s.withSession(s.handleYouTube))
	s.engine.GET("/speakers", s.withSession(s.handleSpeakers))
	s.engine.GET("/dates", s.withSession(s.handleDates))
	s.engine.POST("/ask", s.withSession(s.handleAsk))
}

// withSession resolves the request's session from the cookie, creating
// one on first contact or when the cookie references a session from a
// previous process.
func (s *Server) withSession(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *driving.Session

		if id, err := c.Cookie(SessionCookie); err == nil {
			if existing, ok := s.sessions.Get(c.Request.Context(), id); ok {
				session = existing
			}
		}

		if session == nil {
			created, err := s.sessions.Create(c.Request.Context())
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session setup failed"})
				return
			}
			session = created
			c.SetCookie(SessionCookie, session.ID, 0, "/", "", false, true)
		}

		c.Set(sessionKey, session)
		next(c)
	}
}

// session returns the request's session placed by withSession.
func session(c *gin.Context) *driving.Session {
	return c.MustGet(sessionKey).(*driving.Session)
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	logger.Info("Web interface listening on http://%s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
