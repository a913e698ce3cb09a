package web

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
	"github.com/balsas-labs/stenograma-cli/internal/transcript"
)

// maxUploadBytes bounds a single transcript upload.
const maxUploadBytes = 32 << 20

// askRequest is the JSON body of POST /ask.
type askRequest struct {
	Speaker  string `json:"speaker"`
	Query    string `json:"query" binding:"required"`
	Date     string `json:"date"`
	DryRun   bool   `json:"dry_run"`
	MaxChars int    `json:"max_chars"`
}

// askResponse is the JSON reply of POST /ask.
type askResponse struct {
	Answer   string `json:"answer,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Found    bool   `json:"found"`
	Fallback bool   `json:"fallback,omitempty"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// handleUpload ingests one uploaded transcript file. The optional
// "date" form field overrides any date inferred from the file.
func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	override, ok := parseOverrideDate(c, c.PostForm("date"))
	if !ok {
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	sess := session(c)
	added, err := sess.Ingest.LoadRaw(c.Request.Context(), &domain.RawTranscript{
		Name:    header.Filename,
		Content: content,
	}, override)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrUnsupportedType) {
			status = http.StatusUnsupportedMediaType
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added, "file": header.Filename})
}

// handleYouTube resolves a video URL, downloads its audio, transcribes
// it locally, and loads the transcript under a synthetic speaker.
func (s *Server) handleYouTube(c *gin.Context) {
	if s.resolver == nil || s.transcriber == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "video ingestion not configured"})
		return
	}

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url field"})
		return
	}

	ctx := c.Request.Context()
	info, err := s.resolver.Resolve(ctx, req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audioPath, err := s.resolver.FetchAudio(ctx, info.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer os.Remove(audioPath)

	text, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	speaker := "YouTube " + info.Title
	sess := session(c)
	added, err := sess.Ingest.LoadPlainText(ctx, speaker, text, info.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Video %s transcribed into %d utterances", info.ID, added)
	c.JSON(http.StatusOK, gin.H{"added": added, "speaker": speaker, "title": info.Title})
}

func (s *Server) handleSpeakers(c *gin.Context) {
	speakers, err := session(c).Corpus.Speakers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if speakers == nil {
		speakers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"speakers": speakers})
}

func (s *Server) handleDates(c *gin.Context) {
	ctx := c.Request.Context()
	sess := session(c)

	dates, err := sess.Corpus.Dates(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	undated, err := sess.Corpus.HasUndated(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	labels := make([]string, 0, len(dates))
	for _, d := range dates {
		labels = append(labels, d.Format("2006-01-02"))
	}
	c.JSON(http.StatusOK, gin.H{"dates": labels, "undated": undated})
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query field"})
		return
	}

	filter, ok := parseFilterDate(c, req.Date)
	if !ok {
		return
	}

	resp, err := session(c).Ask.Ask(c.Request.Context(), driving.AskRequest{
		Speaker:  req.Speaker,
		Date:     filter,
		Query:    req.Query,
		MaxChars: req.MaxChars,
		DryRun:   req.DryRun,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) || errors.Is(err, domain.ErrLLMUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := askResponse{
		Found:    resp.Found,
		Fallback: resp.Fallback,
		Answer:   resp.Answer,
	}
	if req.DryRun {
		out.Prompt = resp.Prompt
	}
	c.JSON(http.StatusOK, out)
}

// parseOverrideDate parses an explicit document date. An unparseable
// value is a client error.
func parseOverrideDate(c *gin.Context, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, true
	}
	d, err := transcript.ParseDateLabel(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + value})
		return time.Time{}, false
	}
	return d, true
}

// parseFilterDate parses the /ask date filter; "undated" selects
// utterances without a date.
func parseFilterDate(c *gin.Context, value string) (*domain.DateFilter, bool) {
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	if strings.EqualFold(strings.TrimSpace(value), "undated") {
		return &domain.DateFilter{Undated: true}, true
	}
	d, err := transcript.ParseDateLabel(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + value})
		return nil, false
	}
	return &domain.DateFilter{Date: d}, true
}
