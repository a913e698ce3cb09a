// Package youtube resolves video URLs to metadata and fetches audio
// for local transcription.
//
// Metadata comes from the public oembed endpoint; audio download is
// delegated to an external yt-dlp binary. Both are best-effort
// collaborators: a metadata failure degrades to the bare video ID,
// while a download failure is terminal for the request.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
	"github.com/balsas-labs/stenograma-cli/internal/transcript"
)

// Ensure Resolver implements the interface.
var _ driven.VideoResolver = (*Resolver)(nil)

// Default configuration values.
const (
	DefaultOembedURL = "https://www.youtube.com/oembed"
	DefaultYtdlpBin  = "yt-dlp"
	DefaultTimeout   = 10 * time.Second

	// OembedRate throttles metadata requests (req/sec). The oembed
	// endpoint is unauthenticated and quick to rate-limit bursts.
	OembedRate = 2
)

// videoIDRe matches the canonical 11-character video identifier.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Config holds configuration for the resolver.
type Config struct {
	// OembedURL is the metadata endpoint (default: YouTube oembed).
	OembedURL string

	// YtdlpBin is the yt-dlp binary name or path (default: yt-dlp).
	YtdlpBin string

	// Timeout is the metadata request timeout (default: 10s).
	Timeout time.Duration
}

// Resolver resolves video URLs via oembed and fetches audio via yt-dlp.
type Resolver struct {
	client    *http.Client
	oembedURL string
	ytdlpBin  string
	limiter   *rate.Limiter
}

// NewResolver creates a new video resolver.
func NewResolver(cfg Config) *Resolver {
	if cfg.OembedURL == "" {
		cfg.OembedURL = DefaultOembedURL
	}
	if cfg.YtdlpBin == "" {
		cfg.YtdlpBin = DefaultYtdlpBin
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Resolver{
		client:    &http.Client{Timeout: cfg.Timeout},
		oembedURL: cfg.OembedURL,
		ytdlpBin:  cfg.YtdlpBin,
		limiter:   rate.NewLimiter(rate.Limit(OembedRate), 1),
	}
}

// ExtractVideoID returns the 11-character video ID from a URL or a
// bare ID string. Recognised forms: youtu.be short links, /watch?v=,
// /shorts/, /embed/, and the bare ID itself.
func ExtractVideoID(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", fmt.Errorf("empty video URL: %w", domain.ErrInvalidInput)
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		// Not a URL - try as a bare ID.
		if videoIDRe.MatchString(candidate) {
			return candidate, nil
		}
		return "", fmt.Errorf("no video ID in %q: %w", raw, domain.ErrInvalidInput)
	}

	host := strings.ToLower(parsed.Host)
	var id string
	switch {
	case host == "youtu.be" || host == "www.youtu.be":
		id = strings.TrimPrefix(parsed.Path, "/")
	case strings.Contains(host, "youtube.com"):
		switch {
		case parsed.Path == "/watch":
			id = parsed.Query().Get("v")
		case strings.HasPrefix(parsed.Path, "/shorts/") || strings.HasPrefix(parsed.Path, "/embed/"):
			parts := strings.Split(parsed.Path, "/")
			if len(parts) > 2 {
				id = parts[2]
			}
		}
	}

	if !videoIDRe.MatchString(id) {
		return "", fmt.Errorf("no video ID in %q: %w", raw, domain.ErrInvalidInput)
	}
	return id, nil
}

// oembedResponse is the subset of the oembed payload we read.
type oembedResponse struct {
	Title string `json:"title"`
}

// Resolve extracts the video ID and fetches the title. A metadata
// failure is logged and the bare ID stands in for the title.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*driven.VideoInfo, error) {
	id, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	info := &driven.VideoInfo{ID: id, Title: id}

	title, err := r.fetchTitle(ctx, "https://www.youtube.com/watch?v="+id)
	if err != nil {
		logger.Warn("Video metadata unavailable for %s: %v", id, err)
		return info, nil
	}

	info.Title = title
	if d, ok := transcript.ExtractDate(title); ok {
		info.Date = d
	}
	return info, nil
}

// fetchTitle queries the oembed endpoint for the video title. The
// canonical watch URL is used so bare-ID input still resolves.
func (r *Resolver) fetchTitle(ctx context.Context, watchURL string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	endpoint := r.oembedURL + "?format=json&url=" + url.QueryEscape(watchURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create oembed request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed status %d", resp.StatusCode)
	}

	var payload oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode oembed response: %w", err)
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return "", fmt.Errorf("oembed response has no title")
	}
	return title, nil
}

// FetchAudio downloads the video's audio track into a temporary file
// using yt-dlp and returns its path. The caller removes the file.
func (r *Resolver) FetchAudio(ctx context.Context, videoID string) (string, error) {
	if !videoIDRe.MatchString(videoID) {
		return "", fmt.Errorf("bad video ID %q: %w", videoID, domain.ErrInvalidInput)
	}

	dir, err := os.MkdirTemp("", "stenograma-audio-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	outPath := filepath.Join(dir, videoID+".m4a")
	cmd := exec.CommandContext(ctx, r.ytdlpBin,
		"--quiet",
		"--no-playlist",
		"-f", "bestaudio[ext=m4a]/bestaudio",
		"-o", outPath,
		"https://www.youtube.com/watch?v="+videoID,
	)

	logger.Debug("Fetching audio: %s %s", r.ytdlpBin, videoID)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("%w: yt-dlp: %v: %s", domain.ErrUpstreamUnavailable, err, strings.TrimSpace(string(out)))
	}

	return outPath, nil
}
