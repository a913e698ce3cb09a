// Package whisper transcribes audio using a local whisper binary.
//
// The adapter shells out to whisper-cli (or any compatible binary)
// and reads the plain-text transcript it produces. No network access
// is involved; the model runs entirely on the local machine.
package whisper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Default configuration values.
const (
	DefaultBinary   = "whisper-cli"
	DefaultLanguage = "lt"
)

// Config holds configuration for the whisper transcriber.
type Config struct {
	// Binary is the whisper binary name or path (default: whisper-cli).
	Binary string

	// ModelPath is the path of the ggml model file. Required by most
	// whisper builds; passed through as-is when set.
	ModelPath string

	// Language is the spoken language hint (default: lt).
	Language string
}

// Transcriber runs a local whisper binary over audio files.
type Transcriber struct {
	binary    string
	modelPath string
	language  string
}

// NewTranscriber creates a new whisper transcriber.
func NewTranscriber(cfg Config) *Transcriber {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}

	return &Transcriber{
		binary:    cfg.Binary,
		modelPath: cfg.ModelPath,
		language:  cfg.Language,
	}
}

// Transcribe runs speech-to-text on the audio file at path and returns
// the plain transcript text.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file %s: %w", audioPath, domain.ErrSourceUnreadable)
	}

	outDir, err := os.MkdirTemp("", "stenograma-transcript-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	outBase := filepath.Join(outDir, "transcript")
	args := []string{
		"--language", t.language,
		"--output-txt",
		"--output-file", outBase,
	}
	if t.modelPath != "" {
		args = append(args, "--model", t.modelPath)
	}
	args = append(args, audioPath)

	logger.Debug("Transcribing %s with %s", audioPath, t.binary)
	cmd := exec.CommandContext(ctx, t.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: whisper: %v: %s", domain.ErrUpstreamUnavailable, err, strings.TrimSpace(string(out)))
	}

	text, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("read transcript output: %w", err)
	}

	result := strings.TrimSpace(string(text))
	if result == "" {
		return "", fmt.Errorf("empty transcript for %s: %w", audioPath, domain.ErrInvalidInput)
	}
	return result, nil
}
