// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balsas-labs/stenograma-cli/internal/adapters/driven/storage/memory"
	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/services"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
	"github.com/balsas-labs/stenograma-cli/internal/normalisers"
	"github.com/balsas-labs/stenograma-cli/internal/transcript"
)

// version is set at build time via ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "stenograma",
	Short: "Ask questions over speaker-tagged transcripts",
	Long: `Stenograma loads speaker-tagged transcripts, retrieves the
utterances relevant to a question, and forwards them with the question
to a locally hosted language model.

Transcripts are plain text or docx files where each statement starts
with an upper-case speaker name followed by a colon or period.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// loadCorpus loads every supported file in dir into a fresh in-memory
// corpus. An unreadable directory is a terminal error; individual bad
// files are skipped by the ingest service.
func loadCorpus(cmd *cobra.Command, dir string) (*memory.CorpusStore, error) {
	store := memory.NewCorpusStore()
	ingest := services.NewIngestService(store, normalisers.Defaults())

	count, err := ingest.LoadDirectory(cmd.Context(), dir, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}

	logger.Info("Loaded %d utterances from %s", count, dir)
	return store, nil
}

// parseDateFlag turns a --date value into a filter. The literal
// "undated" selects utterances without a date.
func parseDateFlag(value string) (*domain.DateFilter, error) {
	if value == "" {
		return nil, nil
	}
	if strings.EqualFold(strings.TrimSpace(value), "undated") {
		return &domain.DateFilter{Undated: true}, nil
	}

	d, err := transcript.ParseDateLabel(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: %w", value, err)
	}
	return &domain.DateFilter{Date: d}, nil
}
