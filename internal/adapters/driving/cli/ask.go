package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/balsas-labs/stenograma-cli/internal/adapters/driven/config/file"
	"github.com/balsas-labs/stenograma-cli/internal/adapters/driven/llm/ollama"
	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driving"
	"github.com/balsas-labs/stenograma-cli/internal/core/services"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
)

// EnvModel overrides the model name when set.
const EnvModel = "STENOGRAMA_MODEL"

var (
	askSpeaker  string
	askQuery    string
	askDate     string
	askDryRun   bool
	askMaxChars int
	askModel    string
)

var askCmd = &cobra.Command{
	Use:   "ask DOCS_DIR",
	Short: "Answer a question using transcript context",
	Long: `Loads every transcript in DOCS_DIR, retrieves the utterances of
the given speaker relevant to the query, and asks the local model.

With --dry-run the assembled prompt is printed instead of being sent.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askSpeaker, "speaker", "s", "", "speaker whose utterances form the context")
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "question to answer")
	askCmd.Flags().StringVarP(&askDate, "date", "d", "", `date filter (e.g. 2024-05-16, "2024 m. gegužės 16 d.", or "undated")`)
	askCmd.Flags().BoolVar(&askDryRun, "dry-run", false, "print the prompt instead of calling the model")
	askCmd.Flags().IntVar(&askMaxChars, "max-chars", 0, "context character budget (default 4000)")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "Ollama model name")
	askCmd.MarkFlagRequired("speaker")
	askCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	dateFilter, err := parseDateFlag(askDate)
	if err != nil {
		return err
	}

	store, err := loadCorpus(cmd, args[0])
	if err != nil {
		return err
	}

	var llm driven.LLMService
	if !askDryRun {
		llm = newLLMFromSettings()
		defer llm.Close()
	}

	ask := services.NewAskService(services.NewRetrieveService(store), llm)

	resp, err := ask.Ask(cmd.Context(), driving.AskRequest{
		Speaker:  askSpeaker,
		Date:     dateFilter,
		Query:    askQuery,
		MaxChars: maxCharsFromSettings(askMaxChars),
		DryRun:   askDryRun,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return fmt.Errorf("model unavailable: %w", err)
		}
		return err
	}

	if !resp.Found {
		cmd.Printf("No context found for speaker %q.\n", askSpeaker)
		return nil
	}

	if resp.Fallback {
		logger.Info("No lexical match for query; using most recent context")
	}

	if askDryRun {
		cmd.Println(resp.Prompt)
		return nil
	}

	cmd.Println(resp.Answer)
	return nil
}

// newLLMFromSettings builds the Ollama client from flag, environment,
// and config file, in that order of precedence.
func newLLMFromSettings() *ollama.LLMService {
	cfg := ollama.Config{Model: askModel}
	if cfg.Model == "" {
		cfg.Model = os.Getenv(EnvModel)
	}

	if store, err := configfile.NewConfigStore(""); err == nil {
		cfg.BaseURL = store.GetString(configfile.KeyOllamaURL)
		if cfg.Model == "" {
			cfg.Model = store.GetString(configfile.KeyModel)
		}
	} else {
		logger.Warn("Config unavailable: %v", err)
	}

	return ollama.NewLLMService(cfg)
}

// maxCharsFromSettings resolves the context budget: flag, then config,
// then the built-in default applied by the retriever.
func maxCharsFromSettings(flag int) int {
	if flag > 0 {
		return flag
	}
	if store, err := configfile.NewConfigStore(""); err == nil {
		if n := store.GetInt(configfile.KeyMaxChars); n > 0 {
			return n
		}
	}
	return 0
}
