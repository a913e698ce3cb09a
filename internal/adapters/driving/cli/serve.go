package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/balsas-labs/stenograma-cli/internal/adapters/driven/config/file"
	"github.com/balsas-labs/stenograma-cli/internal/adapters/driven/storage/memory"
	"github.com/balsas-labs/stenograma-cli/internal/adapters/driven/transcription/whisper"
	"github.com/balsas-labs/stenograma-cli/internal/adapters/driven/youtube"
	"github.com/balsas-labs/stenograma-cli/internal/adapters/driving/web"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/core/services"
	"github.com/balsas-labs/stenograma-cli/internal/logger"
	"github.com/balsas-labs/stenograma-cli/internal/normalisers"
)

var (
	serveAddr  string
	serveModel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Starts a local web server where transcripts can be uploaded (or
pulled from YouTube and transcribed) and questions asked per browser
session. All state lives in memory and is dropped on exit.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "127.0.0.1:8080", "listen address")
	serveCmd.Flags().StringVarP(&serveModel, "model", "m", "", "Ollama model name")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	askModel = serveModel
	llm := newLLMFromSettings()
	defer llm.Close()

	ytCfg := youtube.Config{}
	whisperCfg := whisper.Config{}
	if store, err := configfile.NewConfigStore(""); err == nil {
		ytCfg.YtdlpBin = store.GetString(configfile.KeyYtdlpBin)
		whisperCfg.Binary = store.GetString(configfile.KeyWhisperBin)
	} else {
		logger.Warn("Config unavailable: %v", err)
	}

	sessions := services.NewSessionManager(normalisers.Defaults(), llm, func() driven.CorpusStore {
		return memory.NewCorpusStore()
	})

	server := web.NewServer(web.Config{Addr: serveAddr}, sessions,
		youtube.NewResolver(ytCfg),
		whisper.NewTranscriber(whisperCfg))

	// Shut down cleanly on interrupt.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Warn("Shutdown: %v", err)
		}
	}()

	cmd.Printf("Listening on http://%s\n", serveAddr)
	return server.Start()
}
