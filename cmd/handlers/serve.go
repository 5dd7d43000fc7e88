package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fluidcontent/internal/artifacts"
	"fluidcontent/internal/config"
	"fluidcontent/internal/interactive"
	"fluidcontent/internal/llm"
	"fluidcontent/internal/logger"
	"fluidcontent/internal/personalize"
	"fluidcontent/internal/server"
	"fluidcontent/internal/store"
	"fluidcontent/internal/tags"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command for starting the HTTP server
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the fluidcontent API server.

The server provides:
  • Content adaptation, tag extraction and interactive HTML endpoints
  • Voice selection for narration
  • REST API for users, articles, achievements and configuration
  • Health check and status endpoints

Examples:
  # Start server on default port 8080
  fluidcontent serve

  # Start on custom port
  fluidcontent serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	log := logger.Get()
	log.Info("Starting HTTP server")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override server config from flags if provided
	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	st, err := store.NewStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	llmClient, err := llm.NewClient(cfg.AI.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w\n\n"+
			"The server requires a Gemini API key. Please set GEMINI_API_KEY\n"+
			"or ai.gemini.api_key in .fluidcontent.yaml", err)
	}
	defer llmClient.Close()

	deps := server.Deps{
		Adapter:   personalize.NewAdapter(llmClient),
		Tagger:    tags.NewExtractor(llmClient),
		Generator: interactive.NewGenerator(llmClient, cfg.AI.Gemini.HTMLModel),
		Writer:    artifacts.NewWriter(cfg.Artifacts.OutputDir),
	}

	srv := server.New(st, serverCfg, deps)

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info(fmt.Sprintf("Server listening on http://%s:%d", serverCfg.Host, serverCfg.Port))
		log.Info("Press Ctrl+C to stop")
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("Server shutdown initiated", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed, forcing close", "error", err)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Info("Server stopped successfully")
	}

	return nil
}
