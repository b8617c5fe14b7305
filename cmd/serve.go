package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voxnote/study-api/api"
	"github.com/voxnote/study-api/api/types"
	"github.com/voxnote/study-api/internal/database"
	"github.com/voxnote/study-api/internal/services/auth"
	"github.com/voxnote/study-api/internal/services/blobstore"
	"github.com/voxnote/study-api/internal/services/chat"
	"github.com/voxnote/study-api/internal/services/genai"
	"github.com/voxnote/study-api/internal/services/insights"
	"github.com/voxnote/study-api/internal/services/records"
	"github.com/voxnote/study-api/internal/services/transcriber"
	"github.com/voxnote/study-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the VoxNote Study API server with the configured settings.

The server accepts audio transcription requests, generates study
artifacts (summaries, flashcards, quizzes) and answers context-bound
chat questions about transcripts.

Example:
  study-api serve
  study-api serve --port 9090
  study-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	deps, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting VoxNote Study API server on %s\n", address)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", address)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires every service the handlers need. The provider
// client is constructed once here and shared.
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, error) {
	verifier, err := buildVerifier(cfg)
	if err != nil {
		return nil, err
	}

	backend, err := blobstore.NewLocalBackend(cfg.Storage.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	gateway := blobstore.NewGateway(backend, cfg.Storage.TempDir)

	client, err := genai.NewClient(genai.Config{
		APIKey:            cfg.AI.OpenAIAPIKey,
		BaseURL:           cfg.AI.BaseURL,
		ChatModel:         cfg.AI.ChatModel,
		TranscribeModel:   cfg.AI.TranscribeModel,
		RequestTimeout:    cfg.AI.RequestTimeout,
		TranscribeTimeout: cfg.AI.TranscribeTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider client: %w", err)
	}

	recordService := records.NewService(records.NewRepository(db.DB))

	return &types.Dependencies{
		DB:             db,
		Verifier:       verifier,
		Gateway:        gateway,
		RecordService:  recordService,
		Transcriber:    transcriber.NewService(gateway, client, client, recordService),
		InsightService: insights.NewService(client, recordService),
		ChatService:    chat.NewService(client),
	}, nil
}

// buildVerifier picks the identity verifier for the current environment
func buildVerifier(cfg *config.Config) (auth.Verifier, error) {
	if cfg.Auth.JWKSURL != "" {
		service, err := auth.NewService(cfg.Auth.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize identity verifier: %w", err)
		}
		if cfg.Auth.DevAuthEnabled {
			service.SetDevAuth(true, cfg.Auth.DevAuthToken)
		}
		return service, nil
	}

	if cfg.Auth.DevAuthEnabled {
		fmt.Println("WARNING: running with dev auth only; do not use in production")
		return auth.NewDevService(cfg.Auth.DevAuthToken), nil
	}

	return nil, fmt.Errorf("auth.jwks_url is required unless dev auth is enabled")
}
