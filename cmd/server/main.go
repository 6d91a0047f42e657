package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/nogueira-gui/conecta-apiserver/internal/config"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler"
	infradb "github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/database"
	"github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/llm"
	"github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/memory"
	"github.com/nogueira-gui/conecta-apiserver/internal/intent"
	"github.com/nogueira-gui/conecta-apiserver/internal/router"
	"github.com/nogueira-gui/conecta-apiserver/internal/usecase"
	dbpkg "github.com/nogueira-gui/conecta-apiserver/pkg/database"
	"github.com/nogueira-gui/conecta-apiserver/pkg/logger"
)

//	@title			Conecta60+ API Server
//	@version		0.1.0
//	@description	Companion API for elderly care: intent-aware chat assistant, health reminders, contact directory and help center
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Token in format: Bearer {token}

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "conecta-apiserver",
	Short: "Conecta60+ API server",
	Long: `Conecta60+ API server is a high-performance HTTP API built with the Hertz framework.
It serves the companion chat assistant, health reminders, the contact directory and the help center.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("Conecta60+ API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz's own logging through slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	// Initialize database
	dbClient, sqlDB, err := dbpkg.NewClient(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// User components
	userRepo := infradb.NewUserRepository(dbClient)
	userUsecase := usecase.NewUserUsecase(userRepo, slog.Default())
	userHandler := handler.NewUserHandler(userUsecase, cfg.JWT.Secret, slog.Default())

	// Reminder components
	reminderRepo := infradb.NewReminderRepository(dbClient)
	reminderUsecase := usecase.NewReminderUsecase(reminderRepo, slog.Default())
	reminderHandler := handler.NewReminderHandler(reminderUsecase, slog.Default())

	// Contact components
	contactRepo := infradb.NewContactRepository(dbClient)
	contactUsecase := usecase.NewContactUsecase(contactRepo, slog.Default())
	contactHandler := handler.NewContactHandler(contactUsecase, slog.Default())

	// Support components
	ticketRepo := infradb.NewTicketRepository(dbClient)
	supportUsecase := usecase.NewSupportUsecase(ticketRepo, slog.Default())
	supportHandler := handler.NewSupportHandler(supportUsecase, slog.Default())

	// Chat components
	assistant, err := llm.NewClient(llm.Config{
		APIKey:      cfg.Assistant.APIKey,
		BaseURL:     cfg.Assistant.BaseURL,
		Model:       cfg.Assistant.Model,
		Temperature: cfg.Assistant.Temperature,
		MaxTokens:   cfg.Assistant.MaxTokens,
		Timeout:     cfg.Assistant.Timeout,
	}, slog.Default())
	if err != nil {
		slog.Error("failed to create assistant client", "error", err)
		os.Exit(1)
	}

	// Reminder drafts extracted from chat turns become pending reminders.
	onReminder := func(ctx context.Context, userID string, draft *entity.ReminderDraft) {
		if _, err := reminderUsecase.CreateFromDraft(ctx, userID, draft); err != nil {
			slog.Error("failed to create reminder from chat draft",
				"user_id", userID, "error", err)
		}
	}

	sessionStore := memory.NewSessionStore()
	chatUsecase := usecase.NewChatUsecase(
		assistant,
		sessionStore,
		intent.NewClassifier(),
		domain.ReminderIntentFunc(onReminder),
		slog.Default(),
	)
	// Expired sessions close through the usecase so pending reminder
	// hand-offs are cancelled with them.
	sessionStore.OnEvict(func(sessionID string) {
		if err := chatUsecase.CloseSession(context.Background(), sessionID); err != nil {
			slog.Warn("failed to close expired chat session",
				"session_id", sessionID, "error", err)
		}
	})
	chatHandler := handler.NewChatHandler(chatUsecase, contactUsecase, slog.Default())

	healthHandler := handler.NewHealthHandler(sqlDB)

	slog.Info("handlers initialized")

	// Create Hertz server
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, userHandler, chatHandler, reminderHandler, contactHandler, supportHandler, healthHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	sessionStore.Close()

	if err := dbClient.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	} else {
		slog.Info("database closed successfully")
	}

	slog.Info("server stopped gracefully")
}
