package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"healthquest/backend/internal/api"
	"healthquest/backend/internal/config"
	"healthquest/backend/internal/database"
	"healthquest/backend/internal/llm"
	"healthquest/backend/internal/repository"
	"healthquest/backend/internal/service"
	"healthquest/backend/internal/store"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this
		// critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	slots, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return 1
	}
	defer closeStore()

	// The stores load once at startup; from here the in-memory state is
	// authoritative and every mutation snapshots back to its slot.
	ctx := context.Background()
	profileStore := store.NewProfileStore(slots)
	profileStore.Load(ctx)
	sessionStore := store.NewSessionStore(slots)
	sessionStore.Load(ctx)

	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set; sends will fail until it is configured")
	}
	provider := llm.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel)

	conversationService := service.NewConversationService(sessionStore, profileStore, provider)
	profileService := service.NewProfileService(profileStore)

	chatHandler := api.NewChatHandler(conversationService)
	profileHandler := api.NewProfileHandler(profileService)
	router := api.NewRouter(chatHandler, profileHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled: the send endpoint waits on Gemini.
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort, "storage", cfg.StorageBackend)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

// openStore builds the configured persistence substrate and returns it
// with its cleanup func.
func openStore(cfg *config.Config) (repository.Store, func(), error) {
	switch strings.ToLower(cfg.StorageBackend) {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Connected to Redis", "addr", cfg.RedisAddr)
		return repository.NewRedisStore(rdb), func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close redis client", "error", err)
			}
		}, nil

	case "sqlite":
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Connected to SQLite database", "path", cfg.DatabasePath)
		return repository.NewSQLiteStore(db), func() {
			if err := db.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
