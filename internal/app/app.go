package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"devgate/internal/config"
	"devgate/internal/handlers"
	"devgate/internal/logging"
	"devgate/internal/metrics"
	"devgate/internal/repositories"
	"devgate/internal/routes"
	"devgate/internal/services"
)

const shutdownTimeout = 15 * time.Second

func Run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// === Telegram ===
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("telegram login: %w", err)
	}
	bot.Debug = cfg.Telegram.Debug
	logger.Info("authorized on telegram", "bot", bot.Self.UserName, "bot_id", bot.Self.ID)

	// === DB (optional history) ===
	var outcomeRepo repositories.VerificationOutcomeRepository
	if cfg.Database.DSN != "" {
		db, err := openDB(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("db close failed", "error", err)
			}
		}()
		outcomeRepo = repositories.NewVerificationOutcomeRepository(db)
		if err := outcomeRepo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	} else {
		logger.Info("database url not set, verification history disabled")
	}

	// === Services ===
	m := metrics.New(nil)
	gateway := services.NewTelegramGateway(bot, logger.With("component", "gateway"))
	opts := []services.Option{
		services.WithLogger(logger.With("component", "verification")),
		services.WithMetrics(m),
		services.WithBotID(bot.Self.ID),
		services.WithTimeout(cfg.Verification.Timeout()),
		services.WithCleanupDelay(cfg.Verification.CleanupDelay()),
	}
	if outcomeRepo != nil {
		opts = append(opts, services.WithOutcomeRecorder(outcomeRepo))
	}
	verification, err := services.NewVerificationService(
		repositories.NewVerificationRegistry(),
		repositories.NewMessageLedger(),
		gateway,
		services.NewQuestionBank(cfg.Verification.Questions),
		opts...,
	)
	if err != nil {
		return err
	}
	outcomes := services.NewOutcomeService(outcomeRepo)

	// === Handlers ===
	updatesHandler := handlers.NewUpdatesHandler(verification, gateway, outcomes, logger.With("component", "updates"))
	verificationHandler := handlers.NewVerificationHandler(outcomes, verification)
	var webhookHandler *handlers.WebhookHandler
	if cfg.Telegram.Mode == config.ModeWebhook {
		webhookHandler = handlers.NewWebhookHandler(updatesHandler)
	}

	// === Gin ===
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, verificationHandler, webhookHandler, cfg.Server.APISecret)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srvErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	// === Updates ===
	switch cfg.Telegram.Mode {
	case config.ModeWebhook:
		if err := registerWebhook(bot, cfg.Telegram.WebhookURL); err != nil {
			return err
		}
		logger.Info("receiving updates via webhook", "url", cfg.Telegram.WebhookURL)
		select {
		case <-ctx.Done():
		case err := <-srvErr:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
		}
	default:
		if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			logger.Warn("delete webhook failed", "error", err)
		}
		logger.Info("receiving updates via long polling")
		poll(ctx, bot, cfg.Telegram.PollTimeout, updatesHandler)
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown failed", "error", err)
	}
	if err := verification.Shutdown(shutdownCtx); err != nil {
		logger.Warn("verification cleanup did not finish", "error", err)
	}
	return nil
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func registerWebhook(bot *tgbotapi.BotAPI, url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("webhook config: %w", err)
	}
	if _, err := bot.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	return nil
}
