package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
	"github.com/rohitsharma/rohitai/backend/internal/config"
	"github.com/rohitsharma/rohitai/backend/internal/handler"
	"github.com/rohitsharma/rohitai/backend/internal/logging"
	"github.com/rohitsharma/rohitai/backend/internal/model/profile"
	"github.com/rohitsharma/rohitai/backend/internal/service/chat"
	"github.com/rohitsharma/rohitai/backend/internal/service/responder"
	"github.com/rohitsharma/rohitai/backend/internal/service/rules"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rohitai: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("failed to load .env file, continuing with system environment", zap.Error(envErr))
	}

	dispatcher := intent.Default()
	if cfg.Chat.RulesFile != "" {
		dispatcher, err = intent.LoadFile(cfg.Chat.RulesFile)
		if err != nil {
			return err
		}
		logger.Info("loaded rule file", zap.String("path", cfg.Chat.RulesFile), zap.Int("rules", len(dispatcher.Rules())))
	}

	responderSvc, err := responder.NewService(ctx, dispatcher, logger)
	if err != nil {
		return err
	}

	chatSvc := chat.NewService(responderSvc, chat.Options{
		ThinkingDelay: cfg.Chat.ThinkingDelay,
		Greeting:      cfg.Chat.Greeting,
		MaxSessions:   cfg.Chat.MaxSessions,
		Logger:        logger,
	})

	router := handler.NewRouter(handler.Deps{
		Profiles:       profile.NewMemoryStore(profile.Seed()),
		Chat:           chatSvc,
		Answerer:       responderSvc,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	var watcher *rules.Watcher
	if cfg.Chat.RulesFile != "" && cfg.Chat.WatchRules {
		watcher, err = rules.NewWatcher(cfg.Chat.RulesFile, responderSvc.SetDispatcher, logger)
		if err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("RohitAI backend listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown incomplete", zap.Error(err))
		}
		if err := chatSvc.Drain(shutdownCtx); err != nil {
			logger.Warn("pending replies dropped at shutdown", zap.Error(err))
		}
		return nil
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("RohitAI backend stopped")
	return nil
}
