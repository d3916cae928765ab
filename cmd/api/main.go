package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "taskflow/internal/adapter/http"
	"taskflow/internal/adapter/http/handlers"
	httpmiddleware "taskflow/internal/adapter/http/middleware"
	appservice "taskflow/internal/app/service"
	"taskflow/internal/config"
	"taskflow/pkg/clock"
	"taskflow/pkg/translator"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path of the .env file to load")
	migrate := pflag.Bool("migrate", false, "apply the embedded schema before serving")
	pflag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePt},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, *migrate || cfg.DbMigrate)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	clk := clock.Real()
	authService := appservice.NewAuthService(store.users)

	r := gin.New()
	r.Use(httpmiddleware.GinZapMiddleware(logger), httpmiddleware.RecoveryMiddleware())
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(store.pinger, handlers.AppInfo{
			Name:    cfg.AppName,
			Version: cfg.AppVersion,
			Driver:  cfg.DbDriver,
		}, clk),
		Users:    handlers.NewUserHandler(appservice.NewUserService(store.users)),
		Auth:     handlers.NewAuthHandler(authService),
		Tasks:    handlers.NewTaskHandler(appservice.NewTaskService(store.tasks, clk)),
		Identity: httpmiddleware.IdentityMiddleware(authService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("driver", cfg.DbDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced server shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
