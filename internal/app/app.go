package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/you/scandine/internal/config"
	httpx "github.com/you/scandine/internal/http"
	"github.com/you/scandine/internal/http/handlers"
	"github.com/you/scandine/internal/http/middleware"
	"github.com/you/scandine/internal/infrastructure/auth"
	"github.com/you/scandine/internal/infrastructure/cache"
	"github.com/you/scandine/internal/infrastructure/database"
	"github.com/you/scandine/internal/infrastructure/notifications"
	"github.com/you/scandine/internal/infrastructure/qr"
	"github.com/you/scandine/internal/infrastructure/repositories"
	"github.com/you/scandine/internal/services"
)

// Run builds every dependency explicitly, starts the HTTP server, and shuts
// down gracefully on SIGINT/SIGTERM. Connections are constructed once here
// and injected; nothing holds process-global state.
func Run(cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	mailer := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, logger)
	sms := notifications.NewTwilioSMSSender(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, logger)
	notifier := notifications.NewDispatcher(mailer, sms, cfg.MailTimeout)
	qrGen := qr.NewGenerator()

	// Repositories and cache
	userRepo := repositories.NewUserRepository(gdb)
	cafeRepo := repositories.NewCafeRepository(gdb)
	menuRepo := repositories.NewMenuRepository(gdb)
	blacklist := repositories.NewTokenBlacklist(rdb)
	cacheStore := cache.NewRedisCache(rdb)

	// Services
	authSvc := services.NewAuthService(userRepo, cafeRepo, menuRepo, passwordSvc, tokenSvc, blacklist, notifier,
		cacheStore, cfg.OTP_TTL, cfg.OTP_Length, cfg.TokenTTL, logger)
	cafeSvc := services.NewCafeService(cafeRepo, qrGen, notifier, cfg.PublicMenuBase, logger)
	menuSvc := services.NewMenuService(menuRepo, cacheStore, logger)
	publicSvc := services.NewPublicService(cafeRepo, menuRepo, cacheStore, cfg.CacheCafesTTL, cfg.CacheMenuTTL, logger)

	// Handlers and middleware
	userH := handlers.NewUserHandlers(authSvc, cfg.TokenTTL)
	cafeH := handlers.NewCafeHandlers(cafeSvc)
	menuH := handlers.NewMenuHandlers(menuSvc)
	publicH := handlers.NewPublicHandlers(publicSvc)
	authMW := middleware.NewAuthMW(tokenSvc, userRepo, blacklist, logger)
	cafeMW := middleware.NewCafeAuthMW(cafeRepo, logger)

	r := httpx.BuildRouter(httpx.RouterConfig{AllowedOrigins: cfg.AllowedOrigins},
		userH, cafeH, menuH, publicH, authMW, cafeMW)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if err := rdb.Close(); err != nil {
		logger.Warn("redis close failed", "error", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("database close failed", "error", err)
		}
	}

	logger.Info("shutdown complete")
	return nil
}
