package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/auth"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/config"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/database"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/handler"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/payment"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/router"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/service"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting nfc-bracelet API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	adminRepo := repository.NewAdminRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	designRepo := repository.NewDesignOrderRepository(pool, logger)
	themeRepo := repository.NewThemeRepository(pool, logger)
	contentRepo := repository.NewContentRepository(pool, logger)
	statsRepo := repository.NewStatsRepository(pool, logger)

	// Token issuers for the customer and back-office audiences
	userTokens := auth.NewUserTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.UserTokenTTL)
	adminTokens := auth.NewAdminTokenIssuer(cfg.Auth.AdminJWTSecret, cfg.Auth.AdminTokenTTL)

	// Initialize media uploader with S3 and local fallback
	var uploader storage.Uploader
	if cfg.Storage.S3Enabled {
		s3Uploader, err := storage.NewS3Uploader(ctx, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 uploader, falling back to local file system")
			uploader, err = storage.NewLocalUploader(cfg.Storage.LocalDir, cfg.Storage.PublicURL, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize local uploader: %w", err)
			}
		} else {
			uploader = s3Uploader
		}
	} else {
		uploader, err = storage.NewLocalUploader(cfg.Storage.LocalDir, cfg.Storage.PublicURL, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize local uploader: %w", err)
		}
		logger.Info().Msg("using local file system for media uploads (S3 disabled)")
	}

	// Initialize payment gateway client
	gateway := payment.NewGateway(payment.Config{
		BaseURL:      cfg.Payment.BaseURL,
		MerchantID:   cfg.Payment.MerchantID,
		MerchantKey:  cfg.Payment.MerchantKey,
		MerchantSalt: cfg.Payment.MerchantSalt,
		CallbackURL:  cfg.Payment.CallbackURL,
	}, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, userTokens, logger)
	adminService := service.NewAdminService(adminRepo, userRepo, statsRepo, adminTokens, logger)
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, logger)
	designService := service.NewDesignService(designRepo, logger)
	themeService := service.NewThemeService(themeRepo, logger)
	contentService := service.NewContentService(contentRepo, themeRepo, cfg.NFC.BaseURL, logger)

	// Ensure the configured back-office account exists
	if err := adminService.Bootstrap(ctx, cfg.Auth.AdminEmail, "Administrator", cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(productService, logger),
		Cart:    handler.NewCartHandler(cartService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		Design:  handler.NewDesignHandler(designService, logger),
		Theme:   handler.NewThemeHandler(themeService, logger),
		Content: handler.NewContentHandler(contentService, logger),
		Admin:   handler.NewAdminHandler(adminService, logger),
		Upload:  handler.NewUploadHandler(uploader, logger),
		Payment: handler.NewPaymentHandler(gateway, logger),
	}

	// Initialize router
	mux := router.New(handlers, userTokens, adminTokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
