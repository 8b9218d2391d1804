package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunaloops-storefront/config"
	"lunaloops-storefront/internal/delivery/http/middleware"
	v1 "lunaloops-storefront/internal/delivery/http/v1"
	"lunaloops-storefront/internal/infrastructure/cache"
	"lunaloops-storefront/internal/repository/memory"
	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const serviceName = "lunaloops-storefront"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)

	// Prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Catalog (read-only, loaded once)
	var catalogRepo *memory.CatalogRepository
	if cfg.CatalogFile != "" {
		catalogRepo, err = memory.NewCatalogRepositoryFromFile(cfg.CatalogFile)
	} else {
		catalogRepo, err = memory.NewDefaultCatalogRepository()
	}
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("Failed to load catalog")
	}

	pricingCfg, err := cfg.Pricing()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid pricing configuration")
	}
	logger.Info().
		Str("profile", cfg.PricingProfile).
		Str("free_shipping_threshold", pricingCfg.FreeShippingThreshold.String()).
		Str("flat_shipping_fee", pricingCfg.FlatShippingFee.String()).
		Msg("Pricing configured")

	// Session store: idle sessions expire after SessionTTL
	sessionCache := cache.NewMemoryCache(cfg.SessionTTL, cfg.SessionCleanupInterval)
	sessionCache.OnEvicted(func(key string, _ interface{}) {
		logger.Debug().Str("key", key).Msg("Session evicted")
	})
	sessionRepo := memory.NewSessionRepository(sessionCache)

	// --- Modules Initialization ---
	sessionUC := usecase.NewSessionUsecase(sessionRepo, pricingCfg)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	cartUC := usecase.NewCartUsecase(catalogRepo, cfg.StrictLookups)
	wishlistUC := usecase.NewWishlistUsecase(catalogRepo, cfg.StrictLookups)
	navUC := usecase.NewNavigationUsecase(catalogUC)

	mux := http.NewServeMux()
	v1.RegisterRoutes(mux, v1.Handlers{
		Session:    v1.NewSessionHandler(sessionUC, cfg.SessionTTL),
		Catalog:    v1.NewCatalogHandler(catalogUC),
		Cart:       v1.NewCartHandler(cartUC),
		Wishlist:   v1.NewWishlistHandler(wishlistUC),
		Navigation: v1.NewNavigationHandler(navUC),
		Config:     v1.NewConfigHandler(pricingCfg),
	}, middleware.NewSessionMiddleware(sessionUC))

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Cleanup every minute, forget idle clients after 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS, Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg.AllowedOrigin)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, cfg.Env, cfg.Port)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}
