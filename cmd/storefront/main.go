package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cloudstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/handlers"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/auth"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/config"
	pfirestore "github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/firestore"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/observability"
	platformstorage "github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/storage"
	firestoreRepo "github.com/newindiatimbers8/new-india-timber-sub003/internal/repositories/firestore"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/seo"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/services"
)

var version = "dev"

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("storefront")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		var invalid *config.ValidationError
		if errors.As(err, &invalid) {
			logger.Fatal("invalid configuration", zap.Strings("fields", invalid.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	firestoreProvider := pfirestore.NewProvider(cfg.Firestore)
	defer func() {
		if err := firestoreProvider.Close(); err != nil {
			logger.Warn("firestore close error", zap.Error(err))
		}
	}()

	navigationRepo, err := firestoreRepo.NewNavigationRepository(firestoreProvider)
	if err != nil {
		logger.Fatal("failed to initialise navigation repository", zap.Error(err))
	}
	catalogRepo, err := firestoreRepo.NewCatalogRepository(firestoreProvider)
	if err != nil {
		logger.Fatal("failed to initialise catalog repository", zap.Error(err))
	}
	contentRepo, err := firestoreRepo.NewContentRepository(firestoreProvider)
	if err != nil {
		logger.Fatal("failed to initialise content repository", zap.Error(err))
	}
	settingsRepo, err := firestoreRepo.NewSettingsRepository(firestoreProvider)
	if err != nil {
		logger.Fatal("failed to initialise settings repository", zap.Error(err))
	}

	seoDefaults, err := loadSEODefaults(cfg.SEO)
	if err != nil {
		logger.Fatal("failed to load seo settings", zap.String("file", cfg.SEO.SettingsFile), zap.Error(err))
	}

	var sitemapPublisher services.SitemapPublisher
	if bucket := strings.TrimSpace(cfg.Storage.PublicBucket); bucket != "" {
		storageClient, err := cloudstorage.NewClient(ctx)
		if err != nil {
			logger.Fatal("failed to initialise storage client", zap.Error(err))
		}
		defer func() {
			if err := storageClient.Close(); err != nil {
				logger.Warn("storage close error", zap.Error(err))
			}
		}()
		publisher, err := platformstorage.NewPublisher(storageClient, bucket)
		if err != nil {
			logger.Fatal("failed to initialise sitemap publisher", zap.Error(err))
		}
		sitemapPublisher = publisher
	} else {
		logger.Info("storage bucket not configured; sitemap publishing disabled")
	}

	firebaseVerifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase)
	if err != nil {
		logger.Fatal("failed to initialise firebase verifier", zap.Error(err))
	}
	authenticator := auth.NewAuthenticator(firebaseVerifier)

	navigationMetrics, err := observability.NewNavigationMetrics(nil)
	if err != nil {
		logger.Fatal("failed to register navigation metrics", zap.Error(err))
	}

	navigationService, err := services.NewNavigationService(services.NavigationServiceDeps{
		Repository: navigationRepo,
		Clock:      time.Now,
		CacheTTL:   cfg.Navigation.CacheTTL,
		Metrics:    navigationMetrics,
		Logger:     logger.Named("navigation"),
	})
	if err != nil {
		logger.Fatal("failed to initialise navigation service", zap.Error(err))
	}

	seoService, err := services.NewSEOService(services.SEOServiceDeps{
		Catalog:       catalogRepo,
		Blog:          contentRepo,
		Pages:         contentRepo,
		Settings:      settingsRepo,
		Defaults:      seoDefaults,
		Publisher:     sitemapPublisher,
		SitemapObject: cfg.Storage.SitemapObject,
		Clock:         time.Now,
		Logger:        logger.Named("seo"),
	})
	if err != nil {
		logger.Fatal("failed to initialise seo service", zap.Error(err))
	}

	contentService, err := services.NewContentService(services.ContentServiceDeps{
		Blog:  contentRepo,
		Pages: contentRepo,
	})
	if err != nil {
		logger.Fatal("failed to initialise content service", zap.Error(err))
	}

	navigationHandlers := handlers.NewNavigationHandlers(navigationService)
	seoHandlers := handlers.NewSEOHandlers(seoService)
	contentHandlers := handlers.NewContentHandlers(contentService)

	healthHandlers := handlers.NewHealthHandlers(
		handlers.WithHealthVersion(version),
		handlers.WithReadinessCheck("firestore", firestoreReadiness(firestoreProvider)),
	)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger),
		observability.TraceMiddleware(cfg.Firestore.ProjectID),
		observability.RecoveryMiddleware(logger),
		observability.RequestLoggerMiddleware(),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithRootRoutes(seoHandlers.RootRoutes),
		handlers.WithPublicRoutes(handlers.CombineRegistrars(
			navigationHandlers.Routes,
			seoHandlers.Routes,
			contentHandlers.Routes,
		)),
		handlers.WithAdminRoutes(handlers.CombineRegistrars(
			navigationHandlers.AdminRoutes,
			seoHandlers.AdminRoutes,
		)),
		handlers.WithAdminMiddlewares(authenticator.RequireFirebaseAuth(cfg.Auth.AdminRoles...)),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("storefront listening", zap.String("version", version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loadSEODefaults reads the optional settings file over the built-in defaults. The configured
// canonical URL wins over both.
func loadSEODefaults(cfg config.SEOConfig) (domain.GlobalSEOSettings, error) {
	settings := seo.DefaultSettings()
	if path := strings.TrimSpace(cfg.SettingsFile); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return domain.GlobalSEOSettings{}, err
		}
		defer f.Close()
		settings, err = seo.LoadSettings(f, settings)
		if err != nil {
			return domain.GlobalSEOSettings{}, err
		}
	}
	if cfg.CanonicalURL != "" {
		settings.CanonicalURL = cfg.CanonicalURL
	}
	return settings, nil
}

func firestoreReadiness(provider *pfirestore.Provider) handlers.ReadinessCheck {
	return func(ctx context.Context) error {
		client, err := provider.Client(ctx)
		if err != nil {
			return err
		}
		iter := client.Collection("navigationMenus").Limit(1).Documents(ctx)
		defer iter.Stop()
		if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
			return err
		}
		return nil
	}
}
