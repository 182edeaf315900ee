package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/Giftwish/internal/config"
	"github.com/Dias221467/Giftwish/internal/database"
	"github.com/Dias221467/Giftwish/internal/feed"
	"github.com/Dias221467/Giftwish/internal/handlers"
	"github.com/Dias221467/Giftwish/internal/jobs"
	"github.com/Dias221467/Giftwish/internal/metrics"
	"github.com/Dias221467/Giftwish/internal/mockdata"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/internal/repository/memory"
	"github.com/Dias221467/Giftwish/internal/repository/mongodb"
	"github.com/Dias221467/Giftwish/internal/scheduler"
	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/rs/cors"
)

type repositories struct {
	users      repository.UserRepository
	wishlists  repository.WishlistRepository
	activities repository.ActivityRepository
}

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Info("Logger initialized")

	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Configuration error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Repositories ---
	var repos repositories
	switch cfg.DataSource {
	case config.DataSourceMongo:
		db, err := database.ConnectDB(ctx, cfg)
		if err != nil {
			logger.Log.WithError(err).Fatal("Database connection error")
		}
		defer database.Disconnect(context.Background(), db)

		repos = repositories{
			users:      mongodb.NewUserRepository(db),
			wishlists:  mongodb.NewWishlistRepository(db),
			activities: mongodb.NewActivityRepository(db),
		}
	default:
		store := memory.NewStore(mockdata.Default())
		repos = repositories{
			users:      store.Users(),
			wishlists:  store.Wishlists(),
			activities: store.Activities(),
		}
	}
	logger.Log.WithField("data_source", cfg.DataSource).Info("Repositories ready")

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	presenter, err := feed.NewPresenter(cfg.Locale, cfg.Currency)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create feed presenter")
	}

	// --- Services ---
	wishlistService := services.NewWishlistService(repos.wishlists, cfg.Currency, cfg.Locale)
	userService := services.NewUserService(repos.users, wishlistService)
	activityService := services.NewActivityService(repos.activities, repos.users, presenter)
	actionService := services.NewActionService(repos.wishlists, repos.users, m)

	// --- Handlers ---
	routes := handlers.Router{
		Wishlists: handlers.NewWishlistHandler(wishlistService),
		Feed:      handlers.NewFeedHandler(activityService, time.Now),
		Users:     handlers.NewUserHandler(userService),
		Actions:   handlers.NewActionHandler(actionService),
	}
	if m != nil {
		routes.Metrics = m.Handler()
	}
	router := handlers.NewRouter(routes)

	// --- Jobs ---
	digest := jobs.NewFundingDigest(repos.wishlists, m)
	c, err := scheduler.StartDigestCron(ctx, cfg.DigestSchedule, scheduler.JobFunc(func(ctx context.Context) error {
		_, err := digest.Run(ctx)
		return err
	}))
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to schedule funding digest")
	}
	if c != nil {
		defer c.Stop()
		// populate the gauges before the first tick
		go func() {
			if _, err := digest.Run(ctx); err != nil {
				logger.Log.WithError(err).Error("Initial funding digest failed")
			}
		}()
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
}
