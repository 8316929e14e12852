package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/config"
	apphttp "propertysource-web/internal/http"
	"propertysource-web/internal/metrics"
	"propertysource-web/internal/repository/sqlite"
	"propertysource-web/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	configureLogger(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Session.DBPath)
	if err != nil {
		logger.Fatalf("open session database: %v", err)
	}
	defer db.Close()

	sessionRepo := sqlite.NewSessionRepository(db)
	if err := sessionRepo.Init(ctx); err != nil {
		logger.Fatalf("init session repository: %v", err)
	}

	client := backend.NewClient(backend.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  logger,
	})

	readyChecks := map[string]apphttp.ReadyCheck{
		"sessions": sessionRepo.Ping,
	}

	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis ping failed, continuing: %v", err)
		}
		client.UseRedisCache(rdb, cfg.Cache.UniversitiesTTL)
		readyChecks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
		logger.Infof("caching universities in redis at %s", cfg.Cache.RedisAddr)
	}

	if cfg.Metrics.Enabled {
		metrics.Register()
	}

	sessions := service.NewSessionService(sessionRepo, logger)
	go sessions.RunPurger(ctx, cfg.Session.PurgeInterval)

	var csrfKey []byte
	if cfg.Security.CSRFKey != "" {
		csrfKey = []byte(cfg.Security.CSRFKey)
	} else {
		logger.Warn("csrf protection disabled: security.csrfkey is empty")
	}

	gin.SetMode(gin.ReleaseMode)
	router, err := apphttp.NewEngine(cfg.Server.TrustedProxies)
	if err != nil {
		logger.Fatalf("build router: %v", err)
	}

	handler, err := apphttp.NewHandler(apphttp.Services{
		Accounts: service.NewAccountService(client, sessions, logger),
		Sessions: sessions,
		Catalog:  service.NewCatalogService(client, cfg.Backend.SeedOnEmpty, logger),
		Bookings: service.NewBookingService(client, logger),
		Landlord: service.NewLandlordService(client),
		Admin:    service.NewAdminService(client),
	}, apphttp.Options{
		CookieName:     cfg.Session.CookieName,
		SecureCookie:   cfg.Session.Secure,
		CSRFKey:        csrfKey,
		AuthPerMinute:  cfg.RateLimit.PerMinute,
		AuthBurst:      cfg.RateLimit.Burst,
		MetricsEnabled: cfg.Metrics.Enabled,
		ReadyChecks:    readyChecks,
		Logger:         logger,
	})
	if err != nil {
		logger.Fatalf("build handler: %v", err)
	}
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("listening on %s (backend %s)", cfg.Server.Addr, cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func configureLogger(logger *logrus.Logger, cfg config.Config) {
	if strings.EqualFold(cfg.Log.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}
