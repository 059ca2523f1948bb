package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/auth"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/config"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/messaging"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/metrics"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/middleware"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/notification"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/repository"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/router"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/scheduler"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/session"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/streaming"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "migrations"

type App struct {
	cfg           *config.Config
	log           logger.Logger
	db            *dbpg.DB
	redis         *redis.Client
	httpServer    *http.Server
	metricsServer *http.Server
	msgRouter     *messaging.Router
	scheduler     *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"FanFirst",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		PoolSize: a.cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	purchaseRepo := repository.NewPurchaseRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	registry := metrics.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	wmLogger := messaging.NewLogger(a.log)

	pub, err := messaging.NewRedisPublisher(a.redis, wmLogger)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}
	publisher, err := messaging.NewPublisher(pub, wmLogger)
	if err != nil {
		return fmt.Errorf("init event bus: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.msgRouter, err = messaging.NewRouter(messaging.RouterDeps{
		Logger:      wmLogger,
		Subscribers: messaging.RedisSubscribers(a.redis, wmLogger),
		Handler:     messaging.NewHandler(userRepo, eventRepo, n, a.log),
		MaxRetries:  a.cfg.Messaging.MaxRetries,
	})
	if err != nil {
		return fmt.Errorf("init message router: %w", err)
	}

	sessions := session.NewStore(a.redis, a.cfg.Session.TTL, a.cfg.Session.StateTTL)
	hasher := auth.NewBcryptHasher(auth.DefaultCost)
	authenticator := auth.NewLocalAuthenticator(userRepo, hasher)
	providers := a.streamingProviders()

	eventService := service.NewEventService(eventRepo, a.log)
	purchaseService := service.NewPurchaseService(purchaseRepo, eventRepo, publisher, recorder, a.cfg.Purchase.PendingTTL, a.log)
	authService := service.NewAuthService(userRepo, hasher, authenticator, sessions, a.log)
	linkService := service.NewLinkService(providers, sessions, userRepo, a.log)
	streamingService := service.NewStreamingService(providers, userRepo, a.log)
	dashboardService := service.NewDashboardService(userRepo, ticketRepo, eventRepo)

	a.scheduler = scheduler.New(
		purchaseService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Events:    eventService,
		Purchases: purchaseService,
		Auth:      authService,
		Links:     linkService,
		Streaming: streamingService,
		Dashboard: dashboardService,
	}, handler.CookieConfig{
		Name:   a.cfg.Session.CookieName,
		Domain: a.cfg.Session.CookieDomain,
		MaxAge: a.cfg.Session.TTL,
		Secure: a.cfg.Session.Secure,
	})

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			AuthRateLimit: middleware.RateLimit(a.redis, "auth", a.cfg.RateLimit.AuthLimit, a.cfg.RateLimit.AuthWindow, a.log),
			RequireAuth:   middleware.RequireAuth(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(recorder),
		middleware.CORS(a.cfg.CORS.Origins),
		middleware.Authenticate(sessions, a.cfg.Session.CookieName, a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	if a.cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(registry))
		a.metricsServer = &http.Server{
			Addr:              a.cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
		}
	}

	return nil
}

func (a *App) streamingProviders() service.Providers {
	providers := service.Providers{}
	opts := streaming.Options{
		HTTPClient: &http.Client{Timeout: a.cfg.Streaming.RequestTimeout},
		Cache:      streaming.NewRedisCache(a.redis, a.cfg.Streaming.CacheTTL),
		MaxRetries: a.cfg.Streaming.MaxRetries,
	}

	if c := a.cfg.OAuth.Spotify; c.Enabled() {
		providers[domain.ProviderSpotify] = service.Provider{
			OAuth: auth.NewSpotifyProvider(auth.OAuthConfig{
				ClientID:     c.ClientID,
				ClientSecret: c.ClientSecret,
				RedirectURL:  c.RedirectURL,
				Scopes:       c.Scopes,
			}),
			API: streaming.NewSpotify(a.cfg.Streaming.SpotifyBaseURL, opts, a.log),
		}
	} else {
		a.log.Warn("spotify oauth is not configured, linking disabled")
	}

	if c := a.cfg.OAuth.YouTube; c.Enabled() {
		providers[domain.ProviderYouTube] = service.Provider{
			OAuth: auth.NewYouTubeProvider(auth.OAuthConfig{
				ClientID:     c.ClientID,
				ClientSecret: c.ClientSecret,
				RedirectURL:  c.RedirectURL,
				Scopes:       c.Scopes,
			}),
			API: streaming.NewYouTube(a.cfg.Streaming.YouTubeBaseURL, opts, a.log),
		}
	} else {
		a.log.Warn("youtube oauth is not configured, linking disabled")
	}

	return providers
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("message router: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.scheduler.Start(runCtx)
		return nil
	})

	g.Go(func() error {
		// HTTP стартует только после подписки обработчиков
		select {
		case <-a.msgRouter.Running():
		case <-runCtx.Done():
			return nil
		}

		a.log.LogAttrs(runCtx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if a.metricsServer != nil {
		g.Go(func() error {
			a.log.LogAttrs(runCtx, logger.InfoLevel, "metrics server starting",
				logger.String("addr", a.metricsServer.Addr),
			)
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-runCtx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if err := a.msgRouter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("message router close: %w", err))
	}

	if err := a.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis: %w", err))
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
