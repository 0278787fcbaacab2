package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"wep_bot/catalog"
	"wep_bot/config"
	"wep_bot/dashboard"
	"wep_bot/dialog"
	"wep_bot/handlers"
	"wep_bot/jobs"
	"wep_bot/logger"
	"wep_bot/matching"
	"wep_bot/middleware"
	"wep_bot/session"
	"wep_bot/storage"
)

type app struct {
	cfg       *config.Config
	log       *zap.Logger
	catalog   *catalog.Catalog
	sessions  session.Store
	publisher jobs.Publisher
	rdb       *redis.Client
}

// applyFlags lets command-line flags override the environment.
func applyFlags(cfg *config.Config, args []string) error {
	fs := pflag.NewFlagSet("wep-bot", pflag.ContinueOnError)
	host := fs.String("host", cfg.Host, "bind host")
	port := fs.StringP("port", "p", cfg.Port, "bind port")
	catalogPath := fs.String("catalog", cfg.CatalogPath, "path of the scheme catalog CSV")
	backend := fs.String("session-backend", cfg.SessionBackend, "session store: memory or redis")
	fallback := fs.String("fallback", cfg.FallbackPolicy, "fallback policy: prefix or random")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Host, cfg.Port = *host, *port
	cfg.CatalogPath = *catalogPath
	cfg.SessionBackend = *backend
	cfg.FallbackPolicy = *fallback
	return nil
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case "postgres":
		db, err := storage.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.LoadPostgres(ctx, db, cfg.CatalogTable)
	default:
		return catalog.LoadCSV(cfg.CatalogPath)
	}
}

func initializeDependencies(ctx context.Context) (*app, error) {
	cfg := config.LoadConfig()
	if err := applyFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		log:       logger.New(logger.Options{FilePath: cfg.LogFilePath, Production: cfg.IsProduction()}),
		publisher: jobs.NopPublisher{},
	}

	c, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a.catalog = c
	a.log.Info("📚 catalog loaded", zap.String("source", cfg.CatalogSource), zap.Int("schemes", c.Len()))

	switch cfg.SessionBackend {
	case "redis":
		rdb, err := storage.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		a.rdb = rdb
		a.sessions = storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
		a.publisher = jobs.NewRedisPublisher(rdb, cfg.CompletionQueue)
		a.log.Info("✅ redis connected")
	default:
		a.sessions = storage.NewMemorySessionStore(cfg.SessionTTL)
	}

	return a, nil
}

func (a *app) routes() http.Handler {
	fallback, err := matching.ParseFallback(a.cfg.FallbackPolicy, a.cfg.FallbackSeed)
	if err != nil {
		// rejected earlier by config validation
		a.log.Fatal("fallback policy", zap.Error(err))
	}

	engine := dialog.NewEngine(a.catalog, matching.NewRecommender(fallback, a.cfg.TopN))
	manager := dialog.NewManager(engine, a.sessions, a.publisher, a.log)
	webhooks := handlers.NewWebhooks(manager, a.log)

	mux := http.NewServeMux()
	mux.Handle("/webhook", middleware.TwilioSignature(a.cfg.TwilioAuthToken, a.cfg.PublicBaseURL, a.log)(
		http.HandlerFunc(webhooks.Twilio),
	))
	mux.HandleFunc("/telegram", webhooks.Telegram)
	mux.Handle("/dashboard", middleware.APIKeyAuth(a.cfg.APIKey)(
		dashboard.NewHandler(a.sessions, a.catalog.Len()),
	))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("✅ WEP Bot is running"))
	})

	return middleware.Chain(mux, middleware.RequestLogger(a.log))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := initializeDependencies(ctx)
	if err != nil {
		log.Fatalf("❌ init failed: %v", err)
	}
	defer a.log.Sync()

	if a.rdb != nil {
		defer a.rdb.Close()
		worker := jobs.NewWorker(a.rdb, a.cfg.CompletionQueue, jobs.LogCompletions(a.log), a.log)
		go worker.Run(ctx)
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("🌐 server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	a.log.Info("⏳ shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("shutdown failed", zap.Error(err))
		return
	}
	a.log.Info("✅ stopped")
}
