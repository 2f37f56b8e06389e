package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/klub/internal/config"
	"github.com/MrSnakeDoc/klub/internal/httpserver"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/portal"
	"github.com/MrSnakeDoc/klub/internal/posts"
	"github.com/MrSnakeDoc/klub/internal/redis"
	"github.com/MrSnakeDoc/klub/internal/scheduler"
	"github.com/MrSnakeDoc/klub/internal/seed"
	"github.com/MrSnakeDoc/klub/internal/store"
	"github.com/MrSnakeDoc/klub/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/klub/internal/store/redis"
	"github.com/MrSnakeDoc/klub/internal/upload"
	"github.com/MrSnakeDoc/klub/internal/utils"
	"github.com/MrSnakeDoc/klub/internal/version"
)

const localUploadsPath = "/uploads"

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	records *records
	posts   *posts.Store
	keeper  *scheduler.SeedKeeper
}

// records is the record store substrate and the domain service built on it.
type records struct {
	backend store.Backend
	portal  *portal.Service
	redis   *goredis.Client // nil for the memory backend
}

func openRecords(ctx context.Context, cfg *config.Config, log logger.Logger) (*records, error) {
	data, err := seed.NewLoader(cfg.SeedFile).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	r := &records{}
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.OptionsFromConfig(cfg), log)
		if err != nil {
			return nil, err
		}
		r.redis = client
		r.backend = redisstore.NewBackend(client, cfg.KeyPrefix)
	default:
		r.backend = memory.New(cfg.MemoryQuota)
	}

	r.portal = portal.New(r.backend, data,
		portal.WithLatency(cfg.APILatency),
		portal.WithLogger(log),
		portal.WithCredentials(portal.Credentials{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Token:    cfg.AdminToken,
		}),
	)

	log.Info("record store ready",
		logger.String("backend", cfg.StoreBackend),
		logger.Bool("seed_file", cfg.SeedFile != ""))
	return r, nil
}

func (r *records) close(log logger.Logger) {
	if r.redis != nil {
		utils.MustClose(r.redis, log, "redis")
	}
}

// New wires the record store, the posts database, the upload bucket, the
// seed keeper and the HTTP server.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	if names := cfg.InsecureDefaults(); len(names) > 0 {
		loggerClient.Warn("admin credentials left at their public defaults, anyone can reach the admin API",
			logger.Strings("settings", names))
	}

	recs, err := openRecords(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.PostsDBPath), 0o755); err != nil {
		recs.close(loggerClient)
		return nil, fmt.Errorf("failed to create posts directory: %w", err)
	}
	postStore, err := posts.Open(cfg.PostsDBPath)
	if err != nil {
		recs.close(loggerClient)
		return nil, err
	}

	bucket, err := upload.NewFSBucket(cfg.UploadDir)
	if err != nil {
		utils.Close(postStore)
		recs.close(loggerClient)
		return nil, err
	}

	// Create manual reseed trigger channel
	reloadTrigger := make(chan struct{}, 1)
	keeper := scheduler.NewSeedKeeper(recs.portal, loggerClient, cfg.SeedInterval, reloadTrigger)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		LoginBurst:    cfg.LoginBurst,
		LoginPerMin:   cfg.LoginPerMin,
		Portal:        recs.portal,
		Backend:       recs.backend,
		StoreBackend:  cfg.StoreBackend,
		Posts:         postStore,
		Uploader:      upload.NewUploader(bucket, cfg.UploadPublicURL, cfg.MaxUploadBytes),
		SiteURL:       cfg.SiteURL,
		SiteTitle:     cfg.SiteTitle,
		ReloadTrigger: reloadTrigger,
	}
	// Objects are only reachable through us when the public URL points here.
	if strings.HasPrefix(cfg.UploadPublicURL, localUploadsPath) {
		d.Bucket = bucket
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		records: recs,
		posts:   postStore,
		keeper:  keeper,
	}, nil
}

// Run seeds the store, serves HTTP and blocks until ctx ends or a signal
// arrives, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof("🚀 Starting klub %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("klub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.close()

	// Seed missing collections, then keep them present
	if err := a.keeper.Start(ctx); err != nil {
		return fmt.Errorf("failed to start seed keeper: %w", err)
	}
	defer a.keeper.Stop()
	a.logger.Info("seed keeper started",
		logger.Duration("interval", a.cfg.SeedInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ klub stopped cleanly")
	return nil
}

func (a *App) close() {
	utils.MustClose(a.posts, a.logger, "posts database")
	a.records.close(a.logger)
}

// Seed writes the seed data into the configured store and exits. With reset
// every collection is overwritten, otherwise only missing ones are written.
func Seed(ctx context.Context, cfg *config.Config, loggerClient logger.Logger, reset bool) (seed.Result, error) {
	if cfg.StoreBackend == config.BackendMemory {
		loggerClient.Warn("memory backend selected, seeded data only lives as long as this process")
	}

	recs, err := openRecords(ctx, cfg, loggerClient)
	if err != nil {
		return seed.Result{}, err
	}
	defer recs.close(loggerClient)

	return recs.portal.Seed(ctx, reset)
}

// Purge deletes every collection from the configured store. A running server
// serves the seed defaults until its seed keeper writes them back.
func Purge(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) error {
	recs, err := openRecords(ctx, cfg, loggerClient)
	if err != nil {
		return err
	}
	defer recs.close(loggerClient)

	return recs.portal.Purge(ctx)
}
