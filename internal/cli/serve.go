package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaid/pkg/cache"
	"github.com/matzehuels/mermaid/pkg/observability"
	"github.com/matzehuels/mermaid/pkg/pipeline"
	"github.com/matzehuels/mermaid/pkg/service"
	"github.com/matzehuels/mermaid/pkg/store"
)

// newServeCmd creates the serve command for running the HTTP render
// service. Configuration merges, in increasing priority: defaults, a
// TOML config file, MERMAID_* environment variables, and these flags.
func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Serve exposes rendering and diagram storage over HTTP. Without
--store-uri diagrams live in memory; without --redis-addr rendered text
is cached on the local filesystem.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := service.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (TOML)")
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("store-uri", "", "MongoDB connection URI (default in-memory store)")
	cmd.Flags().String("store-database", "mermaid", "MongoDB database name")
	cmd.Flags().String("redis-addr", "", "Redis address for a shared cache (default file cache)")
	cmd.Flags().String("cache-dir", "", "file cache directory (default XDG cache dir)")
	cmd.Flags().Bool("no-cache", false, "disable caching")
	cmd.Flags().Duration("timeout", 30*time.Second, "request timeout")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runServe(ctx context.Context, cfg *service.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	logger := newLogger(os.Stderr, level)

	hooks := observability.NewLogHooks(logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)

	c, err := serveCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	runner := pipeline.NewRunner(c, serveKeyer(cfg), logger)
	defer runner.Close()

	st, err := serveStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(closeCtx)
	}()

	logger.Info("starting server", "addr", cfg.Addr)
	return service.New(cfg, runner, st, logger).ListenAndServe(ctx)
}

// serveCache selects the cache backend from the configuration: null
// when caching is off, Redis when an address is given, otherwise the
// local file cache.
func serveCache(ctx context.Context, cfg *service.Config) (cache.Cache, error) {
	switch {
	case cfg.NoCache:
		return cache.NewNullCache(), nil
	case cfg.RedisAddr != "":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		dir := cfg.CacheDir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// serveKeyer namespaces cache keys when the cache is a shared Redis
// instance. The file cache is already isolated by its directory.
func serveKeyer(cfg *service.Config) cache.Keyer {
	if cfg.RedisAddr != "" && !cfg.NoCache {
		return cache.NewScopedKeyer(nil, appName+":")
	}
	return nil
}

// serveStore selects the store backend: MongoDB when a URI is given,
// otherwise the in-memory store.
func serveStore(ctx context.Context, cfg *service.Config) (store.Store, error) {
	if cfg.StoreURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, cfg.StoreURI, cfg.StoreDatabase)
}
