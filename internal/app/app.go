package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phoneme-service/internal/config"
	"github.com/heartmarshall/phoneme-service/internal/lexicon"
	"github.com/heartmarshall/phoneme-service/internal/service/phoneme"
	"github.com/heartmarshall/phoneme-service/internal/transport/middleware"
	"github.com/heartmarshall/phoneme-service/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the dictionary, service and HTTP transport, and serves
// until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.Any("build", buildInfo{}),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dictionary", cfg.Dictionary.Path),
		slog.Bool("dictionary_reload", cfg.Dictionary.Reload),
	)

	stores, err := NewStoreProvider(cfg.Dictionary)
	if err != nil {
		return err
	}

	if cfg.Dictionary.Preload {
		store, err := stores.Store(ctx)
		if err != nil {
			return fmt.Errorf("preload dictionary: %w", err)
		}
		LogStoreStats(logger, store)
	}

	handler, stop := NewHandler(cfg, logger, stores)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// StoreProvider hands out the dictionary for an invocation.
type StoreProvider interface {
	Store(ctx context.Context) (*lexicon.Store, error)
}

// NewStoreProvider builds the dictionary provider described by cfg: a
// process-wide lazy cache by default, or a per-invocation loader when
// Reload is set.
func NewStoreProvider(cfg config.DictionaryConfig) (StoreProvider, error) {
	splitter, err := lexicon.SplitterByName(cfg.Format)
	if err != nil {
		return nil, err
	}

	load := lexicon.FileLoader(cfg.Path, lexicon.WithSplitter(splitter))
	if cfg.Reload {
		return lexicon.NewReloader(load), nil
	}
	return lexicon.NewCache(load), nil
}

// NewHandler assembles the HTTP handler tree. The returned stop function
// releases background resources (the rate limiter's janitor).
func NewHandler(cfg *config.Config, logger *slog.Logger, stores StoreProvider) (http.Handler, func()) {
	svc := phoneme.NewService(logger, stores)

	var limit middleware.Middleware
	stop := func() {}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.CleanupInterval)
		limit = rl.Middleware()
		stop = rl.Stop
	}

	mux := http.NewServeMux()
	rest.Routes(mux,
		rest.NewPhonemeHandler(svc, logger),
		rest.NewHealthHandler(stores, BuildVersion()),
		middleware.Chain(middleware.CORS(cfg.CORS), limit),
	)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(mux), stop
}

// LogStoreStats reports parser statistics for a freshly loaded dictionary.
func LogStoreStats(logger *slog.Logger, store *lexicon.Store) {
	stats := store.Stats()
	logger.Info("dictionary loaded",
		slog.String("source", stats.Source),
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("parsed_lines", stats.ParsedLines),
		slog.Int("skipped_lines", stats.SkippedLines),
		slog.Int("unique_words", stats.UniqueWords),
		slog.Duration("duration", stats.LoadDuration.Round(time.Millisecond)),
	)
}
