package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/costshare/internal/auth"
	"github.com/mmynk/costshare/internal/config"
	"github.com/mmynk/costshare/internal/currency"
	"github.com/mmynk/costshare/internal/middleware"
	"github.com/mmynk/costshare/internal/service"
	"github.com/mmynk/costshare/internal/storage/sqlite"
	"github.com/mmynk/costshare/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWith(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var tokens *auth.JWTManager
	if cfg.AuthEnabled() {
		tokens = auth.NewJWTManager(cfg.AuthSecret, cfg.TokenTTL)
	} else {
		slog.Warn("AUTH_SECRET not set, ledger passcodes are disabled")
	}

	mux := http.NewServeMux()

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = middleware.NewMetrics(reg)
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	interceptors := []connect.Interceptor{middleware.LedgerAuth(tokens), middleware.LoggingInterceptor(slog.Default())}
	if metrics != nil {
		interceptors = append([]connect.Interceptor{metrics.Interceptor()}, interceptors...)
	}
	opts := connect.WithInterceptors(interceptors...)

	formatter := currency.NewFormatter(cfg.CurrencyLocale, cfg.CurrencyUnit)

	ledgerSvc := service.NewLedgerService(store, auth.NewPasscodeAuthenticator(store), tokens, slog.Default())
	ledgerPath, ledgerHandler := service.NewLedgerServiceHandler(ledgerSvc, opts)
	mux.Handle(ledgerPath, ledgerHandler)

	settlementSvc := service.NewSettlementService(store, formatter, metrics, slog.Default())
	settlementPath, settlementHandler := service.NewSettlementServiceHandler(settlementSvc, opts)
	mux.Handle(settlementPath, settlementHandler)

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return err
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", server.Addr, "currency", formatter.Locale().String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// staticHandler serves the browser client. Unknown paths fall back to
// index.html.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/costshare.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

// loggingMiddleware logs HTTP requests that are not RPCs; those are logged by
// the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		if strings.HasPrefix(r.URL.Path, "/costshare.v1.") {
			return
		}
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
