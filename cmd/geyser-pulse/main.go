// Command geyser-pulse runs the bridge outside a validator. It loads the
// plugin from a config file and feeds it recorded, synthetic or live RPC
// notifications through the same selection, encoding and publishing path a
// validator would drive.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marko911/geyser-pulse/internal/adapter"
	"github.com/marko911/geyser-pulse/internal/adapter/replay"
	"github.com/marko911/geyser-pulse/internal/adapter/rpcws"
	"github.com/marko911/geyser-pulse/internal/adapter/synthetic"
	"github.com/marko911/geyser-pulse/internal/plugin"
)

func main() {
	configPath := flag.String("config", getEnv("GEYSER_CONFIG", "config.json"), "Plugin config file (JSON or YAML)")
	sourceKind := flag.String("source", getEnv("SOURCE", "file"), "Notification source: file, synthetic, ws")
	fixturesDir := flag.String("fixtures", getEnv("FIXTURES_DIR", "fixtures"), "Directory of recorded notifications to replay")
	loop := flag.Bool("loop", getEnvBool("REPLAY_LOOP", false), "Replay fixtures continuously")
	speed := flag.Float64("playback-speed", getEnvFloat("PLAYBACK_SPEED", 0), "Playback speed (0 = instant, 1.0 = realtime)")
	rate := flag.Int("rate", 1000, "Synthetic notifications per second")
	duration := flag.Duration("duration", time.Minute, "Synthetic run duration")
	burst := flag.Bool("burst", false, "Enable synthetic burst mode")
	burstRatio := flag.Float64("burst-ratio", 10.0, "Synthetic burst rate multiplier")
	owners := flag.String("owners", getEnv("SOURCE_OWNERS", ""), "Comma-separated owner keys for synthetic or subscribed account writes")
	programs := flag.String("programs", getEnv("SYNTHETIC_PROGRAMS", ""), "Comma-separated program keys for synthetic transactions")
	wsEndpoint := flag.String("ws-endpoint", getEnv("SOLANA_WS_URL", "ws://localhost:8900"), "Solana RPC WebSocket endpoint for the ws source")
	commitment := flag.String("commitment", getEnv("SOLANA_COMMITMENT", "confirmed"), "Commitment for ws account subscriptions")
	metricsAddr := flag.String("metrics-addr", getEnv("METRICS_ADDR", ":9090"), "Metrics and health listen address")
	shutdownTimeout := flag.Duration("shutdown-timeout", 30*time.Second, "Time allowed to drain pending messages")
	logLevel := flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.Parse()

	logger := setupLogger(*logLevel).With("instance", uuid.NewString())
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var src adapter.Source
	switch *sourceKind {
	case "file":
		src = replay.NewFileSource(replay.FileSourceConfig{
			FixturesDir:   *fixturesDir,
			Loop:          *loop,
			PlaybackSpeed: *speed,
		}, logger)
	case "synthetic":
		ownerKeys, err := parseKeys(*owners)
		if err != nil {
			logger.Error("invalid -owners", "error", err)
			os.Exit(1)
		}
		programKeys, err := parseKeys(*programs)
		if err != nil {
			logger.Error("invalid -programs", "error", err)
			os.Exit(1)
		}
		src, err = synthetic.NewSource(synthetic.Config{
			Rate:       *rate,
			Duration:   *duration,
			BurstMode:  *burst,
			BurstRatio: *burstRatio,
			Owners:     ownerKeys,
			Programs:   programKeys,
		}, logger)
		if err != nil {
			logger.Error("invalid synthetic source", "error", err)
			os.Exit(1)
		}
	case "ws":
		ownerKeys, err := parseKeys(*owners)
		if err != nil {
			logger.Error("invalid -owners", "error", err)
			os.Exit(1)
		}
		src, err = rpcws.NewSource(rpcws.Config{
			Endpoint:   *wsEndpoint,
			Commitment: *commitment,
			Programs:   ownerKeys,
			Roots:      true,
		}, logger)
		if err != nil {
			logger.Error("invalid ws source", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("unknown source", "source", *sourceKind)
		os.Exit(1)
	}

	p := plugin.New(logger)

	var ready atomic.Bool
	server := newMetricsServer(*metricsAddr, &ready)
	go func() {
		logger.Info("starting metrics server", "addr", *metricsAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()

	logger.Info("loading plugin", "name", p.Name(), "config", *configPath)
	if err := p.OnLoad(ctx, *configPath); err != nil {
		logger.Error("failed to load plugin", "error", err)
		os.Exit(1)
	}
	ready.Store(true)

	if err := adapter.Run(ctx, src, p, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("notification source failed", "error", err)
	}

	ready.Store(false)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), *shutdownTimeout)
	defer shutdownCancel()

	if err := p.OnUnload(shutdownCtx); err != nil {
		logger.Error("error during unload", "error", err)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}

	logger.Info("geyser-pulse shutdown complete")
}

func parseKeys(list string) ([]solana.PublicKey, error) {
	var keys []solana.PublicKey
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("parse key %q: %w", s, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func newMetricsServer(addr string, ready *atomic.Bool) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"starting"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// setupLogger creates a structured logger with the given level.
func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return defaultVal
}
