// Package main provides the azrest emulator server.
//
// This is the main entrypoint for the azrest-emulator binary which serves
// an Azure Resource Manager compatible HTTP API backed by SQLite.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/server/cmd/azrest-emulator/cmd"
	"github.com/yaroslav/azrest/server/internal/api"
	"github.com/yaroslav/azrest/server/internal/api/middleware"
	"github.com/yaroslav/azrest/server/internal/logging"
	"github.com/yaroslav/azrest/server/internal/metrics"
	"github.com/yaroslav/azrest/server/internal/ratelimit"
	"github.com/yaroslav/azrest/server/internal/store"
)

const (
	version         = "0.4.0"
	minTokenLength  = 16
	shutdownTimeout = 10 * time.Second
)

// Config holds server configuration from flags and environment variables.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8443").
	ListenAddr string

	// DatabasePath is the path to the SQLite database file.
	DatabasePath string

	// Token is the bearer token clients must present. Empty disables auth.
	Token string

	// InstanceID is this emulator instance's UUID.
	InstanceID string

	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string

	// DevMode selects colored console logs instead of JSON.
	DevMode bool

	// AllowOrigins is a comma-separated list of allowed CORS origins.
	AllowOrigins string

	// PublicURL is the base URL written into nextLink and async headers.
	PublicURL string

	// DisableThrottling turns off the per-subscription request budgets.
	DisableThrottling bool
}

// parseFlags parses command-line flags and environment variables.
func parseFlags(args []string) (*Config, error) {
	config := &Config{}

	fs := flag.NewFlagSet("azrest-emulator", flag.ContinueOnError)
	fs.StringVar(&config.ListenAddr, "listen", getEnv("AZREST_EMULATOR_LISTEN", ":8443"),
		"Address to listen on")
	fs.StringVar(&config.DatabasePath, "db", getEnv("AZREST_EMULATOR_DB", "./azrest.db"),
		"Path to SQLite database file (:memory: for an ephemeral store)")
	fs.StringVar(&config.Token, "token", getEnv("AZREST_EMULATOR_TOKEN", ""),
		"Bearer token clients must present (empty disables auth)")
	fs.StringVar(&config.InstanceID, "instance-id", getEnv("AZREST_EMULATOR_INSTANCE_ID", ""),
		"Emulator instance UUID (auto-generated if not provided)")
	fs.StringVar(&config.LogLevel, "log-level", getEnv("AZREST_EMULATOR_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")
	fs.BoolVar(&config.DevMode, "dev", getEnv("AZREST_EMULATOR_DEV_MODE", "") == "true",
		"Colored console logs")
	fs.StringVar(&config.AllowOrigins, "cors-origins", getEnv("AZREST_EMULATOR_CORS_ORIGINS", ""),
		"Comma-separated list of allowed CORS origins (* for all)")
	fs.StringVar(&config.PublicURL, "public-url", getEnv("AZREST_EMULATOR_PUBLIC_URL", ""),
		"Base URL used in nextLink and async operation headers")
	fs.BoolVar(&config.DisableThrottling, "disable-throttling",
		getEnv("AZREST_EMULATOR_DISABLE_THROTTLING", "") == "true",
		"Disable per-subscription request budgets")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config, nil
}

// getEnv retrieves an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// validateConfig validates the server configuration.
func validateConfig(config *Config) error {
	if config.Token != "" && len(config.Token) < minTokenLength {
		return fmt.Errorf("token must be at least %d characters (got %d)", minTokenLength, len(config.Token))
	}

	if config.InstanceID == "" {
		config.InstanceID = uuid.New().String()
	}
	if _, err := uuid.Parse(config.InstanceID); err != nil {
		return fmt.Errorf("invalid instance ID format: %w", err)
	}

	if config.PublicURL != "" {
		u, err := url.Parse(config.PublicURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid public URL %q", config.PublicURL)
		}
	}

	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}

	return nil
}

// parseCORSOrigins splits the comma-separated CORS origins string.
func parseCORSOrigins(origins string) []string {
	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "util" {
		if err := cmd.ExecuteUtil(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := validateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:   config.LogLevel,
		DevMode: config.DevMode,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(config, logger); err != nil {
		logger.Fatal("emulator failed", zap.Error(err))
	}
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(config *Config, logger *zap.Logger) error {
	logger.Info("starting azrest-emulator",
		zap.String("version", version),
		zap.String("instance_id", config.InstanceID),
		zap.String("listen_addr", config.ListenAddr),
		zap.String("log_level", config.LogLevel),
		zap.Bool("auth", config.Token != ""),
		zap.Bool("throttling", !config.DisableThrottling),
	)

	metrics.MustInit()

	db, err := store.Open(config.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connection established", zap.String("path", config.DatabasePath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New(db, logger)
	if err := st.Migrate(ctx); err != nil {
		return err
	}
	if err := st.RefreshGauges(ctx); err != nil {
		logger.Warn("failed to refresh resource gauges", zap.Error(err))
	}

	var throttler *middleware.Throttler
	if !config.DisableThrottling {
		throttler = middleware.NewThrottler(ratelimit.DefaultConfig())
		defer throttler.Stop()
	}

	router := api.SetupRouter(&api.RouterConfig{
		Store:        st,
		Logger:       logger,
		Token:        config.Token,
		InstanceID:   config.InstanceID,
		PublicURL:    config.PublicURL,
		AllowOrigins: parseCORSOrigins(config.AllowOrigins),
		Throttler:    throttler,
	})

	srv := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", config.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
