package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/miavoice/scheduler-mcp/internal/instrumentation"
	"github.com/miavoice/scheduler-mcp/internal/schedule"
	"github.com/miavoice/scheduler-mcp/internal/server"
	"github.com/miavoice/scheduler-mcp/internal/tools/google_tools"
	"github.com/miavoice/scheduler-mcp/internal/tools/scheduler_tools"
)

// serveConfig holds the resolved serve settings after merging flags and
// environment variables.
type serveConfig struct {
	Transport      string
	HTTPAddr       string
	Debug          bool
	CalendarID     string
	TimeZone       string
	MetricsEnabled bool
	MetricsAddr    string
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide calendar
scheduling tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Calendar Configuration:
  --calendar-id or GOOGLE_CALENDAR_ID env var (default: "primary")
  --timezone or CALENDAR_TIMEZONE env var (default: "UTC")

Authentication:
  Stored OAuth tokens (see the auth command) or a service account via
  GOOGLE_SERVICE_ACCOUNT_JSON / GOOGLE_SERVICE_ACCOUNT_FILE env vars.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().String("transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().String("http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().String("calendar-id", "primary", "Calendar ID to operate on. Can also use GOOGLE_CALENDAR_ID env var.")
	cmd.Flags().String("timezone", "UTC", "Default timezone for date/time inputs. Can also use CALENDAR_TIMEZONE env var.")
	cmd.Flags().Bool("metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().String("metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// loadServeConfig merges flag and environment configuration. Explicitly set
// flags win over environment variables, which win over flag defaults.
func loadServeConfig(cmd *cobra.Command) (serveConfig, error) {
	v := viper.New()

	bindings := map[string]string{
		"debug":           "SCHEDULER_DEBUG",
		"transport":       "SCHEDULER_TRANSPORT",
		"http-addr":       "SCHEDULER_HTTP_ADDR",
		"calendar-id":     "GOOGLE_CALENDAR_ID",
		"timezone":        "CALENDAR_TIMEZONE",
		"metrics-enabled": "METRICS_ENABLED",
		"metrics-addr":    "METRICS_ADDR",
	}
	for key, env := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return serveConfig{}, fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
		if err := v.BindEnv(key, env); err != nil {
			return serveConfig{}, fmt.Errorf("failed to bind env var %s: %w", env, err)
		}
	}

	return serveConfig{
		Transport:      v.GetString("transport"),
		HTTPAddr:       v.GetString("http-addr"),
		Debug:          v.GetBool("debug"),
		CalendarID:     v.GetString("calendar-id"),
		TimeZone:       v.GetString("timezone"),
		MetricsEnabled: v.GetBool("metrics-enabled"),
		MetricsAddr:    v.GetString("metrics-addr"),
	}, nil
}

func runServe(cfg serveConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so they never corrupt the stdio transport.
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if cfg.Transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if cfg.Transport != "stdio" && cfg.MetricsEnabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    cfg.MetricsAddr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Resolve the scheduling configuration (calendar identity and timezone)
	scheduleCfg, err := schedule.NewConfig(cfg.CalendarID, cfg.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid calendar configuration: %w", err)
	}

	// Create server context
	serverContext, err := server.NewServerContext(shutdownCtx, scheduleCfg)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if cfg.Transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("scheduler-mcp", version,
		mcpserver.WithToolCapabilities(true),
	)

	// Register all tools
	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch cfg.Transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		fmt.Printf("Starting scheduler-mcp server with %s transport...\n", cfg.Transport)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, cfg)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", cfg.Transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAllTools registers all MCP tools
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Scheduler",
			register: func() error {
				return scheduler_tools.RegisterSchedulerTools(mcpSrv, ctx)
			},
		},
		{
			name: "Google OAuth",
			register: func() error {
				return google_tools.RegisterGoogleTools(mcpSrv, ctx)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, cfg serveConfig) error {
	streamableSrv := mcpserver.NewStreamableHTTPServer(mcpSrv)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamableSrv)

	// Health check endpoints for Kubernetes probes
	healthChecker := server.NewHealthChecker(serverContext)
	healthChecker.RegisterHealthEndpoints(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Streamable HTTP server starting on %s\n", cfg.HTTPAddr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if cfg.MetricsEnabled {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", cfg.MetricsAddr)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		healthChecker.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
