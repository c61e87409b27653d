package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/miavoice/scheduler-mcp/internal/calendar"
	"github.com/miavoice/scheduler-mcp/internal/instrumentation"
	"github.com/miavoice/scheduler-mcp/internal/schedule"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx             context.Context
	cancel          context.CancelFunc
	calendarClients map[string]*calendar.Client // Maps account name to Calendar client
	engines         map[string]*schedule.Engine // Maps account name to scheduling engine
	scheduleConfig  schedule.Config
	metrics         *instrumentation.Metrics
	auditLogger     *instrumentation.AuditLogger
	mu              sync.RWMutex
	shutdown        bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, cfg schedule.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:             shutdownCtx,
		cancel:          cancel,
		calendarClients: make(map[string]*calendar.Client),
		engines:         make(map[string]*schedule.Engine),
		scheduleConfig:  cfg,
		shutdown:        false,
	}

	// Try to create default Calendar client, but don't fail if token is missing
	// Clients will be lazily initialized when first needed
	if calendar.HasToken() {
		client, err := calendar.NewClient(shutdownCtx)
		if err != nil {
			// Log but don't fail - will be re-attempted on first use
			slog.Warn("failed to create Calendar client for default account", "error", err)
		} else {
			sc.calendarClients["default"] = client
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// ScheduleConfig returns the scheduling configuration used for new engines.
func (sc *ServerContext) ScheduleConfig() schedule.Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.scheduleConfig
}

// CalendarClientForAccount returns the Calendar client for a specific account
// Creates and caches the client if it doesn't exist yet
// Returns nil if the account has no token
func (sc *ServerContext) CalendarClientForAccount(account string) *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.calendarClients[account]; ok {
		return client
	}

	// Try to create client if token exists
	if !calendar.HasTokenForAccount(account) {
		return nil
	}

	client, err := calendar.NewClientForAccount(sc.ctx, account)
	if err != nil {
		slog.Warn("failed to create Calendar client", "account", account, "error", err)
		return nil
	}

	client.SetMetrics(sc.metrics)
	sc.calendarClients[account] = client
	return client
}

// CalendarClient returns the Calendar client for the default account
func (sc *ServerContext) CalendarClient() *calendar.Client {
	return sc.CalendarClientForAccount("default")
}

// SetCalendarClientForAccount sets the Calendar client for a specific account.
// Any cached engine for the account is dropped so the next lookup rebuilds it
// against the new client.
func (sc *ServerContext) SetCalendarClientForAccount(account string, client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	client.SetMetrics(sc.metrics)
	sc.calendarClients[account] = client
	delete(sc.engines, account)
}

// SetCalendarClient sets the Calendar client for the default account
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.SetCalendarClientForAccount("default", client)
}

// EngineForAccount returns the scheduling engine for a specific account.
// Creates and caches the engine if it doesn't exist yet.
// Returns nil if the account has no Calendar client.
func (sc *ServerContext) EngineForAccount(account string) *schedule.Engine {
	sc.mu.RLock()
	engine, ok := sc.engines[account]
	sc.mu.RUnlock()
	if ok {
		return engine
	}

	client := sc.CalendarClientForAccount(account)
	if client == nil {
		return nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if engine, ok := sc.engines[account]; ok {
		return engine
	}
	engine = schedule.NewEngine(client, sc.scheduleConfig, slog.Default())
	sc.engines[account] = engine
	return engine
}

// Engine returns the scheduling engine for the default account
func (sc *ServerContext) Engine() *schedule.Engine {
	return sc.EngineForAccount("default")
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used by tool handlers and clients
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
	for _, client := range sc.calendarClients {
		client.SetMetrics(m)
	}
}

// AuditLogger returns the audit logger, or nil if auditing is disabled
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger used by tool handlers
func (sc *ServerContext) SetAuditLogger(l *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = l
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
