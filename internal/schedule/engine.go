package schedule

import (
	"log/slog"
	"time"
)

// Engine executes the four availability operations against a Gateway. It
// holds no mutable state: a single Engine may serve concurrent calls.
type Engine struct {
	gw     Gateway
	cfg    Config
	logger *slog.Logger

	// now is the clock used for the resolver horizon and current-time
	// reporting; overridable in tests.
	now func() time.Time
}

// NewEngine constructs an engine bound to one gateway and one immutable
// configuration. A nil logger falls back to slog.Default().
func NewEngine(gw Gateway, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		gw:     gw,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// CurrentTime returns the current instant in the configured default zone.
// Conversational callers use it to anchor relative references like
// "tomorrow" before issuing date-typed requests.
func (e *Engine) CurrentTime() time.Time {
	return e.now().In(e.cfg.TimeZone)
}
