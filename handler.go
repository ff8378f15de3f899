// handler.go — the handler factory: default configuration plus guard production.
//
// A Handler holds the factory-wide defaults (fallback message, diagnostic
// target). Guard resolves per-guard overrides against those defaults ONCE, at
// production time, into a fully-populated immutable guardConfig — call-time
// logic never checks for "unset" sentinels.
package xgxguard

// guardConfig is the resolved, immutable configuration one guard carries.
// Both fields are always populated by the time a guard exists.
type guardConfig struct {
	fallback string // result substituted for a handled fault
	target   string // destination path for the diagnostic record
}

// GuardOption overrides one factory default for a single guard.
type GuardOption func(*guardConfig)

// WithFallback overrides the factory's fallback message for this guard.
func WithFallback(msg string) GuardOption {
	return func(c *guardConfig) { c.fallback = msg }
}

// WithTarget overrides the factory's diagnostic target for this guard.
func WithTarget(path string) GuardOption {
	return func(c *guardConfig) { c.target = path }
}

// Handler produces guards sharing a default fallback message and diagnostic
// target. The zero value is usable but produces guards with an empty fallback
// and no diagnostic target; prefer NewHandler.
type Handler struct {
	defaults guardConfig
}

// NewHandler creates a handler factory with the given defaults.
func NewHandler(fallback, target string) *Handler {
	return &Handler{defaults: guardConfig{fallback: fallback, target: target}}
}

// Fallback returns the factory's default fallback message.
func (h *Handler) Fallback() string { return h.defaults.fallback }

// Target returns the factory's default diagnostic target.
func (h *Handler) Target() string { return h.defaults.target }

// Guard produces a Transformer that wraps a callable in a guard matching the
// given categories. The set must be non-empty: a guard that can match nothing
// is a configuration mistake, reported at production time rather than
// silently passing every error through.
//
// Producing a guard has no side effects; all effects (diagnostic writes,
// fallback substitution) happen when the wrapped callable runs.
func (h *Handler) Guard(set CategorySet, opts ...GuardOption) (Transformer, error) {
	if set.Empty() {
		return nil, BadValue("guard requires a non-empty category set")
	}
	cfg := h.defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return func(next Callable) Callable {
		return &Guard{cfg: cfg, set: set, next: next}
	}, nil
}

// MustGuard is Guard for static configurations known to be valid, typically
// package-level chains in demos and tests. It panics on an empty set.
func (h *Handler) MustGuard(set CategorySet, opts ...GuardOption) Transformer {
	t, err := h.Guard(set, opts...)
	if err != nil {
		panic(err)
	}
	return t
}
