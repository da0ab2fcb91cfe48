package uaengine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/uakit/pkg/uagen"
	"github.com/dmitrymomot/uakit/pkg/uaversion"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Engine ties the classifier, comparator and generator together behind a
// result cache and a plugin registry. Each Engine owns its own cache and
// plugin list, so independent configurations can coexist and tests run
// isolated; the package-level facade in facade.go wraps a shared default
// instance.
type Engine struct {
	store *resultStore

	pmu     sync.RWMutex
	plugins []Plugin

	log *slog.Logger
	dev bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for development diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithDevelopment enables diagnostic logging for silently-absorbed input
// problems (unclassifiable UAs, malformed range expressions). Diagnostics
// never alter behavior; results are identical with or without them.
func WithDevelopment() Option {
	return func(e *Engine) { e.dev = true }
}

// WithCacheSize bounds the result cache to n entries with LRU eviction.
// Zero keeps the original unbounded behavior, appropriate for short-lived
// processes and bounded header populations.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.store = newResultStore(n)
		}
	}
}

// WithPlugins registers plugins at construction, in the given order.
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Engine) { e.plugins = append(e.plugins, plugins...) }
}

// New creates an Engine with an unbounded cache and no plugins.
func New(opts ...Option) *Engine {
	e := &Engine{
		store: newResultStore(0),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse classifies a raw UA string. Results are cached by raw string:
// repeated calls with an identical input return the same shared pointer;
// sharing is safe because UserAgent values are immutable after
// construction. On a cache miss the registered
// plugins run in order; the first match's partial result is overlaid onto
// the built-in classifier's output.
func (e *Engine) Parse(raw string) *useragent.UserAgent {
	if cached, ok := e.store.get(raw); ok {
		return cached
	}

	result := useragent.Classify(raw)
	if e.dev && result.IsUnknown() {
		e.log.Debug("unclassifiable user agent", "source", raw)
	}

	e.pmu.RLock()
	plugins := e.plugins
	e.pmu.RUnlock()

	for _, plugin := range plugins {
		if plugin.Test == nil || plugin.Parse == nil {
			continue
		}
		if plugin.Test(raw) {
			result = plugin.Parse(raw).overlay(result)
			break
		}
	}

	return e.store.getOrPut(raw, &result)
}

// Use appends a plugin to the registry. There is no removal or
// de-duplication; registration order is match priority. Already-cached
// results are not re-evaluated.
func (e *Engine) Use(plugin Plugin) {
	e.pmu.Lock()
	defer e.pmu.Unlock()
	e.plugins = append(e.plugins, plugin)
}

// ClearCache drops every cached result.
func (e *Engine) ClearCache() { e.store.clear() }

// CacheSize reports the number of cached results.
func (e *Engine) CacheSize() int { return e.store.len() }

// Stringify synthesizes a UA string from a partial spec.
func (e *Engine) Stringify(spec uagen.Spec) string { return uagen.Generate(spec) }

// Satisfies reports whether the UA satisfies at least one of the range
// expressions. Malformed expressions never satisfy; in development mode
// they are logged.
func (e *Engine) Satisfies(raw string, ranges ...string) bool {
	if e.dev {
		for _, expr := range ranges {
			if _, ok := uaversion.ParseRange(expr); !ok {
				e.log.Debug("malformed range expression", "expr", expr)
			}
		}
	}
	return uaversion.Satisfies(*e.Parse(raw), ranges...)
}

// SatisfiesAll reports whether the UA satisfies every range expression.
func (e *Engine) SatisfiesAll(raw string, ranges []string) bool {
	return uaversion.SatisfiesAll(*e.Parse(raw), ranges)
}

// SatisfiesAny reports whether the UA satisfies any range expression.
func (e *Engine) SatisfiesAny(raw string, ranges []string) bool {
	return uaversion.SatisfiesAny(*e.Parse(raw), ranges)
}

// IsModern reports whether the UA clears the modern baseline plus any
// capability floors enabled via options.
func (e *Engine) IsModern(raw string, opts ...uaversion.ModernOption) bool {
	return uaversion.IsModern(*e.Parse(raw), opts...)
}

// Compare orders two raw UA strings by browser version. Fails with
// uaversion.ErrIncomparableBrowsers across browser families.
func (e *Engine) Compare(a, b string) (uaversion.Ordering, error) {
	return uaversion.CompareUA(*e.Parse(a), *e.Parse(b))
}

// IsOutdated estimates whether the UA's browser build is older than
// monthsThreshold (0 for the default).
func (e *Engine) IsOutdated(raw string, monthsThreshold int) bool {
	return uaversion.IsOutdated(*e.Parse(raw), monthsThreshold)
}

// SecurityLevel reports the UA's coarse trust tier.
func (e *Engine) SecurityLevel(raw string) uaversion.SecLevel {
	return uaversion.SecurityLevelAt(*e.Parse(raw), time.Now())
}

// DetectFake scores the raw string for forgery signals.
func (e *Engine) DetectFake(raw string) uagen.FakeReport {
	return uagen.DetectFake(raw)
}
