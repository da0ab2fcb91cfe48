package uaengine

import (
	"os"

	"github.com/dmitrymomot/uakit/pkg/uagen"
	"github.com/dmitrymomot/uakit/pkg/uaversion"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Shared default engine backing the package-level facade. Applications
// needing isolated plugin lists or bounded caches should construct their
// own Engine with New instead.
var defaultEngine = New()

// Parse classifies through the default engine.
func Parse(raw string) *useragent.UserAgent { return defaultEngine.Parse(raw) }

// Stringify synthesizes a UA string from a partial spec.
func Stringify(spec uagen.Spec) string { return defaultEngine.Stringify(spec) }

// Satisfies evaluates range expressions (OR-combined) through the default
// engine.
func Satisfies(raw string, ranges ...string) bool {
	return defaultEngine.Satisfies(raw, ranges...)
}

// IsModern checks the modern baseline through the default engine.
func IsModern(raw string, opts ...uaversion.ModernOption) bool {
	return defaultEngine.IsModern(raw, opts...)
}

// Use registers a plugin on the default engine.
func Use(plugin Plugin) { defaultEngine.Use(plugin) }

// ClearCache resets the default engine's cache.
func ClearCache() { defaultEngine.ClearCache() }

// CacheSize reports the default engine's cache population.
func CacheSize() int { return defaultEngine.CacheSize() }

// Current classifies the host process's own UA string, taken from the
// HTTP_USER_AGENT environment variable (the CGI convention). Hosts
// without one get the canonical Unknown result.
func Current() *useragent.UserAgent {
	return defaultEngine.Parse(os.Getenv("HTTP_USER_AGENT"))
}
