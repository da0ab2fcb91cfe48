// Package uaengine is the facade over the UA classifier, version
// comparator and generator: parse with caching and plugin overrides,
// stringify, satisfy range expressions, and grade modernity or trust.
//
// # Engines
//
// An Engine owns two pieces of mutable state: a result cache keyed by raw
// UA string, and an ordered plugin list. Construct independent engines
// with New for isolated configurations; a shared default engine backs the
// package-level functions (Parse, Satisfies, Use, ...) for the common
// single-configuration case.
//
// Parse is cheap to call repeatedly: each unique raw string is classified
// once and the same shared *useragent.UserAgent pointer is returned on
// every subsequent call until ClearCache. Sharing is safe because a
// UserAgent is immutable: its fields are unexported and accessors return
// copies. The cache is unbounded by default, preserving one entry
// per unique raw string for the process lifetime; long-running servers
// parsing hostile header variety can cap it with WithCacheSize, which
// switches the store to LRU eviction.
//
// # Plugins
//
// A Plugin is a {Test, Parse} pair. On a cache miss, plugins run in
// registration order; the first whose Test accepts the raw string has its
// partial result overlaid onto the built-in classifier's full output
// (set fields win, nil fields keep the default). Later matching plugins are
// not consulted, and there is no removal API.
//
//	uaengine.Use(uaengine.Plugin{
//	    Name: "internal-app",
//	    Test: func(raw string) bool { return strings.Contains(raw, "MyApp/") },
//	    Parse: func(raw string) uaengine.Partial {
//	        return uaengine.Partial{Browser: &useragent.Browser{Name: "MyApp"}}
//	    },
//	})
//
// # Concurrency
//
// Parse is safe for concurrent use: the cache serializes its readers and
// writers, concurrent misses on one raw string converge on a single
// stored result, and Use snapshots are read under a separate lock so a
// registration never exposes a partially-updated plugin list.
//
// # HTTP integration
//
// Middleware classifies each request's User-Agent header once and parks
// the result on the request context:
//
//	mux := http.NewServeMux()
//	handler := uaengine.Middleware(nil)(mux)
//	// in a handler:
//	ua := uaengine.FromContext(r.Context())
//
// # Configuration
//
// NewFromEnv reads UAKIT_DEV and UAKIT_CACHE_SIZE from the environment.
// Development mode adds slog diagnostics for silently-absorbed input
// problems; diagnostics never change results.
package uaengine
