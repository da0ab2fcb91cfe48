// Package useragent classifies raw HTTP User-Agent strings into structured
// facts: browser family, version and release channel, rendering engine,
// operating system, device class, CPU architecture, and behavioral flags
// (crawler, embedded WebView, headless automation).
//
// Classification is total. Classify never returns an error: empty or
// unrecognizable input collapses to a canonical Unknown result with the
// original string preserved verbatim in Source.
//
// A UserAgent is immutable after construction. Its fields are unexported
// and the accessors return copies, so a value can be cached and shared
// across goroutines without a caller write ever leaking back. Callers
// that need to adjust a classification read it out with Fields and build
// a new value with New.
//
// # Detection model
//
// Every dimension is detected by its own priority-ordered cascade, because
// vendor tokens are substrings of one another. Edge, Samsung Internet and
// Opera UAs all carry a "Chrome/" token, and every Chrome UA carries a
// "Safari/" token, so the cascade tests the most specific tokens first:
//
//	Edge variants > Samsung Internet > Opera > Chrome > Firefox > Safari
//	> Internet Explorer > regional browsers (QQ, UC, 360, Sogou)
//
// The browser cascade is an ordered rule table (browserRules) sorted by an
// explicit OrderHint, so precedence is inspectable data rather than buried
// control flow, and new vendor rules can be slotted at a specific
// priority.
//
// Engine, OS, device and CPU detection run independently off the same raw
// tokens. DetectEngine, DetectOS, DetectDevice and DetectCPU are exported
// so each cascade can be exercised standalone. The behavioral flags are
// independent keyword-set membership tests and are not mutually exclusive:
// a crawler inside an app shell is both a bot and a WebView.
//
// # Version numbers
//
// Version components use the Number type, an explicit optional integer.
// A missing component is absent, never a zero or NaN-like sentinel, so it
// can never silently participate in arithmetic or comparisons.
//
// # Usage
//
//	ua := useragent.Classify(r.UserAgent())
//	if ua.IsBot() {
//	    log.Printf("crawler: %s", useragent.BotName(ua.Source()))
//	}
//	if b := ua.Browser(); b.Name == useragent.BrowserChrome && b.Major.IsSet() {
//	    // feature-gate on b.Major.Value()
//	}
//
// Parsing uses plain substring look-ups plus a handful of pre-compiled
// regular expressions, keeping allocations low enough for per-request use
// on high-traffic servers.
package useragent
