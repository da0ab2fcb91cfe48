package uagen

import "strings"

// DefaultUA is the fixed fallback returned when generation fails
// internally. It is a valid, classifiable desktop Chrome string.
const DefaultUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Generate synthesizes a plausible User-Agent string from a partial spec.
// Unset fields fill from the Chrome/Windows/amd64/desktop defaults. The
// function is total by contract: any internal failure yields DefaultUA,
// never a panic or an error.
func Generate(spec Spec) (ua string) {
	defer func() {
		if recover() != nil {
			ua = DefaultUA
		}
	}()

	filled := fillDefaults(spec)
	system, engine, browser := builderFor(filled.OS.Name).fragments(filled)

	// Joining through Fields collapses any doubled whitespace the
	// fragment switches may have produced.
	return strings.Join(strings.Fields("Mozilla/5.0 "+system+" "+engine+" "+browser), " ")
}
