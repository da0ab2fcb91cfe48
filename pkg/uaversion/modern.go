package uaversion

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Per-browser minimum versions, keyed by canonical family name. Safari is
// the one family with meaningful fractional majors (13.1 shipped major
// platform features that 13.0 lacked), so its thresholds keep a decimal
// part and Safari UAs compare as floats; every other family compares on
// the integer major only.
type versionFloor map[string]float64

// Baseline "modern browser" floors: evergreen releases with broadly
// complete ES2017+, CSS grid and modern TLS.
var modernFloors = versionFloor{
	"chrome":           90,
	"edge":             90,
	"firefox":          88,
	"safari":           14.0,
	"opera":            76,
	"samsung internet": 15,
}

// Optional capability floors, AND-composed on top of the baseline.
var (
	es2020Floors = versionFloor{
		"chrome":           80,
		"edge":             80,
		"firefox":          74,
		"safari":           13.1,
		"opera":            67,
		"samsung internet": 13,
	}
	webGL2Floors = versionFloor{
		"chrome":           56,
		"edge":             79,
		"firefox":          51,
		"safari":           15.0,
		"opera":            43,
		"samsung internet": 7,
	}
	webAssemblyFloors = versionFloor{
		"chrome":           57,
		"edge":             16,
		"firefox":          52,
		"safari":           11.0,
		"opera":            44,
		"samsung internet": 7,
	}
	serviceWorkerFloors = versionFloor{
		"chrome":           45,
		"edge":             17,
		"firefox":          44,
		"safari":           11.1,
		"opera":            32,
		"samsung internet": 4,
	}
)

// ModernOption toggles an additional capability floor for IsModern.
type ModernOption func(*modernConfig)

type modernConfig struct {
	floors []versionFloor
}

// WithES2020 also requires full ES2020 language support.
func WithES2020() ModernOption {
	return func(c *modernConfig) { c.floors = append(c.floors, es2020Floors) }
}

// WithWebGL2 also requires WebGL 2 rendering support.
func WithWebGL2() ModernOption {
	return func(c *modernConfig) { c.floors = append(c.floors, webGL2Floors) }
}

// WithWebAssembly also requires WebAssembly support.
func WithWebAssembly() ModernOption {
	return func(c *modernConfig) { c.floors = append(c.floors, webAssemblyFloors) }
}

// WithServiceWorker also requires Service Worker support.
func WithServiceWorker() ModernOption {
	return func(c *modernConfig) { c.floors = append(c.floors, serviceWorkerFloors) }
}

// IsModern reports whether the UA's browser meets the baseline modern
// floor and every capability floor enabled through options. Unknown
// browser families are never modern.
func IsModern(ua useragent.UserAgent, opts ...ModernOption) bool {
	cfg := modernConfig{floors: []versionFloor{modernFloors}}
	for _, opt := range opts {
		opt(&cfg)
	}

	browser := ua.Browser()
	canonical := CanonicalBrowser(browser.Name)
	for _, floor := range cfg.floors {
		minimum, ok := floor[canonical]
		if !ok {
			return false
		}
		if !meetsFloor(canonical, browser, minimum) {
			return false
		}
	}
	return true
}

func meetsFloor(canonical string, browser useragent.Browser, minimum float64) bool {
	if canonical == "safari" {
		v, ok := fractionalMajor(browser.Version)
		if !ok {
			return false
		}
		return v >= minimum
	}

	if !browser.Major.IsSet() {
		return false
	}
	return float64(browser.Major.Value()) >= minimum
}

// fractionalMajor parses "major.minor" as a float, so Safari 13.1 clears a
// 13.1 floor while 13.0 does not.
func fractionalMajor(version string) (float64, bool) {
	if version == "" {
		return 0, false
	}
	parts := strings.SplitN(version, ".", 3)
	s := parts[0]
	if len(parts) > 1 {
		s += "." + parts[1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
