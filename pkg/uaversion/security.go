package uaversion

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

//go:embed releases.yaml
var releasesYAML []byte

// canonical family -> major (or "major.minor" for Safari) -> "YYYY-MM".
var releaseTable = func() map[string]map[string]string {
	table := make(map[string]map[string]string)
	if err := yaml.Unmarshal(releasesYAML, &table); err != nil {
		panic(fmt.Errorf("uaversion: invalid embedded release table: %w", err))
	}
	return table
}()

// DefaultOutdatedMonths is the release-age threshold beyond which a
// browser build counts as outdated.
const DefaultOutdatedMonths = 24

// SecLevel is a coarse trust tier for a classified UA.
type SecLevel string

const (
	SecLevelHigh     SecLevel = "high"
	SecLevelMedium   SecLevel = "medium"
	SecLevelLow      SecLevel = "low"
	SecLevelCritical SecLevel = "critical"
)

// IsOutdated estimates whether the UA's browser build is older than
// monthsThreshold, from the embedded per-major release table. Pass 0 for
// the default threshold. Unknown browsers and unknown majors are
// conservatively outdated.
func IsOutdated(ua useragent.UserAgent, monthsThreshold int) bool {
	return OutdatedAt(ua, monthsThreshold, time.Now())
}

// OutdatedAt is IsOutdated against an explicit reference time.
func OutdatedAt(ua useragent.UserAgent, monthsThreshold int, at time.Time) bool {
	if monthsThreshold <= 0 {
		monthsThreshold = DefaultOutdatedMonths
	}

	released, ok := releaseMonth(ua.Browser())
	if !ok {
		return true
	}
	return released.AddDate(0, monthsThreshold, 0).Before(at)
}

func releaseMonth(browser useragent.Browser) (time.Time, bool) {
	family, ok := releaseTable[CanonicalBrowser(browser.Name)]
	if !ok {
		return time.Time{}, false
	}
	if !browser.Major.IsSet() {
		return time.Time{}, false
	}

	// Safari entries carry fractional keys; try "major.minor" before
	// falling back to the bare major.
	if browser.Minor.IsSet() {
		key := fmt.Sprintf("%d.%d", browser.Major.Value(), browser.Minor.Value())
		if month, ok := family[key]; ok {
			return parseMonth(month)
		}
	}
	if month, ok := family[fmt.Sprintf("%d", browser.Major.Value())]; ok {
		return parseMonth(month)
	}
	return time.Time{}, false
}

func parseMonth(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SecurityLevel composes automation status, modernity and release age into
// a 4-tier trust ordinal:
//
//	critical – automated (bot or headless) traffic
//	low      – unknown browser family, or a build past the outdated threshold
//	medium   – current enough but below the modern baseline
//	high     – modern and recent
func SecurityLevel(ua useragent.UserAgent) SecLevel {
	return SecurityLevelAt(ua, time.Now())
}

// SecurityLevelAt is SecurityLevel against an explicit reference time.
func SecurityLevelAt(ua useragent.UserAgent, at time.Time) SecLevel {
	if ua.IsBot() || ua.IsHeadless() {
		return SecLevelCritical
	}
	if ua.Browser().Name == useragent.BrowserUnknown || OutdatedAt(ua, DefaultOutdatedMonths, at) {
		return SecLevelLow
	}
	if !IsModern(ua) {
		return SecLevelMedium
	}
	return SecLevelHigh
}
