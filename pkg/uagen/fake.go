package uagen

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// FakeReport is the result of the forgery heuristic.
type FakeReport struct {
	IsFake     bool
	Confidence int // 0-100
	Reasons    []string
}

// Scoring weights. These are the testable contract of DetectFake, not an
// implementation detail; changing one changes classification outcomes.
const (
	weightSafariMismatch  = 30
	weightIOSNoWebKitShim = 40
	weightChromeOnXP      = 50
	weightChromeNoWebKit  = 40
	weightTooManyBrowsers = 20
	weightNoMozillaPrefix = 10
	weightTooShort        = 20
	weightTooLong         = 10
)

const (
	minPlausibleLength = 50
	maxPlausibleLength = 500
	fakeThreshold      = 50
	modernChromeMajor  = 80
)

var (
	fakeChromeRe = regexp.MustCompile(`(?i)chrome/(\d+)`)
	fakeSafariRe = regexp.MustCompile(`(?i)safari/([\d.]+)`)
)

// Browser identity tokens counted for the too-many-brands signal.
var browserIdentityTokens = []string{
	"chrome/", "crios/", "firefox/", "fxios/", "opr/", "opera/",
	"edg/", "edga/", "edgdev/", "edgios/", "msie", "samsungbrowser/",
	"ucbrowser", "qqbrowser",
}

// DetectFake scores independent implausibility signals over a raw UA
// string. Each trigger adds its fixed weight; confidence is the sum
// capped at 100 and IsFake fires above 50. Signals are additive and
// independent, so a string can trip several at once.
func DetectFake(rawUA string) FakeReport {
	lowerUA := strings.ToLower(rawUA)
	var report FakeReport

	add := func(weight int, reason string) {
		report.Confidence += weight
		report.Reasons = append(report.Reasons, reason)
	}

	chromeMajor := useragent.Number{}
	if m := fakeChromeRe.FindStringSubmatch(lowerUA); len(m) > 1 {
		chromeMajor = useragent.ParseNumber(m[1])
	}

	// Real Chromium builds have pinned the Safari token at 537.36 for a
	// decade; any other pairing is hand-rolled.
	if chromeMajor.IsSet() && chromeMajor.Value() >= modernChromeMajor {
		if m := fakeSafariRe.FindStringSubmatch(lowerUA); len(m) > 1 && m[1] != "537.36" {
			add(weightSafariMismatch, "chrome paired with an implausible safari version")
		}
	}

	iosDevice := strings.Contains(lowerUA, "iphone") || strings.Contains(lowerUA, "ipad") || strings.Contains(lowerUA, "ipod")
	if iosDevice && !strings.Contains(lowerUA, "safari") &&
		!strings.Contains(lowerUA, "crios") && !strings.Contains(lowerUA, "fxios") {
		add(weightIOSNoWebKitShim, "ios device without a safari, crios or fxios token")
	}

	if chromeMajor.IsSet() && chromeMajor.Value() >= modernChromeMajor &&
		(strings.Contains(lowerUA, "windows nt 5.1") || strings.Contains(lowerUA, "windows nt 5.2")) {
		add(weightChromeOnXP, "modern chrome claiming windows xp")
	}

	if strings.Contains(lowerUA, "chrome/") && !strings.Contains(lowerUA, "applewebkit") {
		add(weightChromeNoWebKit, "chrome token without an applewebkit token")
	}

	distinct := 0
	for _, token := range browserIdentityTokens {
		if strings.Contains(lowerUA, token) {
			distinct++
		}
	}
	if distinct > 3 {
		add(weightTooManyBrowsers, "more than three browser identity tokens")
	}

	if !strings.HasPrefix(rawUA, "Mozilla/5.0") {
		add(weightNoMozillaPrefix, "missing Mozilla/5.0 prefix")
	}

	switch {
	case len(rawUA) < minPlausibleLength:
		add(weightTooShort, "implausibly short")
	case len(rawUA) > maxPlausibleLength:
		add(weightTooLong, "implausibly long")
	}

	if report.Confidence > 100 {
		report.Confidence = 100
	}
	report.IsFake = report.Confidence > fakeThreshold
	return report
}
