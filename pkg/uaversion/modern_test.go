package uaversion_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/uakit/pkg/uaversion"
	"github.com/dmitrymomot/uakit/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func classifyChrome(t *testing.T, version string) useragent.UserAgent {
	t.Helper()
	return useragent.Classify("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/" + version + " Safari/537.36")
}

func classifySafari(t *testing.T, version string) useragent.UserAgent {
	t.Helper()
	return useragent.Classify("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/" + version + " Safari/605.1.15")
}

func TestIsModern(t *testing.T) {
	assert.True(t, uaversion.IsModern(classifyChrome(t, "124.0.0.0")))
	assert.False(t, uaversion.IsModern(classifyChrome(t, "89.0.4389.82")), "below the baseline floor")
	assert.False(t, uaversion.IsModern(useragent.Classify("")), "unknown browser is never modern")
}

func TestIsModernSafariFractionalMajor(t *testing.T) {
	// Safari is compared on its fractional major: 13.1 clears an es2020
	// floor of 13.1 while 13.0 does not, even though both share major 13.
	s131 := classifySafari(t, "13.1")
	s130 := classifySafari(t, "13.0")

	assert.True(t, uaversion.IsModern(classifySafari(t, "14.0")))
	assert.False(t, uaversion.IsModern(s130))

	assert.True(t, uaversion.Satisfies(s131, "Safari >= 13.1"))
	assert.False(t, uaversion.IsModern(s131), "13.1 is still below the 14.0 baseline")
}

func TestIsModernFeatureFloors(t *testing.T) {
	chrome := classifyChrome(t, "124.0.0.0")

	assert.True(t, uaversion.IsModern(chrome,
		uaversion.WithES2020(),
		uaversion.WithWebGL2(),
		uaversion.WithWebAssembly(),
		uaversion.WithServiceWorker(),
	))

	// Safari 14.0 clears the baseline but not the WebGL2 floor (15.0).
	safari := classifySafari(t, "14.0")
	assert.True(t, uaversion.IsModern(safari))
	assert.False(t, uaversion.IsModern(safari, uaversion.WithWebGL2()))
}

func TestOutdatedAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, uaversion.OutdatedAt(classifyChrome(t, "124.0.0.0"), 24, now), "released 2024-04")
	assert.True(t, uaversion.OutdatedAt(classifyChrome(t, "90.0.4430.93"), 24, now), "released 2021-04")
	assert.False(t, uaversion.OutdatedAt(classifyChrome(t, "90.0.4430.93"), 48, now), "within a wider threshold")
	assert.True(t, uaversion.OutdatedAt(classifyChrome(t, "42.0.0.0"), 24, now), "unknown major is conservatively outdated")
	assert.True(t, uaversion.OutdatedAt(useragent.Classify("junk"), 24, now), "unknown browser is conservatively outdated")
}

func TestSecurityLevelAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ua       useragent.UserAgent
		expected uaversion.SecLevel
	}{
		{
			name:     "modern recent browser",
			ua:       classifyChrome(t, "124.0.0.0"),
			expected: uaversion.SecLevelHigh,
		},
		{
			name:     "outdated build",
			ua:       classifyChrome(t, "90.0.4430.93"),
			expected: uaversion.SecLevelLow,
		},
		{
			name:     "crawler",
			ua:       useragent.Classify("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"),
			expected: uaversion.SecLevelCritical,
		},
		{
			name:     "headless automation",
			ua:       useragent.Classify("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/124.0.0.0 Safari/537.36"),
			expected: uaversion.SecLevelCritical,
		},
		{
			name:     "unknown browser",
			ua:       useragent.Classify("something unrecognizable"),
			expected: uaversion.SecLevelLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, uaversion.SecurityLevelAt(tc.ua, now))
		})
	}
}
