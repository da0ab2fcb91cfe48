package uagen_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/uakit/pkg/uagen"

	"github.com/stretchr/testify/assert"
)

func TestDetectFakeIOSWithoutWebKitShim(t *testing.T) {
	// An iPhone claiming a bare Chrome engine: no Safari, CriOS or FxiOS
	// token (+40) and no AppleWebKit token (+40).
	report := uagen.DetectFake("Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) Chrome/90.0")

	assert.True(t, report.IsFake)
	assert.Equal(t, 80, report.Confidence)
	assert.Len(t, report.Reasons, 2)
}

func TestDetectFakeGenuineStrings(t *testing.T) {
	genuine := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
		"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
	}

	for _, ua := range genuine {
		report := uagen.DetectFake(ua)
		assert.False(t, report.IsFake, "ua: %s reasons: %v", ua, report.Reasons)
	}
}

func TestDetectFakeWeights(t *testing.T) {
	tests := []struct {
		name       string
		ua         string
		confidence int
	}{
		{
			// +50 XP, rest of the string is shaped normally.
			name:       "modern chrome on windows xp",
			ua:         "Mozilla/5.0 (Windows NT 5.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			confidence: 50,
		},
		{
			// Chrome 79 predates the modern threshold, so XP is plausible.
			name:       "old chrome on windows xp",
			ua:         "Mozilla/5.0 (Windows NT 5.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/79.0.3945.88 Safari/537.36",
			confidence: 0,
		},
		{
			// +50 at the threshold exactly.
			name:       "chrome 80 on windows xp",
			ua:         "Mozilla/5.0 (Windows NT 5.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/80.0.3987.132 Safari/537.36",
			confidence: 50,
		},
		{
			// +30 implausible safari pairing.
			name:       "chrome with wrong safari version",
			ua:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/601.1.15",
			confidence: 30,
		},
		{
			// +10 prefix, +20 short.
			name:       "short prefixless string",
			ua:         "curl/8.4.0",
			confidence: 30,
		},
		{
			// +20 for more than three identity tokens.
			name:       "token stuffing",
			ua:         "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Firefox/125.0 OPR/106.0.0.0 Edg/124.0.0.0 Safari/537.36",
			confidence: 20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := uagen.DetectFake(tc.ua)
			assert.Equal(t, tc.confidence, report.Confidence, "reasons: %v", report.Reasons)
			assert.Equal(t, tc.confidence > 50, report.IsFake)
		})
	}
}

func TestDetectFakeConfidenceCap(t *testing.T) {
	// Trips XP (+50), missing AppleWebKit (+40), short (+20): capped.
	report := uagen.DetectFake("Mozilla/5.0 (Windows NT 5.1) Chrome/124.0")

	assert.True(t, report.IsFake)
	assert.Equal(t, 100, report.Confidence)
}

func TestDetectFakeLongString(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 " + strings.Repeat("x", 500)
	report := uagen.DetectFake(ua)

	assert.Equal(t, 10, report.Confidence)
	assert.False(t, report.IsFake)
}
