package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/uakit/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestDetectOSWindowsVersions(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{"Windows XP", "mozilla/4.0 (compatible; msie 6.0; windows nt 5.1)", "XP"},
		{"Windows 7", "mozilla/5.0 (windows nt 6.1; wow64) applewebkit/537.36", "7"},
		{"Windows 8.1", "mozilla/5.0 (windows nt 6.3; win64; x64)", "8.1"},
		{"Windows 10 without build signal", "mozilla/5.0 (windows nt 10.0; win64; x64) chrome/124.0.0.0", "10"},
		{"Windows 11 via high build", "mozilla/5.0 (windows nt 10.0; win64; x64) chrome/124.0.0.0 build/22631", "11"},
		{"build below threshold stays 10", "mozilla/5.0 (windows nt 10.0; win64; x64) build/19045", "10"},
		{"bare high number is not a build signal", "mozilla/5.0 (windows nt 10.0; win64; x64) chrome/124.0.22631.0 somesuite 22631", "10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			os := useragent.DetectOS(tc.ua)
			assert.Equal(t, useragent.OSWindows, os.Name)
			assert.Equal(t, tc.expected, os.Version)
		})
	}
}

func TestDetectOSMacVersions(t *testing.T) {
	// Underscore-separated versions are rewritten with dots.
	os := useragent.DetectOS("mozilla/5.0 (macintosh; intel mac os x 10_15_7) applewebkit/605.1.15")
	assert.Equal(t, useragent.OSMacOS, os.Name)
	assert.Equal(t, "10.15.7", os.Version)

	// Big Sur renumbering: 10.16 is really 11.0.
	os = useragent.DetectOS("mozilla/5.0 (macintosh; intel mac os x 10_16) applewebkit/605.1.15")
	assert.Equal(t, "11.0", os.Version)
}

func TestDetectOSPriority(t *testing.T) {
	// iPad UAs also claim "like Mac OS X"; iOS must win.
	os := useragent.DetectOS("mozilla/5.0 (ipad; cpu os 16_6 like mac os x) applewebkit/605.1.15")
	assert.Equal(t, useragent.OSiOS, os.Name)
	assert.Equal(t, "16.6", os.Version)

	// HarmonyOS UAs also carry an Android token.
	os = useragent.DetectOS("mozilla/5.0 (phone; harmonyos 4.0; android 12; els-an00) applewebkit/537.36")
	assert.Equal(t, useragent.OSHarmonyOS, os.Name)

	// Android must not fall through to Linux.
	os = useragent.DetectOS("mozilla/5.0 (linux; android 14; pixel 8) applewebkit/537.36")
	assert.Equal(t, useragent.OSAndroid, os.Name)
	assert.Equal(t, "14", os.Version)
}
