package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/uakit/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	safariMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0"
	iphoneSafariUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	edgeBetaUA      = "Mozilla/5.0 (Linux; Android 14; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Mobile Safari/537.36 EdgA/123.0.2420.65"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestClassifyChromeOnWindows(t *testing.T) {
	ua := useragent.Classify(chromeWindowsUA)

	assert.Equal(t, useragent.BrowserChrome, ua.Browser().Name)
	require.True(t, ua.Browser().Major.IsSet())
	assert.Equal(t, 124, ua.Browser().Major.Value())
	assert.Equal(t, useragent.OSWindows, ua.OS().Name)
	assert.Equal(t, "10", ua.OS().Version)
	assert.Equal(t, useragent.DeviceDesktop, ua.Device().Type)
	assert.Equal(t, useragent.ArchAMD64, ua.CPU().Architecture)
	assert.Equal(t, useragent.EngineBlink, ua.Engine().Name)
	assert.False(t, ua.IsBot())
	assert.False(t, ua.IsWebView())
	assert.False(t, ua.IsHeadless())
	assert.Equal(t, chromeWindowsUA, ua.Source())
}

func TestClassifyEdgeBetaAfterChromeToken(t *testing.T) {
	// The EdgA token appears after a full Chrome token; Edge must still win.
	ua := useragent.Classify(edgeBetaUA)

	assert.Equal(t, useragent.BrowserEdge, ua.Browser().Name)
	assert.Equal(t, useragent.ChannelBeta, ua.Browser().Channel)
	assert.Equal(t, "123.0.2420.65", ua.Browser().Version)
	assert.Equal(t, useragent.OSAndroid, ua.OS().Name)
	assert.Equal(t, useragent.DeviceMobile, ua.Device().Type)
	assert.Equal(t, useragent.VendorSamsung, ua.Device().Vendor)
	assert.Equal(t, "SM-G998B", ua.Device().Model)
}

func TestClassifyEmptyInput(t *testing.T) {
	ua := useragent.Classify("")

	assert.Equal(t, useragent.BrowserUnknown, ua.Browser().Name)
	assert.False(t, ua.Browser().Major.IsSet())
	assert.False(t, ua.Browser().Minor.IsSet())
	assert.False(t, ua.Browser().Patch.IsSet())
	assert.Equal(t, useragent.DeviceDesktop, ua.Device().Type)
	assert.False(t, ua.IsBot())
	assert.Equal(t, "", ua.Source())
}

func TestClassifyGarbageInput(t *testing.T) {
	ua := useragent.Classify("definitely not a user agent")

	assert.Equal(t, useragent.BrowserUnknown, ua.Browser().Name)
	assert.Equal(t, useragent.OSUnknown, ua.OS().Name)
	assert.Equal(t, "definitely not a user agent", ua.Source())
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name       string
		ua         string
		browser    string
		engine     string
		os         string
		deviceType useragent.DeviceType
	}{
		{
			name:       "Safari on macOS",
			ua:         safariMacUA,
			browser:    useragent.BrowserSafari,
			engine:     useragent.EngineWebKit,
			os:         useragent.OSMacOS,
			deviceType: useragent.DeviceDesktop,
		},
		{
			name:       "Firefox on Linux",
			ua:         firefoxLinuxUA,
			browser:    useragent.BrowserFirefox,
			engine:     useragent.EngineGecko,
			os:         useragent.OSLinux,
			deviceType: useragent.DeviceDesktop,
		},
		{
			name:       "Safari on iPhone",
			ua:         iphoneSafariUA,
			browser:    useragent.BrowserSafari,
			engine:     useragent.EngineWebKit,
			os:         useragent.OSiOS,
			deviceType: useragent.DeviceMobile,
		},
		{
			name:       "Samsung Internet",
			ua:         "Mozilla/5.0 (Linux; Android 13; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/23.0 Chrome/115.0.0.0 Mobile Safari/537.36",
			browser:    useragent.BrowserSamsung,
			engine:     useragent.EngineBlink,
			os:         useragent.OSAndroid,
			deviceType: useragent.DeviceMobile,
		},
		{
			name:       "Opera desktop",
			ua:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 OPR/106.0.0.0",
			browser:    useragent.BrowserOpera,
			engine:     useragent.EngineBlink,
			os:         useragent.OSWindows,
			deviceType: useragent.DeviceDesktop,
		},
		{
			name:       "IE 11",
			ua:         "Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:11.0) like Gecko",
			browser:    useragent.BrowserIE,
			engine:     useragent.EngineTrident,
			os:         useragent.OSWindows,
			deviceType: useragent.DeviceDesktop,
		},
		{
			name:       "Android tablet without Mobile token",
			ua:         "Mozilla/5.0 (Linux; Android 13; SM-X906C) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36",
			browser:    useragent.BrowserChrome,
			engine:     useragent.EngineBlink,
			os:         useragent.OSAndroid,
			deviceType: useragent.DeviceTablet,
		},
		{
			name:       "ChromeOS",
			ua:         "Mozilla/5.0 (X11; CrOS x86_64 14541.0.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36",
			browser:    useragent.BrowserChrome,
			engine:     useragent.EngineBlink,
			os:         useragent.OSChromeOS,
			deviceType: useragent.DeviceDesktop,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ua := useragent.Classify(tc.ua)
			assert.Equal(t, tc.browser, ua.Browser().Name)
			assert.Equal(t, tc.engine, ua.Engine().Name)
			assert.Equal(t, tc.os, ua.OS().Name)
			assert.Equal(t, tc.deviceType, ua.Device().Type)
		})
	}
}

func TestClassifyFlags(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		bot      bool
		webView  bool
		headless bool
	}{
		{
			name: "Googlebot",
			ua:   googlebotUA,
			bot:  true,
		},
		{
			name:     "HeadlessChrome",
			ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/120.0.0.0 Safari/537.36",
			headless: true,
		},
		{
			name:    "Instagram in-app browser",
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 Instagram 290.0.0.13.76",
			webView: true,
		},
		{
			name:    "Android WebView marker",
			ua:      "Mozilla/5.0 (Linux; Android 13; Pixel 7; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/120.0.0.0 Mobile Safari/537.36",
			webView: true,
		},
		{
			name:     "crawler through headless shell is both",
			ua:       "MyAuditBot/1.0 HeadlessChrome/119.0.0.0",
			bot:      true,
			headless: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ua := useragent.Classify(tc.ua)
			assert.Equal(t, tc.bot, ua.IsBot(), "IsBot")
			assert.Equal(t, tc.webView, ua.IsWebView(), "IsWebView")
			assert.Equal(t, tc.headless, ua.IsHeadless(), "IsHeadless")
		})
	}
}

func TestClassifyResultImmutable(t *testing.T) {
	ua := useragent.Classify(chromeWindowsUA)

	// Accessors hand out copies; writing to one never reaches the value.
	b := ua.Browser()
	b.Name = "Tampered"
	assert.Equal(t, useragent.BrowserChrome, ua.Browser().Name)

	f := ua.Fields()
	f.IsBot = true
	assert.False(t, ua.IsBot())
}

func TestNewFromFields(t *testing.T) {
	base := useragent.Classify(chromeWindowsUA)

	f := base.Fields()
	f.Browser.Name = "Custom"
	rebuilt := useragent.New(base.Source(), f)

	assert.Equal(t, "Custom", rebuilt.Browser().Name)
	assert.Equal(t, chromeWindowsUA, rebuilt.Source())
	assert.Equal(t, base.OS(), rebuilt.OS())
	assert.Equal(t, useragent.BrowserChrome, base.Browser().Name, "the source value stays untouched")
}

func TestBotName(t *testing.T) {
	assert.Equal(t, "Googlebot", useragent.BotName(googlebotUA))
	assert.Equal(t, "GPTBot", useragent.BotName("Mozilla/5.0 (compatible; GPTBot/1.2; +https://openai.com/gptbot)"))
	assert.Equal(t, "Unknown Bot", useragent.BotName("plain string"))
}

func TestNumberSemantics(t *testing.T) {
	n := useragent.N(0)
	assert.True(t, n.IsSet(), "present zero must stay distinguishable from absent")
	assert.Equal(t, 0, n.Value())

	var absent useragent.Number
	assert.False(t, absent.IsSet())
	assert.Equal(t, "?", absent.String())

	assert.False(t, useragent.ParseNumber("beta").IsSet())
	assert.False(t, useragent.N(-1).IsSet())
}
