package useragent

import "strings"

// Classify maps a raw User-Agent string to a complete UserAgent. It is
// total: any input, including the empty string, produces a usable result
// and never an error. Garbage collapses to the canonical Unknown
// classification with the source preserved verbatim.
func Classify(raw string) UserAgent {
	if strings.TrimSpace(raw) == "" {
		return Unknown(raw)
	}

	lowerUA := strings.ToLower(raw)

	return UserAgent{
		source:     raw,
		browser:    DetectBrowser(lowerUA),
		engine:     DetectEngine(lowerUA),
		os:         DetectOS(lowerUA),
		device:     DetectDevice(raw, lowerUA),
		cpu:        DetectCPU(lowerUA),
		isBot:      IsBotUA(lowerUA),
		isWebView:  IsWebViewUA(lowerUA),
		isHeadless: IsHeadlessUA(lowerUA),
	}
}

// Unknown returns the canonical classification for unusable input: browser
// and OS unknown, all version numbers absent, device defaulted to desktop,
// flags false. The source is kept as given, empty string included.
func Unknown(raw string) UserAgent {
	return UserAgent{
		source:  raw,
		browser: Browser{Name: BrowserUnknown},
		engine:  Engine{Name: EngineUnknown},
		os:      OS{Name: OSUnknown},
		device:  Device{Type: DeviceDesktop},
		cpu:     CPU{Architecture: ArchUnknown},
	}
}
