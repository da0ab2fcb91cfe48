package useragent

import (
	"regexp"
	"strings"
)

// Engine detection is keyed off raw tokens, not the resolved browser name,
// so it can run standalone against any string.
var (
	chromeVersionRe = regexp.MustCompile(`(?i)(?:chrome|crios)/([\d.]+)`)
	webkitVersionRe = regexp.MustCompile(`(?i)applewebkit/([\d.]+)`)
	geckoVersionRe  = regexp.MustCompile(`(?i)rv:([\d.]+)`)
	ffVersionRe     = regexp.MustCompile(`(?i)(?:firefox|fxios)/([\d.]+)`)
	tridentRe       = regexp.MustCompile(`(?i)trident/([\d.]+)`)
	prestoRe        = regexp.MustCompile(`(?i)presto/([\d.]+)`)
)

var blinkTokens = []string{"edg/", "edga/", "edgdev/", "opr/", "chrome/", "crios/"}

// DetectEngine identifies the rendering engine from a lower-cased UA string.
func DetectEngine(lowerUA string) Engine {
	// Presto first: legacy Opera UAs carry no Chromium tokens at all.
	if strings.Contains(lowerUA, "presto/") {
		return Engine{Name: EnginePresto, Version: NormalizeVersion(extractVersion(lowerUA, prestoRe))}
	}

	for _, token := range blinkTokens {
		if strings.Contains(lowerUA, token) {
			version := extractVersion(lowerUA, chromeVersionRe)
			if version == "" {
				version = extractVersion(lowerUA, webkitVersionRe)
			}
			return Engine{Name: EngineBlink, Version: NormalizeVersion(version)}
		}
	}

	// WebKit before Gecko: iOS browser shells (FxiOS, EdgiOS) all run the
	// system WebKit regardless of the brand token.
	if strings.Contains(lowerUA, "applewebkit/") {
		return Engine{Name: EngineWebKit, Version: NormalizeVersion(extractVersion(lowerUA, webkitVersionRe))}
	}

	if strings.Contains(lowerUA, "firefox/") ||
		(strings.Contains(lowerUA, "gecko/") && strings.Contains(lowerUA, "rv:")) {
		version := extractVersion(lowerUA, geckoVersionRe)
		if version == "" {
			version = extractVersion(lowerUA, ffVersionRe)
		}
		return Engine{Name: EngineGecko, Version: NormalizeVersion(version)}
	}

	if strings.Contains(lowerUA, "trident/") || strings.Contains(lowerUA, "msie") {
		return Engine{Name: EngineTrident, Version: NormalizeVersion(extractVersion(lowerUA, tridentRe))}
	}

	return Engine{Name: EngineUnknown}
}
