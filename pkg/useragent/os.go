package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	iosVersionRe      = regexp.MustCompile(`(?i)os (\d+(?:[._]\d+){0,2})`)
	harmonyVersionRe  = regexp.MustCompile(`(?i)harmonyos[ /]?(\d+(?:\.\d+){0,2})`)
	androidVersionRe  = regexp.MustCompile(`(?i)android (\d+(?:\.\d+){0,2})`)
	windowsNTRe       = regexp.MustCompile(`(?i)windows nt (\d+\.\d+)`)
	windowsBuildRe    = regexp.MustCompile(`(?i)\bbuild[/ ](\d{5})\b`)
	macVersionRe      = regexp.MustCompile(`(?i)mac os x (\d+(?:[._]\d+){0,2})`)
	chromeOSVersionRe = regexp.MustCompile(`(?i)cros [\w]+ (\d+(?:\.\d+){0,3})`)
	freeBSDVersionRe  = regexp.MustCompile(`(?i)freebsd (\d+(?:\.\d+){0,2})`)
)

// Windows NT kernel version to marketing name.
var windowsNTNames = map[string]string{
	"5.1":  "XP",
	"5.2":  "XP",
	"6.0":  "Vista",
	"6.1":  "7",
	"6.2":  "8",
	"6.3":  "8.1",
	"10.0": "10",
}

// windows11Build is the first Windows 11 build number. NT 10.0 is shared
// by Windows 10 and 11; only a build token at or above this disambiguates.
const windows11Build = 22000

// DetectOS identifies the operating system from a lower-cased UA string.
// Order matters: iOS tokens first (an iPad UA also says "like Mac OS X"),
// HarmonyOS and Android before Windows and macOS, Linux excluding Android
// and ChromeOS tokens.
func DetectOS(lowerUA string) OS {
	switch {
	case strings.Contains(lowerUA, "iphone"), strings.Contains(lowerUA, "ipad"), strings.Contains(lowerUA, "ipod"):
		return OS{Name: OSiOS, Version: NormalizeVersion(extractVersion(lowerUA, iosVersionRe))}

	case strings.Contains(lowerUA, "harmonyos"):
		return OS{Name: OSHarmonyOS, Version: extractVersion(lowerUA, harmonyVersionRe)}

	case strings.Contains(lowerUA, "android"):
		return OS{Name: OSAndroid, Version: extractVersion(lowerUA, androidVersionRe)}

	case strings.Contains(lowerUA, "windows"):
		return OS{Name: OSWindows, Version: windowsVersion(lowerUA)}

	case strings.Contains(lowerUA, "macintosh"), strings.Contains(lowerUA, "mac os x"):
		return OS{Name: OSMacOS, Version: macVersion(lowerUA)}

	case strings.Contains(lowerUA, "cros") || strings.Contains(lowerUA, "chromeos"):
		return OS{Name: OSChromeOS, Version: extractVersion(lowerUA, chromeOSVersionRe)}

	case strings.Contains(lowerUA, "freebsd"):
		return OS{Name: OSFreeBSD, Version: extractVersion(lowerUA, freeBSDVersionRe)}

	case strings.Contains(lowerUA, "linux"), strings.Contains(lowerUA, "x11"),
		strings.Contains(lowerUA, "ubuntu"), strings.Contains(lowerUA, "fedora"),
		strings.Contains(lowerUA, "debian"):
		return OS{Name: OSLinux}

	default:
		return OS{Name: OSUnknown}
	}
}

func windowsVersion(lowerUA string) string {
	nt := extractVersion(lowerUA, windowsNTRe)
	name, ok := windowsNTNames[nt]
	if !ok {
		return nt
	}
	if nt == "10.0" {
		// Windows 11 keeps NT 10.0; a high build number is the only signal.
		if m := windowsBuildRe.FindStringSubmatch(lowerUA); len(m) > 1 {
			if build, err := strconv.Atoi(m[1]); err == nil && build >= windows11Build {
				return "11"
			}
		}
	}
	return name
}

func macVersion(lowerUA string) string {
	v := NormalizeVersion(extractVersion(lowerUA, macVersionRe))
	// Big Sur renumbering: pre-11 WebKit builds reported 10.16.
	if v == "10.16" {
		return "11.0"
	}
	return v
}
