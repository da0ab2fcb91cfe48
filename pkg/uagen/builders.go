package uagen

import (
	"strings"

	"github.com/dmitrymomot/uakit/pkg/uaversion"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// osBuilder renders the three fragments of a UA string for one OS family:
// the parenthesized system info, the engine token and the browser token.
// Each builder owns its own per-browser sub-switch because token shapes
// differ per platform (iOS renders CriOS, Android appends Mobile, and so
// on).
type osBuilder interface {
	fragments(spec Spec) (system, engine, browser string)
}

var osBuilders = map[string]osBuilder{
	"windows": windowsBuilder{},
	"macos":   macBuilder{},
	"linux":   linuxBuilder{},
	"ios":     iosBuilder{},
	"android": androidBuilder{},
}

func builderFor(osName string) osBuilder {
	if b, ok := osBuilders[osKey(osName)]; ok {
		return b
	}
	// Unknown OS names render a desktop Windows shape; Generate is total.
	return windowsBuilder{}
}

const (
	blinkEngineToken  = "AppleWebKit/537.36 (KHTML, like Gecko)"
	webkitEngineToken = "AppleWebKit/605.1.15 (KHTML, like Gecko)"
	geckoEngineToken  = "Gecko/20100101"
	mobileBuildToken  = "Mobile/15E148"
)

func majorOf(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}

// --- Windows ---

type windowsBuilder struct{}

var windowsNTVersions = map[string]string{
	"11":    "10.0",
	"10":    "10.0",
	"8.1":   "6.3",
	"8":     "6.2",
	"7":     "6.1",
	"vista": "6.0",
	"xp":    "5.1",
}

func (windowsBuilder) fragments(spec Spec) (string, string, string) {
	nt, ok := windowsNTVersions[strings.ToLower(spec.OS.Version)]
	if !ok {
		nt = "10.0"
	}

	arch := ""
	switch spec.CPU.Architecture {
	case useragent.ArchAMD64:
		arch = "; Win64; x64"
	case useragent.ArchARM64:
		arch = "; ARM64"
	case useragent.ArchIA32:
		arch = "; WOW64"
	}

	v := spec.Browser.Version
	switch uaversion.CanonicalBrowser(spec.Browser.Name) {
	case "firefox":
		system := "(Windows NT " + nt + arch + "; rv:" + majorOf(v) + ".0)"
		return system, geckoEngineToken, "Firefox/" + v
	case "internet explorer":
		return "(Windows NT " + nt + "; Trident/7.0; rv:" + v + ")", "", "like Gecko"
	case "edge":
		system := "(Windows NT " + nt + arch + ")"
		return system, blinkEngineToken, "Chrome/" + v + " Safari/537.36 Edg/" + v
	case "opera":
		system := "(Windows NT " + nt + arch + ")"
		return system, blinkEngineToken, "Chrome/" + v + " Safari/537.36 OPR/" + v
	default:
		system := "(Windows NT " + nt + arch + ")"
		return system, blinkEngineToken, "Chrome/" + v + " Safari/537.36"
	}
}

// --- macOS ---

type macBuilder struct{}

func (macBuilder) fragments(spec Spec) (string, string, string) {
	osv := strings.ReplaceAll(spec.OS.Version, ".", "_")
	v := spec.Browser.Version

	switch uaversion.CanonicalBrowser(spec.Browser.Name) {
	case "safari":
		system := "(Macintosh; Intel Mac OS X " + osv + ")"
		return system, webkitEngineToken, "Version/" + v + " Safari/605.1.15"
	case "firefox":
		system := "(Macintosh; Intel Mac OS X " + strings.ReplaceAll(spec.OS.Version, "_", ".") + "; rv:" + majorOf(v) + ".0)"
		return system, geckoEngineToken, "Firefox/" + v
	case "edge":
		system := "(Macintosh; Intel Mac OS X " + osv + ")"
		return system, blinkEngineToken, "Chrome/" + v + " Safari/537.36 Edg/" + v
	case "opera":
		system := "(Macintosh; Intel Mac OS X " + osv + ")"
		return system, blinkEngineToken, "Chrome/" + v + " Safari/537.36 OPR/" + v
	default:
		system := "(Macintosh; Intel Mac OS X " + osv + ")"
		return system, blinkEngineToken, "Chrome/" + v + " Safari/537.36"
	}
}

// --- Linux ---

type linuxBuilder struct{}

var linuxArchTokens = map[string]string{
	useragent.ArchAMD64: "x86_64",
	useragent.ArchARM64: "aarch64",
	useragent.ArchIA32:  "i686",
	useragent.ArchARM:   "armv7l",
}

func (linuxBuilder) fragments(spec Spec) (string, string, string) {
	arch, ok := linuxArchTokens[spec.CPU.Architecture]
	if !ok {
		arch = "x86_64"
	}
	v := spec.Browser.Version

	switch uaversion.CanonicalBrowser(spec.Browser.Name) {
	case "firefox":
		system := "(X11; Linux " + arch + "; rv:" + majorOf(v) + ".0)"
		return system, geckoEngineToken, "Firefox/" + v
	case "edge":
		return "(X11; Linux " + arch + ")", blinkEngineToken, "Chrome/" + v + " Safari/537.36 Edg/" + v
	case "opera":
		return "(X11; Linux " + arch + ")", blinkEngineToken, "Chrome/" + v + " Safari/537.36 OPR/" + v
	default:
		return "(X11; Linux " + arch + ")", blinkEngineToken, "Chrome/" + v + " Safari/537.36"
	}
}

// --- iOS ---

type iosBuilder struct{}

func (iosBuilder) fragments(spec Spec) (string, string, string) {
	osv := strings.ReplaceAll(spec.OS.Version, ".", "_")

	system := "(iPhone; CPU iPhone OS " + osv + " like Mac OS X)"
	if spec.Device.Type == useragent.DeviceTablet {
		system = "(iPad; CPU OS " + osv + " like Mac OS X)"
	}

	v := spec.Browser.Version
	switch uaversion.CanonicalBrowser(spec.Browser.Name) {
	case "chrome":
		return system, webkitEngineToken, "CriOS/" + v + " " + mobileBuildToken + " Safari/604.1"
	case "firefox":
		return system, webkitEngineToken, "FxiOS/" + v + " " + mobileBuildToken + " Safari/605.1.15"
	case "edge":
		return system, webkitEngineToken, "Version/" + spec.OS.Version + " EdgiOS/" + v + " " + mobileBuildToken + " Safari/604.1"
	default:
		// Everything else on iOS renders Safari-shaped tokens.
		return system, webkitEngineToken, "Version/" + v + " " + mobileBuildToken + " Safari/604.1"
	}
}

// --- Android ---

type androidBuilder struct{}

func (androidBuilder) fragments(spec Spec) (string, string, string) {
	model := spec.Device.Model
	if model == "" {
		model = defaultAndroidModels[useragent.DeviceMobile]
	}
	system := "(Linux; Android " + spec.OS.Version + "; " + model + ")"

	// Phones carry a Mobile token; tablets omit it, which is exactly how
	// the classifier tells them apart.
	mobile := "Mobile "
	if spec.Device.Type == useragent.DeviceTablet {
		mobile = ""
	}

	v := spec.Browser.Version
	switch uaversion.CanonicalBrowser(spec.Browser.Name) {
	case "firefox":
		system = "(Android " + spec.OS.Version + "; Mobile; rv:" + majorOf(v) + ".0)"
		return system, "Gecko/" + majorOf(v) + ".0", "Firefox/" + v
	case "samsung internet":
		return system, blinkEngineToken, "SamsungBrowser/" + v + " Chrome/115.0.0.0 " + mobile + "Safari/537.36"
	case "edge":
		return system, blinkEngineToken, "Chrome/" + v + " " + mobile + "Safari/537.36 EdgA/" + v
	case "opera":
		return system, blinkEngineToken, "Chrome/" + v + " " + mobile + "Safari/537.36 OPR/" + v
	default:
		return system, blinkEngineToken, "Chrome/" + v + " " + mobile + "Safari/537.36"
	}
}
