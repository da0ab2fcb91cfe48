package uagen

import (
	"strings"

	"github.com/dmitrymomot/uakit/pkg/uaversion"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Spec is a partial description of the UA string to synthesize. Every
// unset leaf is filled from the default table (Chrome 120 on Windows 10,
// amd64, desktop) before generation.
type Spec struct {
	Browser BrowserSpec
	Engine  EngineSpec
	OS      OSSpec
	Device  DeviceSpec
	CPU     CPUSpec
}

type BrowserSpec struct {
	Name    string
	Version string
}

type EngineSpec struct {
	Name    string
	Version string
}

type OSSpec struct {
	Name    string
	Version string
}

type DeviceSpec struct {
	Type  useragent.DeviceType
	Model string
}

type CPUSpec struct {
	Architecture string
}

// Default versions used when a spec names an OS but not its version.
var defaultOSVersions = map[string]string{
	"windows": "10",
	"macos":   "14.4",
	"ios":     "17.0",
	"android": "14",
}

// Default versions used when a spec names a browser but not its version.
var defaultBrowserVersions = map[string]string{
	"safari":            "17.0",
	"firefox":           "121.0",
	"internet explorer": "11.0",
	"samsung internet":  "23.0",
}

const (
	defaultBrowserName    = useragent.BrowserChrome
	defaultBrowserVersion = "120.0.0.0"
	defaultOSName         = useragent.OSWindows
	defaultArch           = useragent.ArchAMD64
	defaultDeviceType     = useragent.DeviceDesktop
)

// Android hardware fallbacks per device class.
var defaultAndroidModels = map[useragent.DeviceType]string{
	useragent.DeviceMobile: "Pixel 8",
	useragent.DeviceTablet: "SM-X906C",
}

func fillDefaults(spec Spec) Spec {
	if spec.Browser.Name == "" {
		spec.Browser.Name = defaultBrowserName
	}
	if spec.Browser.Version == "" {
		if v, ok := defaultBrowserVersions[uaversion.CanonicalBrowser(spec.Browser.Name)]; ok {
			spec.Browser.Version = v
		} else {
			spec.Browser.Version = defaultBrowserVersion
		}
	}
	if spec.OS.Name == "" {
		spec.OS.Name = defaultOSName
	}
	if spec.OS.Version == "" {
		spec.OS.Version = defaultOSVersions[osKey(spec.OS.Name)]
	}
	if spec.CPU.Architecture == "" {
		spec.CPU.Architecture = defaultArch
	}
	if spec.Device.Type == "" {
		spec.Device.Type = defaultDeviceType
	}
	if spec.Device.Model == "" {
		spec.Device.Model = defaultAndroidModels[spec.Device.Type]
	}
	return spec
}

// osKey normalizes an OS name for builder selection.
func osKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "mac os", "mac os x", "osx", "darwin":
		return "macos"
	case "win", "win32", "win64":
		return "windows"
	default:
		return key
	}
}
