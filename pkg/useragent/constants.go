package useragent

// DeviceType is the closed set of device classes.
type DeviceType string

const (
	// DeviceDesktop identifies desktop computers and laptops. It is also
	// the fallback class when nothing more specific matches.
	DeviceDesktop DeviceType = "desktop"

	// DeviceMobile identifies smartphones.
	DeviceMobile DeviceType = "mobile"

	// DeviceTablet identifies tablets (iPad, Android tablets, Kindle).
	DeviceTablet DeviceType = "tablet"

	// DeviceTV identifies smart TVs and streaming devices.
	DeviceTV DeviceType = "tv"

	// DeviceWearable identifies watches and other wearables.
	DeviceWearable DeviceType = "wearable"
)

// Channel is a browser release track.
type Channel string

const (
	ChannelStable  Channel = "stable"
	ChannelBeta    Channel = "beta"
	ChannelDev     Channel = "dev"
	ChannelCanary  Channel = "canary"
	ChannelNightly Channel = "nightly"
	ChannelESR     Channel = "esr"
)

// Browser name identifiers.
const (
	BrowserChrome  = "Chrome"
	BrowserEdge    = "Edge"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserOpera   = "Opera"
	BrowserSamsung = "Samsung Internet"
	BrowserIE      = "Internet Explorer"
	BrowserQQ      = "QQ Browser"
	BrowserUC      = "UC Browser"
	Browser360     = "360 Browser"
	BrowserSogou   = "Sogou Explorer"
	BrowserUnknown = "Unknown"
)

// Rendering engine identifiers.
const (
	EngineBlink   = "Blink"
	EngineWebKit  = "WebKit"
	EngineGecko   = "Gecko"
	EngineTrident = "Trident"
	EnginePresto  = "Presto"
	EngineUnknown = "Unknown"
)

// Operating system identifiers.
const (
	OSWindows   = "Windows"
	OSMacOS     = "macOS"
	OSiOS       = "iOS"
	OSAndroid   = "Android"
	OSHarmonyOS = "HarmonyOS"
	OSLinux     = "Linux"
	OSChromeOS  = "ChromeOS"
	OSFreeBSD   = "FreeBSD"
	OSUnknown   = "Unknown"
)

// CPU architecture identifiers.
const (
	ArchAMD64   = "amd64"
	ArchARM64   = "arm64"
	ArchARM     = "arm"
	ArchIA32    = "ia32"
	ArchUnknown = "unknown"
)

// Device vendor identifiers used by model extraction.
const (
	VendorApple   = "Apple"
	VendorSamsung = "Samsung"
	VendorGoogle  = "Google"
	VendorHuawei  = "Huawei"
	VendorXiaomi  = "Xiaomi"
	VendorOppo    = "Oppo"
	VendorVivo    = "Vivo"
	VendorAmazon  = "Amazon"
)
