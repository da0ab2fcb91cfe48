package useragent

import "strconv"

// Number is an optional non-negative integer used for version components.
// The zero value is "absent"; an absent Number never participates in
// arithmetic or comparisons as if it were zero.
type Number struct {
	value int
	set   bool
}

// N constructs a present Number. Negative inputs yield an absent Number.
func N(v int) Number {
	if v < 0 {
		return Number{}
	}
	return Number{value: v, set: true}
}

// ParseNumber parses a decimal component into a Number.
// Non-numeric or negative input yields an absent Number.
func ParseNumber(s string) Number {
	v, err := strconv.Atoi(s)
	if err != nil {
		return Number{}
	}
	return N(v)
}

// IsSet reports whether the number carries a value.
func (n Number) IsSet() bool { return n.set }

// Value returns the numeric value, or 0 when absent.
// Check IsSet to distinguish absent from a present zero.
func (n Number) Value() int { return n.value }

func (n Number) String() string {
	if !n.set {
		return "?"
	}
	return strconv.Itoa(n.value)
}

// Browser holds the detected browser identity.
type Browser struct {
	Name    string
	Version string
	Major   Number
	Minor   Number
	Patch   Number
	Channel Channel
}

// Engine holds the detected rendering engine.
type Engine struct {
	Name    string
	Version string
}

// OS holds the detected operating system.
type OS struct {
	Name    string
	Version string
}

// Device holds the detected device class and optional hardware identity.
type Device struct {
	Type   DeviceType
	Vendor string
	Model  string
}

// CPU holds the detected processor architecture.
type CPU struct {
	Architecture string
}

// UserAgent is the complete classification of a raw User-Agent string.
// Fields are unexported so a value is immutable after construction; the
// accessors return copies, which keeps cached results shared by the
// engine facade safe from caller writes.
type UserAgent struct {
	source string

	browser Browser
	engine  Engine
	os      OS
	device  Device
	cpu     CPU

	isBot      bool
	isWebView  bool
	isHeadless bool
}

// Fields is the full set of classification facts, with everything
// writable. It exists for callers that post-process a classification,
// such as plugin overlays in the engine facade: read the facts off an
// existing UserAgent, adjust some, and construct a new value with New.
// The source string is deliberately not part of Fields.
type Fields struct {
	Browser Browser
	Engine  Engine
	OS      OS
	Device  Device
	CPU     CPU

	// Behavioral flags. Independent signals, not mutually exclusive:
	// a crawler running inside an embedded shell sets both IsBot and
	// IsWebView.
	IsBot      bool
	IsWebView  bool
	IsHeadless bool
}

// New constructs a UserAgent from explicit classification facts. The
// source is fixed at construction and preserved verbatim.
func New(source string, f Fields) UserAgent {
	return UserAgent{
		source:     source,
		browser:    f.Browser,
		engine:     f.Engine,
		os:         f.OS,
		device:     f.Device,
		cpu:        f.CPU,
		isBot:      f.IsBot,
		isWebView:  f.IsWebView,
		isHeadless: f.IsHeadless,
	}
}

// Fields returns a writable copy of the classification facts.
func (ua UserAgent) Fields() Fields {
	return Fields{
		Browser:    ua.browser,
		Engine:     ua.engine,
		OS:         ua.os,
		Device:     ua.device,
		CPU:        ua.cpu,
		IsBot:      ua.isBot,
		IsWebView:  ua.isWebView,
		IsHeadless: ua.isHeadless,
	}
}

// Source returns the original raw input, preserved verbatim.
func (ua UserAgent) Source() string { return ua.source }

// Browser returns the detected browser identity.
func (ua UserAgent) Browser() Browser { return ua.browser }

// Engine returns the detected rendering engine.
func (ua UserAgent) Engine() Engine { return ua.engine }

// OS returns the detected operating system.
func (ua UserAgent) OS() OS { return ua.os }

// Device returns the detected device class and hardware identity.
func (ua UserAgent) Device() Device { return ua.device }

// CPU returns the detected processor architecture.
func (ua UserAgent) CPU() CPU { return ua.cpu }

// IsBot reports whether the UA carries a crawler signature.
func (ua UserAgent) IsBot() bool { return ua.isBot }

// IsWebView reports whether the UA carries an app-embedding signature.
func (ua UserAgent) IsWebView() bool { return ua.isWebView }

// IsHeadless reports whether the UA carries a headless-automation
// signature.
func (ua UserAgent) IsHeadless() bool { return ua.isHeadless }

// IsMobile reports whether the device classified as a phone.
func (ua UserAgent) IsMobile() bool { return ua.device.Type == DeviceMobile }

// IsTablet reports whether the device classified as a tablet.
func (ua UserAgent) IsTablet() bool { return ua.device.Type == DeviceTablet }

// IsDesktop reports whether the device classified as a desktop.
func (ua UserAgent) IsDesktop() bool { return ua.device.Type == DeviceDesktop }

// IsTV reports whether the device classified as a smart TV.
func (ua UserAgent) IsTV() bool { return ua.device.Type == DeviceTV }

// IsUnknown reports whether nothing usable was detected.
func (ua UserAgent) IsUnknown() bool {
	return ua.browser.Name == BrowserUnknown && ua.os.Name == OSUnknown
}

// String returns the original raw input.
func (ua UserAgent) String() string { return ua.source }
