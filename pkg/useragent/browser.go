package useragent

import (
	"regexp"
	"strings"
)

// browserRule defines one step of the browser detection cascade.
// Keywords must all be present and excludes all absent (substring match on
// the lower-cased UA) for the rule to fire. Rules are evaluated in
// OrderHint order; precedence matters because many vendor tokens embed
// competitor tokens (every Chromium derivative carries "Chrome/" and
// "Safari/").
type browserRule struct {
	Name      string
	Channel   Channel
	Keywords  []string
	Excludes  []string
	Regex     *regexp.Regexp
	Fallback  *regexp.Regexp // version source tried only when Regex finds nothing
	OrderHint int
}

func (r browserRule) matches(lowerUA string) bool {
	for _, keyword := range r.Keywords {
		if !strings.Contains(lowerUA, keyword) {
			return false
		}
	}
	for _, exclude := range r.Excludes {
		if strings.Contains(lowerUA, exclude) {
			return false
		}
	}
	return true
}

// Browser detection cascade. Edge variants, Samsung and Opera must precede
// Chrome because their UAs also carry a Chrome token; Safari must follow
// Chrome because Chrome UAs always carry a Safari token.
var browserRules = []browserRule{
	{
		Name:      BrowserEdge,
		Channel:   ChannelBeta,
		Keywords:  []string{"edga/"},
		Regex:     regexp.MustCompile(`(?i)edga/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserEdge,
		Channel:   ChannelDev,
		Keywords:  []string{"edgdev/"},
		Regex:     regexp.MustCompile(`(?i)edgdev/([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserEdge,
		Keywords:  []string{"edgios/"},
		Regex:     regexp.MustCompile(`(?i)edgios/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserEdge,
		Keywords:  []string{"edg/"},
		Regex:     regexp.MustCompile(`(?i)edg/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserEdge, // legacy EdgeHTML builds
		Keywords:  []string{"edge/"},
		Regex:     regexp.MustCompile(`(?i)edge/([\d.]+)`),
		OrderHint: 45,
	},
	{
		Name:      BrowserSamsung,
		Keywords:  []string{"samsungbrowser/"},
		Regex:     regexp.MustCompile(`(?i)samsungbrowser/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserOpera,
		Keywords:  []string{"opr/"},
		Regex:     regexp.MustCompile(`(?i)opr/([\d.]+)`),
		OrderHint: 60,
	},
	{
		// Presto-era UAs froze the Opera token at 9.80; the real version
		// lives in a trailing Version token when present.
		Name:      BrowserOpera,
		Keywords:  []string{"opera/"},
		Regex:     regexp.MustCompile(`(?i)version/([\d.]+)`),
		Fallback:  regexp.MustCompile(`(?i)opera/([\d.]+)`),
		OrderHint: 65,
	},
	{
		Name:      BrowserChrome, // Chrome on iOS ships a CriOS token instead of Chrome
		Keywords:  []string{"crios/"},
		Regex:     regexp.MustCompile(`(?i)crios/([\d.]+)`),
		OrderHint: 68,
	},
	{
		Name:      BrowserChrome,
		Keywords:  []string{"chrome/"},
		Excludes:  []string{"edg", "opr/", "samsungbrowser/"},
		Regex:     regexp.MustCompile(`(?i)chrome/([\d.]+)`),
		OrderHint: 70,
	},
	{
		Name:      BrowserFirefox, // Firefox on iOS
		Keywords:  []string{"fxios/"},
		Regex:     regexp.MustCompile(`(?i)fxios/([\d.]+)`),
		OrderHint: 78,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  []string{"firefox/"},
		Regex:     regexp.MustCompile(`(?i)firefox/([\d.]+)`),
		OrderHint: 80,
	},
	{
		Name:      BrowserSafari,
		Keywords:  []string{"safari/"},
		Excludes:  []string{"chrome/", "crios/", "android"},
		Regex:     regexp.MustCompile(`(?i)version/([\d.]+)`),
		OrderHint: 90,
	},
	{
		Name:      BrowserIE,
		Keywords:  []string{"msie"},
		Regex:     regexp.MustCompile(`(?i)msie ([\d.]+)`),
		OrderHint: 100,
	},
	{
		Name:      BrowserIE, // IE 11 dropped the MSIE token
		Keywords:  []string{"trident/"},
		Regex:     regexp.MustCompile(`(?i)rv:([\d.]+)`),
		OrderHint: 110,
	},
	{
		Name:      BrowserQQ,
		Keywords:  []string{"qqbrowser"},
		Regex:     regexp.MustCompile(`(?i)qqbrowser/([\d.]+)`),
		OrderHint: 120,
	},
	{
		Name:      BrowserUC,
		Keywords:  []string{"ucbrowser"},
		Regex:     regexp.MustCompile(`(?i)ucbrowser/([\d.]+)`),
		OrderHint: 130,
	},
	{
		Name:      Browser360,
		Keywords:  []string{"qihoobrowser"},
		Regex:     regexp.MustCompile(`(?i)qihoobrowser/([\d.]+)`),
		OrderHint: 140,
	},
	{
		Name:      Browser360, // desktop builds only flag themselves with 360SE/360EE
		Keywords:  []string{"360se"},
		OrderHint: 145,
	},
	{
		Name:      Browser360,
		Keywords:  []string{"360ee"},
		OrderHint: 146,
	},
	{
		Name:      BrowserSogou,
		Keywords:  []string{"metasr"},
		Regex:     regexp.MustCompile(`(?i)metasr ([\d.]+)`),
		OrderHint: 150,
	},
	{
		Name:      BrowserSogou,
		Keywords:  []string{"sogoumobilebrowser"},
		Regex:     regexp.MustCompile(`(?i)sogoumobilebrowser/([\d.]+)`),
		OrderHint: 155,
	},
}

// Channel sub-tokens checked after the browser rule fires. "dev" needs a
// delimiter to avoid matching inside words like "device".
var channelTokens = []struct {
	token   string
	channel Channel
}{
	{"canary", ChannelCanary},
	{"nightly", ChannelNightly},
	{"esr", ChannelESR},
	{"beta", ChannelBeta},
	{" dev/", ChannelDev},
	{"dev-channel", ChannelDev},
	{"stable", ChannelStable}, // Opera appends "(Edition stable)"
}

// extractVersion pulls the first capture group out of the UA, capping the
// length so a hostile UA cannot inflate the result.
func extractVersion(lowerUA string, re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	matches := re.FindStringSubmatch(lowerUA)
	if len(matches) < 2 {
		return ""
	}
	version := matches[1]
	if len(version) > 20 {
		version = version[:20]
	}
	return version
}

var repeatedDots = regexp.MustCompile(`\.{2,}`)

// NormalizeVersion strips parenthetical build metadata, collapses repeated
// separators and trims stray leading/trailing dots.
func NormalizeVersion(v string) string {
	if i := strings.IndexByte(v, '('); i >= 0 {
		v = v[:i]
	}
	v = strings.ReplaceAll(v, "_", ".")
	v = repeatedDots.ReplaceAllString(v, ".")
	return strings.Trim(strings.TrimSpace(v), ".")
}

func detectChannel(lowerUA string) Channel {
	for _, ct := range channelTokens {
		if strings.Contains(lowerUA, ct.token) {
			return ct.channel
		}
	}
	return ""
}

// splitVersionNumbers fills Major/Minor/Patch from a normalized version.
// Components that are missing or non-numeric stay absent.
func splitVersionNumbers(version string) (major, minor, patch Number) {
	if version == "" {
		return
	}
	parts := strings.SplitN(version, ".", 4)
	major = ParseNumber(parts[0])
	if len(parts) > 1 {
		minor = ParseNumber(parts[1])
	}
	if len(parts) > 2 {
		patch = ParseNumber(parts[2])
	}
	return
}

// DetectBrowser runs the browser cascade against a lower-cased UA string.
func DetectBrowser(lowerUA string) Browser {
	for _, rule := range browserRules {
		if !rule.matches(lowerUA) {
			continue
		}
		raw := extractVersion(lowerUA, rule.Regex)
		if raw == "" && rule.Fallback != nil {
			raw = extractVersion(lowerUA, rule.Fallback)
		}
		version := NormalizeVersion(raw)
		// Trident without a usable rv token is IE 11.
		if rule.Name == BrowserIE && version == "" && strings.Contains(lowerUA, "trident/") {
			version = "11.0"
		}
		channel := rule.Channel
		if channel == "" {
			channel = detectChannel(lowerUA)
		}
		major, minor, patch := splitVersionNumbers(version)
		return Browser{
			Name:    rule.Name,
			Version: version,
			Major:   major,
			Minor:   minor,
			Patch:   patch,
			Channel: channel,
		}
	}
	return Browser{Name: BrowserUnknown}
}
