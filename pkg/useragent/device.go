package useragent

import (
	"regexp"
	"strings"
)

// keywordSet supports fast any-of substring membership checks against a
// lower-cased UA string.
type keywordSet []string

func newKeywordSet(keywords ...string) keywordSet { return keywordSet(keywords) }

func (k keywordSet) contains(lowerUA string) bool {
	for _, keyword := range k {
		if strings.Contains(lowerUA, keyword) {
			return true
		}
	}
	return false
}

// Device class keyword sets. TV and wearable tokens are checked before the
// tablet/mobile heuristics because TV firmwares frequently embed "Mobile"
// or "Android" tokens.
var (
	tvKeywords       = newKeywordSet("smart-tv", "smarttv", "appletv", "apple tv", "googletv", "android tv", "hbbtv", "netcast", "roku", "web0s", "webos", "tizen", "bravia", "crkey")
	wearableKeywords = newKeywordSet("watch os", "watchos", "wearos", "wear os", "sm-r", "galaxy watch", "glass")
	tabletKeywords   = newKeywordSet("ipad", "tablet", "kindle", "silk/", "playbook", "sm-t", "sm-p", "gt-p", "mediapad")
	mobileKeywords   = newKeywordSet("mobile", "iphone", "ipod", "windows phone", "iemobile", "blackberry", "nokia", "sm-g", "sm-a", "sm-n")
)

// Vendor/model extraction regexes, applied only once the device type is
// fixed. The Samsung and Apple hardware patterns run against the original
// casing so models keep their canonical form.
var (
	samsungModelRe = regexp.MustCompile(`\b(SM-[A-Z]\d+\w*)`)
	iphoneModelRe  = regexp.MustCompile(`\b(iPhone\d+,\d+)`)
	pixelModelRe   = regexp.MustCompile(`\b(Pixel \d\w*(?: (?:Pro|XL|Fold|a))?)`)
	huaweiModelRe  = regexp.MustCompile(`\b((?:ELS|ANA|VOG|MAR|LYA|EML|CLT)-[A-Z0-9]+)`)
	oppoModelRe    = regexp.MustCompile(`\b(CPH\d{4})`)
	xiaomiModelRe  = regexp.MustCompile(`\b((?:Mi|Redmi|POCO) [\w ]{1,12}?)(?:\)| Build|;)`)
)

// DetectDevice classifies the device and extracts vendor/model when the
// class is mobile or tablet. The raw string is needed alongside the
// lower-cased one so extracted models keep their original casing.
func DetectDevice(raw, lowerUA string) Device {
	deviceType := detectDeviceType(lowerUA)
	vendor, model := detectVendorModel(raw, lowerUA, deviceType)
	return Device{Type: deviceType, Vendor: vendor, Model: model}
}

func detectDeviceType(lowerUA string) DeviceType {
	switch {
	case tvKeywords.contains(lowerUA):
		return DeviceTV
	case wearableKeywords.contains(lowerUA):
		return DeviceWearable
	case strings.Contains(lowerUA, "ipad"):
		return DeviceTablet
	// Android tablets omit the Mobile token that Android phones carry.
	case strings.Contains(lowerUA, "android") && !strings.Contains(lowerUA, "mobile"):
		return DeviceTablet
	case tabletKeywords.contains(lowerUA):
		return DeviceTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

func detectVendorModel(raw, lowerUA string, deviceType DeviceType) (vendor, model string) {
	if deviceType != DeviceMobile && deviceType != DeviceTablet && deviceType != DeviceWearable {
		return "", ""
	}

	switch {
	case strings.Contains(lowerUA, "iphone"):
		if m := iphoneModelRe.FindStringSubmatch(raw); len(m) > 1 {
			return VendorApple, m[1]
		}
		return VendorApple, "iPhone"
	case strings.Contains(lowerUA, "ipad"):
		return VendorApple, "iPad"
	case samsungModelRe.MatchString(raw):
		return VendorSamsung, samsungModelRe.FindStringSubmatch(raw)[1]
	case strings.Contains(lowerUA, "samsungbrowser/") || strings.Contains(lowerUA, "samsung"):
		return VendorSamsung, ""
	case pixelModelRe.MatchString(raw):
		return VendorGoogle, pixelModelRe.FindStringSubmatch(raw)[1]
	case huaweiModelRe.MatchString(raw):
		return VendorHuawei, huaweiModelRe.FindStringSubmatch(raw)[1]
	case strings.Contains(lowerUA, "huawei") || strings.Contains(lowerUA, "honor"):
		return VendorHuawei, ""
	case oppoModelRe.MatchString(raw):
		return VendorOppo, oppoModelRe.FindStringSubmatch(raw)[1]
	case xiaomiModelRe.MatchString(raw):
		return VendorXiaomi, strings.TrimSpace(xiaomiModelRe.FindStringSubmatch(raw)[1])
	case strings.Contains(lowerUA, "vivo"):
		return VendorVivo, ""
	case strings.Contains(lowerUA, "kindle") || strings.Contains(lowerUA, "silk/"):
		return VendorAmazon, "Kindle"
	default:
		return "", ""
	}
}
