package uaversion

import "strings"

// Canonical browser-name alias table. Range expressions and parsed UAs may
// name the same family differently ("ie", "msie", "Internet Explorer");
// both sides are resolved through this table before any version logic
// runs.
var browserAliases = map[string][]string{
	"chrome":            {"chrome", "chromium", "google chrome", "crios"},
	"edge":              {"edge", "microsoft edge", "edg", "edgios"},
	"firefox":           {"firefox", "ff", "mozilla firefox", "fxios"},
	"safari":            {"safari", "mobile safari", "apple safari"},
	"opera":             {"opera", "opr"},
	"samsung internet":  {"samsung internet", "samsung", "samsungbrowser", "samsung browser"},
	"internet explorer": {"internet explorer", "ie", "msie", "trident"},
	"qq browser":        {"qq", "qq browser", "qqbrowser"},
	"uc browser":        {"uc", "uc browser", "ucbrowser"},
	"360 browser":       {"360", "360 browser", "360se", "360ee"},
	"sogou explorer":    {"sogou", "sogou explorer", "metasr"},
}

// alias -> canonical, built once at init.
var aliasIndex = func() map[string]string {
	index := make(map[string]string, len(browserAliases)*3)
	for canonical, aliases := range browserAliases {
		for _, alias := range aliases {
			index[alias] = canonical
		}
	}
	return index
}()

// CanonicalBrowser resolves a browser name to its canonical family name,
// case-insensitively. Unrecognized names canonicalize to their own
// lower-cased form.
func CanonicalBrowser(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliasIndex[lower]; ok {
		return canonical
	}
	return lower
}

// SameBrowser reports whether two names refer to the same browser family.
func SameBrowser(a, b string) bool {
	ca, cb := CanonicalBrowser(a), CanonicalBrowser(b)
	return ca != "" && ca == cb
}
