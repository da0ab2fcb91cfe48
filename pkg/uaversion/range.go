package uaversion

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Range is a parsed feature-gating constraint of the form
// "<browser> <op> <version>". Ranges only exist in well-formed state:
// ParseRange returns ok=false for anything malformed instead of a
// zero-valued Range.
type Range struct {
	BrowserName   string
	Operator      string
	TargetVersion string
}

// Grammar: optionally quoted browser token, comparison operator with
// optional surrounding whitespace, dotted numeric version with optional
// prerelease suffix. Longer operators listed first so "===" is not
// consumed as "==".
var rangeExprRe = regexp.MustCompile(
	`^\s*(?:"([^"]+)"|'([^']+)'|([\w][\w .]*?))\s*(>=|<=|===|!==|==|!=|>|<)\s*(\d+(?:\.\d+)*(?:-[\w.]+)?)\s*$`)

// Legacy operator spellings normalize to their strict forms.
var operatorAliases = map[string]string{
	"==": "===",
	"!=": "!==",
}

// ParseRange parses a range expression. Malformed input yields ok=false;
// callers must treat that as "does not satisfy", never as an error.
func ParseRange(expr string) (Range, bool) {
	m := rangeExprRe.FindStringSubmatch(expr)
	if m == nil {
		return Range{}, false
	}

	browser := m[1]
	if browser == "" {
		browser = m[2]
	}
	if browser == "" {
		browser = m[3]
	}
	browser = strings.TrimSpace(browser)
	if browser == "" {
		return Range{}, false
	}

	op := m[4]
	if normalized, ok := operatorAliases[op]; ok {
		op = normalized
	}

	return Range{
		BrowserName:   browser,
		Operator:      op,
		TargetVersion: m[5],
	}, true
}

// Satisfies reports whether the UA's browser satisfies at least one of the
// given range expressions (a list is OR-combined). A malformed expression
// or a browser-family mismatch contributes false.
func Satisfies(ua useragent.UserAgent, ranges ...string) bool {
	for _, expr := range ranges {
		if satisfiesOne(ua, expr) {
			return true
		}
	}
	return false
}

// SatisfiesAny is the explicit OR combinator over expressions.
func SatisfiesAny(ua useragent.UserAgent, ranges []string) bool {
	return Satisfies(ua, ranges...)
}

// SatisfiesAll is the explicit AND combinator over expressions. An empty
// list is vacuously satisfied.
func SatisfiesAll(ua useragent.UserAgent, ranges []string) bool {
	for _, expr := range ranges {
		if !satisfiesOne(ua, expr) {
			return false
		}
	}
	return true
}

func satisfiesOne(ua useragent.UserAgent, expr string) bool {
	rng, ok := ParseRange(expr)
	if !ok {
		return false
	}
	browser := ua.Browser()
	if !SameBrowser(browser.Name, rng.BrowserName) {
		return false
	}
	return rng.Matches(browser.Version)
}

// Matches applies the range operator to a concrete version string.
func (r Range) Matches(version string) bool {
	if version == "" {
		return false
	}

	// A bare-integer target with a strict equality operator degrades to
	// major-version-only comparison: "Chrome === 124" matches any 124.x.
	if (r.Operator == "===" || r.Operator == "!==") && !strings.Contains(r.TargetVersion, ".") {
		major := Parse(version).Major
		target := useragent.ParseNumber(r.TargetVersion)
		if !major.IsSet() || !target.IsSet() {
			return false
		}
		if r.Operator == "===" {
			return major.Value() == target.Value()
		}
		return major.Value() != target.Value()
	}

	switch r.Operator {
	case ">=":
		return Compare(version, r.TargetVersion) != Less
	case ">":
		return Compare(version, r.TargetVersion) == Greater
	case "<=":
		return Compare(version, r.TargetVersion) != Greater
	case "<":
		return Compare(version, r.TargetVersion) == Less
	case "===":
		return Compare(version, r.TargetVersion) == Equal
	case "!==":
		return Compare(version, r.TargetVersion) != Equal
	default:
		return false
	}
}
