package uaversion

import (
	"strings"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Ordering is the result of a version comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Version is a parsed dotted version. Missing components stay absent and
// are only treated as zero inside comparisons, never in the parsed value
// itself.
type Version struct {
	Major      useragent.Number
	Minor      useragent.Number
	Patch      useragent.Number
	Build      useragent.Number
	Prerelease string
}

// Parse splits a dotted version string, stripping a trailing prerelease
// suffix ("-beta.3") first. Non-numeric components stay absent.
func Parse(v string) Version {
	v = strings.TrimSpace(v)
	var prerelease string
	if i := strings.IndexByte(v, '-'); i >= 0 {
		prerelease = v[i+1:]
		v = v[:i]
	}

	var parsed Version
	parsed.Prerelease = prerelease
	if v == "" {
		return parsed
	}

	parts := strings.SplitN(v, ".", 5)
	parsed.Major = useragent.ParseNumber(parts[0])
	if len(parts) > 1 {
		parsed.Minor = useragent.ParseNumber(parts[1])
	}
	if len(parts) > 2 {
		parsed.Patch = useragent.ParseNumber(parts[2])
	}
	if len(parts) > 3 {
		parsed.Build = useragent.ParseNumber(parts[3])
	}
	return parsed
}

// Compare orders two dotted version strings. Identical raw strings
// short-circuit to Equal without parsing. Missing major/minor/patch
// components compare as zero; a present build beats an absent one; a
// prerelease ranks below the corresponding release without one.
func Compare(a, b string) Ordering {
	if a == b {
		return Equal
	}

	va, vb := Parse(a), Parse(b)

	if o := compareNumber(va.Major, vb.Major); o != Equal {
		return o
	}
	if o := compareNumber(va.Minor, vb.Minor); o != Equal {
		return o
	}
	if o := compareNumber(va.Patch, vb.Patch); o != Equal {
		return o
	}
	if o := compareBuild(va.Build, vb.Build); o != Equal {
		return o
	}
	return comparePrerelease(va.Prerelease, vb.Prerelease)
}

// compareNumber treats absent as zero, per the comparison contract.
func compareNumber(a, b useragent.Number) Ordering {
	av, bv := a.Value(), b.Value()
	switch {
	case av < bv:
		return Less
	case av > bv:
		return Greater
	default:
		return Equal
	}
}

// compareBuild: present beats absent, otherwise numeric.
func compareBuild(a, b useragent.Number) Ordering {
	switch {
	case a.IsSet() && !b.IsSet():
		return Greater
	case !a.IsSet() && b.IsSet():
		return Less
	default:
		return compareNumber(a, b)
	}
}

// comparePrerelease: no prerelease ranks above any prerelease; two
// prereleases order lexically.
func comparePrerelease(a, b string) Ordering {
	switch {
	case a == b:
		return Equal
	case a == "":
		return Greater
	case b == "":
		return Less
	case a < b:
		return Less
	default:
		return Greater
	}
}
