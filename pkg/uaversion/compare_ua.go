package uaversion

import (
	"fmt"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// CompareUA orders two classified UAs by browser version. It fails with
// ErrIncomparableBrowsers when the browser families do not alias-match;
// cross-family version ordering is undefined.
func CompareUA(a, b useragent.UserAgent) (Ordering, error) {
	ba, bb := a.Browser(), b.Browser()
	if !SameBrowser(ba.Name, bb.Name) {
		return Equal, fmt.Errorf("%w: %q vs %q", ErrIncomparableBrowsers, ba.Name, bb.Name)
	}
	return Compare(ba.Version, bb.Version), nil
}
