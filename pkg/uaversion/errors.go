package uaversion

import "errors"

var (
	// ErrIncomparableBrowsers is returned by CompareUA when the two UAs
	// belong to different browser families. No total ordering exists
	// across families, so this is the one operation in the engine that
	// fails loudly instead of degrading.
	ErrIncomparableBrowsers = errors.New("cannot compare versions across browser families")
)
