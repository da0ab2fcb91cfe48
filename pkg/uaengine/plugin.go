package uaengine

import "github.com/dmitrymomot/uakit/pkg/useragent"

// Plugin overrides classification for a specific UA family before the
// built-in cascade's result is accepted. Plugins run in registration
// order; the first one whose Test returns true wins and later plugins are
// not consulted.
type Plugin struct {
	// Name identifies the plugin in diagnostics.
	Name string

	// Test reports whether this plugin wants to handle the raw string.
	Test func(raw string) bool

	// Parse produces a partial result. Set fields are overlaid onto the
	// built-in classifier's output; nil fields keep the default.
	Parse func(raw string) Partial
}

// Partial is a sparse classification. Nil pointers mean "keep whatever
// the built-in classifier produced".
type Partial struct {
	Browser    *useragent.Browser
	Engine     *useragent.Engine
	OS         *useragent.OS
	Device     *useragent.Device
	CPU        *useragent.CPU
	IsBot      *bool
	IsWebView  *bool
	IsHeadless *bool
}

// overlay applies the partial's set fields on top of base. Source is
// never overridable; it always carries the verbatim input.
func (p Partial) overlay(base useragent.UserAgent) useragent.UserAgent {
	f := base.Fields()
	if p.Browser != nil {
		f.Browser = *p.Browser
	}
	if p.Engine != nil {
		f.Engine = *p.Engine
	}
	if p.OS != nil {
		f.OS = *p.OS
	}
	if p.Device != nil {
		f.Device = *p.Device
	}
	if p.CPU != nil {
		f.CPU = *p.CPU
	}
	if p.IsBot != nil {
		f.IsBot = *p.IsBot
	}
	if p.IsWebView != nil {
		f.IsWebView = *p.IsWebView
	}
	if p.IsHeadless != nil {
		f.IsHeadless = *p.IsHeadless
	}
	return useragent.New(base.Source(), f)
}
