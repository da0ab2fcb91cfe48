// Package uagen synthesizes plausible User-Agent strings from partial
// specs, inverting the classifier in pkg/useragent, and scores existing
// strings for forgery signals.
//
// Generate fills unset spec leaves from a fixed default table (Chrome 120
// on Windows 10, amd64, desktop), picks one of five OS-family builders
// (Windows, macOS, Linux, iOS, Android) and joins the three fragments the
// builder produces:
//
//	Mozilla/5.0 <system-info> <engine-info> <browser-info>
//
// Each builder owns a per-browser sub-switch because token shapes are
// platform-specific: Chrome on iOS is "CriOS/", Android phones carry a
// "Mobile" token their tablets omit, Firefox moves its version into an
// "rv:" clause. Generate is total by contract; an internal failure yields
// the fixed DefaultUA string instead of a panic.
//
// DetectFake is an additive point-scoring heuristic over independent
// implausibility signals (a modern Chrome major on Windows XP, an iOS
// device without any WebKit shim token, a Chrome token without
// AppleWebKit, and so on). The weights are part of the function's
// contract. Confidence is the capped sum; anything above 50 reports as
// fake.
package uagen
