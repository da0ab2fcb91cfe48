// Package uaversion orders browser versions and evaluates feature-gating
// constraints against classified User-Agent results.
//
// Browser versions are not semver: majors can be fractional (Safari 13.1),
// builds run four components deep (Chrome 124.0.6367.60), and components
// are frequently missing. Compare implements the ordering this domain
// needs: major, minor and patch compare with missing-as-zero, a present
// build component beats an absent one, and a prerelease suffix ranks below
// the corresponding release.
//
// # Range expressions
//
// A range expression is a textual constraint of the form
//
//	<browser> <op> <version>
//
// with op one of >=, >, <=, <, ===, !== (the loose spellings == and !=
// normalize to the strict forms). The browser token may be quoted or a
// bare word sequence; it resolves through a canonical alias table, so
// "ie >= 11", "MSIE >= 11" and `"Internet Explorer" >= 11` all gate the
// same family. Malformed expressions parse to ok=false and never satisfy;
// they are not errors.
//
// One deliberate special case: a bare-integer target under === or !==
// compares majors only, so "Chrome === 124" matches every 124.x build.
//
// Satisfies OR-combines a list of expressions; SatisfiesAll and
// SatisfiesAny are the explicit combinators.
//
// # Modernity and release age
//
// IsModern checks the UA against a per-family minimum-version floor, with
// optional capability floors (ES2020, WebGL2, WebAssembly, Service Worker)
// AND-composed via options. Safari compares on fractional majors, all
// other families on integer majors; the asymmetry is intentional because
// Safari ships platform features in minor marketing versions.
//
// IsOutdated estimates release age from an embedded per-major release
// table (releases.yaml); unknown majors are conservatively outdated.
// SecurityLevel folds automation flags, modernity and age into a 4-tier
// ordinal.
//
// CompareUA is the single operation here that can fail: ordering versions
// across different browser families is undefined, so it returns
// ErrIncomparableBrowsers instead of guessing.
package uaversion
