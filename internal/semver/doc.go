// Package semver parses, compares, and formats four-part semantic
// versions per SemVer 2.0.
//
// Parse and TryParse are two surfaces over one core: Parse fails fast
// with a wrapped sentinel error, TryParse converts every failure to a
// false return. Values are immutable after construction; the canonical
// string form is cached on first render.
package semver
