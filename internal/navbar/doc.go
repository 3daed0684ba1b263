// Package navbar models the navigation bar tree consumed by the site theme.
//
// A navbar is an ordered sequence of entries. Each entry is either a Link
// (a path, optionally labelled with text and an icon) or a Group carrying a
// label, an optional link, an optional prefix and child entries which may be
// links or further groups. Child values are resolved against the prefixes of
// their ancestors by plain string composition (see Resolve).
//
// Construction is pure data: Build performs no validation, deduplication or
// cycle detection. Shape problems are reported separately by Validate.
package navbar
