// predicates.go — minimal, stdlib-aligned classification helpers.
//
// Scope:
//   - Zero-policy helpers that answer the one question guards ask: what is
//     this error's category?
//   - Interop-first: use errors.As so traversal works with both single
//     Unwrap() error and multi Unwrap() []error chains.
//
// Out of scope (by design):
//   - Retry policy, logging, HTTP mapping. Guards consume these helpers; they
//     add no policy of their own.
package xgxguard

import (
	"errors"
)

// CategoryOf returns the first classification discovered along err's unwrap
// chain. A nil error has no category (""); a non-nil error with no fault in
// its chain classifies as CategoryInternal, so every raised error is
// matchable by some guard (an outer CategoryAny set in particular).
func CategoryOf(err error) Category {
	if err == nil {
		return ""
	}
	var cv interface{ CategoryVal() Category }
	if errors.As(err, &cv) {
		return cv.CategoryVal()
	}
	return CategoryInternal
}

// HasCategory reports whether err's classification is c. This is the exact
// single-category form of the membership test guards run against their sets.
func HasCategory(err error, c Category) bool {
	if err == nil {
		return false
	}
	return CategoryOf(err) == c
}

// IsDefect reports whether err is (or wraps) a programming defect, such as a
// recovered panic from a guarded callable.
func IsDefect(err error) bool {
	if err == nil {
		return false
	}
	var d *faultErr
	if errors.As(err, &d) && d.cat == CategoryDefect {
		return true
	}
	var cv interface{ CategoryVal() Category }
	if errors.As(err, &cv) {
		return cv.CategoryVal() == CategoryDefect
	}
	return false
}
