// category.go — fault category definitions and ordered category sets.
//
// Intent:
//   - Provide a small set of widely useful, human-readable categories.
//   - Matching is an explicit membership test of the discriminant; the core
//     never inspects dynamic error types to classify.
//   - Allow projects to define their own categories without a central registry.
//
// Conventions (documented, not enforced here):
//   - Categories are lowercase snake_case ASCII.
//   - Avoid the empty string for custom categories; it is never a built-in.
//   - CategoryAny is a wildcard reserved for guard sets; faults themselves
//     never carry it.
package xgxguard

// Category classifies faults into machine-readable categories.
//
// Categories are stringly-typed for stability across serialization boundaries
// and to avoid a central enum with breaking changes. Projects may define their
// own categories; the core does not reserve semantics beyond CategoryAny.
type Category string

// Arithmetic / data
const (
	CategoryDivisionByZero Category = "division_by_zero"
	CategoryTypeMismatch   Category = "type_mismatch"
	CategoryValue          Category = "value"
	CategoryConversion     Category = "conversion"
	CategoryNotFound       Category = "not_found"
)

// Infrastructure / time
const (
	CategoryIO      Category = "io"
	CategoryTimeout Category = "timeout"
)

// Internal / meta
const (
	CategoryInternal Category = "internal"
	CategoryDefect   Category = "defect"
)

// CategoryAny is the wildcard: a guard set containing it matches every
// classification, including foreign errors adopted as CategoryInternal.
// It is a set member, never a fault's own category.
const CategoryAny Category = "any"

// allBuiltinCategories is the ordered set of categories the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
// Order is stable to minimize churn in docs/examples.
var allBuiltinCategories = []Category{
	// Arithmetic / data (5)
	CategoryDivisionByZero,
	CategoryTypeMismatch,
	CategoryValue,
	CategoryConversion,
	CategoryNotFound,

	// Infrastructure / time (2)
	CategoryIO,
	CategoryTimeout,

	// Internal / meta (2)
	CategoryInternal,
	CategoryDefect,

	// Wildcard (1)
	CategoryAny,
}

// builtinCategorySet provides O(1) membership checks for built-ins.
// Declared via composite literal to avoid runtime init loops.
var builtinCategorySet = map[Category]struct{}{
	CategoryDivisionByZero: {},
	CategoryTypeMismatch:   {},
	CategoryValue:          {},
	CategoryConversion:     {},
	CategoryNotFound:       {},
	CategoryIO:             {},
	CategoryTimeout:        {},
	CategoryInternal:       {},
	CategoryDefect:         {},
	CategoryAny:            {},
}

// BuiltinCategories returns a defensive copy of the built-in categories in a
// stable order.
func BuiltinCategories() []Category {
	out := make([]Category, len(allBuiltinCategories))
	copy(out, allBuiltinCategories)
	return out
}

// IsBuiltin reports whether c is one of the built-in core categories.
// This is ergonomics-only; projects may define and use custom categories freely.
func (c Category) IsBuiltin() bool {
	_, ok := builtinCategorySet[c]
	return ok
}

// CategorySet is an ordered, immutable set of categories a single guard
// matches against. Construct with Categories; the zero value is the empty set.
//
// Sets are tiny in practice (a handful of entries), so membership is a linear
// scan over the insertion-ordered backing slice. Order is preserved for
// deterministic formatting and docs.
type CategorySet struct {
	cats []Category
}

// Categories builds a set from the given categories, preserving first-seen
// order and dropping duplicates and empty strings.
func Categories(cats ...Category) CategorySet {
	if len(cats) == 0 {
		return CategorySet{}
	}
	out := make([]Category, 0, len(cats))
	seen := make(map[Category]struct{}, len(cats))
	for _, c := range cats {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return CategorySet{cats: out}
}

// Contains reports whether c is a member of the set. A set containing
// CategoryAny contains every non-empty category.
func (s CategorySet) Contains(c Category) bool {
	if c == "" {
		return false
	}
	for _, m := range s.cats {
		if m == CategoryAny || m == c {
			return true
		}
	}
	return false
}

// Empty reports whether the set has no members.
func (s CategorySet) Empty() bool { return len(s.cats) == 0 }

// Len returns the number of distinct members.
func (s CategorySet) Len() int { return len(s.cats) }

// List returns a defensive copy of the members in insertion order.
func (s CategorySet) List() []Category {
	if len(s.cats) == 0 {
		return nil
	}
	out := make([]Category, len(s.cats))
	copy(out, s.cats)
	return out
}
