// doc.go — package documentation for xgx-guard
//
// Package xgxguard attaches error-handling behavior to arbitrary functions
// without modifying their bodies. A Handler holds a default fallback message
// and diagnostic target; it produces guards, each matching an explicit
// category set. On a match the guard persists a diagnostic record and
// substitutes the fallback as the call's result. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/retry/formatting rules in core)
//
// # Classification
//
// Faults carry an explicit Category discriminant; guard matching is a
// membership test of that discriminant against the guard's CategorySet —
// never runtime type inspection. Errors raised without a fault in their
// unwrap chain classify as CategoryInternal, and a set containing
// CategoryAny matches everything, which is what makes an outer catch-all
// layer work.
//
// # Composition Order
//
// Guards nest via Compose; the first transformer is the INNERMOST layer and
// observes errors first. Resolution is first-match-wins from the inside out:
//
//	divGuard, _ := h.Guard(xgxguard.Categories(xgxguard.CategoryDivisionByZero),
//	    xgxguard.WithFallback("Division by 0 is impossible!"),
//	    xgxguard.WithTarget("zerodivision.txt"))
//	typeGuard, _ := h.Guard(xgxguard.Categories(xgxguard.CategoryTypeMismatch),
//	    xgxguard.WithFallback("Type error; check the data types."),
//	    xgxguard.WithTarget("typemismatch.txt"))
//	anyGuard, _ := h.Guard(xgxguard.Categories(xgxguard.CategoryAny))
//
//	guarded := xgxguard.Compose(fn, divGuard, typeGuard, anyGuard)
//
// A division fault is claimed by the innermost layer and never reaches the
// catch-all; the catch-all claims only what no inner layer matched. Order is
// significant and entirely caller-controlled.
//
// # Per-Call Outcomes
//
// Each call to the outermost guard ends in exactly one of three states:
//
//	+-------------+------------------------------------------------------+
//	| Outcome     | Caller observes                                      |
//	+-------------+------------------------------------------------------+
//	| succeeded   | the inner result, unchanged; no diagnostic write     |
//	| handled     | the claiming layer's fallback message, nil error     |
//	| propagated  | the original error, exactly as raised                |
//	+-------------+------------------------------------------------------+
//
// # Diagnostic Records
//
// The record is the fault's verbose %+v form — category, message, causal
// chain, raise-site frames — written as the ENTIRE content of the target
// (truncate-on-write, never append). A failure to write is itself fatal for
// the call: the guard returns an error wrapping both the write failure and
// the fault it was handling; neither is masked.
//
// # Concurrency
//
// The wrapped callable runs synchronously, exactly once per invocation;
// guards perform no background work. Guards are immutable after construction
// and safe to share. Concurrent calls that share one diagnostic target are
// last-writer-wins on the destination; coordinating that is out of scope.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - NewHandler / Guard / MustGuard / WithFallback / WithTarget
//   - Categories / Contains / BuiltinCategories
//   - Compose / Callable / Func
//   - Fault constructors (DivisionByZero, TypeMismatch, BadValue, Defect, …)
//   - CategoryOf / HasCategory / IsDefect / Adopt
package xgxguard
