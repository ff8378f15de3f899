// fault.go — the fault model and semantic constructors for xgx-guard core.
//
// Scope (tiny core):
//   - One concrete error type carrying an explicit Category discriminant, a
//     message, an optional cause, and the stack captured at the raise site.
//   - NON-MUTATING fluent methods: each returns a new value (copy-on-write).
//   - Pragmatic semantic constructors for the built-in categories.
//
// Interop:
//   - errors.Is/As work via Unwrap chains; guards classify any error in the
//     chain, not just the outermost value.
//   - Foreign errors (no fault in the chain) are adopted as CategoryInternal
//     by Adopt; guards use the same rule.
package xgxguard

import (
	"fmt"
	"time"
)

// Fault is the minimal, fluent, interop-friendly contract for guard-classified
// errors.
//
// All fluent methods MUST be non-mutating: they return a new Fault value
// (copy-on-write) and MUST NOT alter the receiver state. This keeps shared
// fault values safe without synchronization and keeps provenance reproducible
// in diagnostic records.
type Fault interface {
	// error provides the canonical message string. Keep it concise; the full
	// diagnostic record is rendered separately by the guard on handling.
	error

	// CategoryVal returns the classification discriminant. Faults always
	// carry a non-empty category; it never changes after construction, so
	// guard matching stays a pure membership test.
	CategoryVal() Category

	// Msg replaces the fault's message. Returns a NEW Fault.
	Msg(msg string) Fault

	// Because attaches a causal parent error. Returns a NEW Fault.
	Because(cause error) Fault

	// Unwrap returns the causal parent error (if any) to enable stdlib
	// traversal via errors.Is/As. Faults that wrap nothing return nil.
	Unwrap() error
}

// faultErr is the single concrete fault type. The category is fixed at
// construction; fluent methods clone.
type faultErr struct {
	cat   Category
	msg   string
	cause error
	stk   Stack
}

func (e *faultErr) Error() string {
	if e.msg == "" {
		if e.cause != nil {
			return fmt.Sprintf("%s: %s", e.cat, e.cause.Error())
		}
		return string(e.cat)
	}
	return fmt.Sprintf("%s: %s", e.cat, e.msg)
}

func (e *faultErr) Unwrap() error         { return e.cause }
func (e *faultErr) CategoryVal() Category { return e.cat }

func (e *faultErr) Msg(msg string) Fault {
	n := e.clone()
	n.msg = msg
	return n
}

func (e *faultErr) Because(cause error) Fault {
	n := e.clone()
	n.cause = cause
	return n
}

func (e *faultErr) clone() *faultErr {
	n := *e
	// Stack is treated as immutable once captured; shallow copy is fine.
	return &n
}

// newFault builds a fault and captures the stack at the raise site.
// skip counts extra frames beyond newFault and its constructor caller.
func newFault(cat Category, msg string, cause error, skip int) *faultErr {
	return &faultErr{
		cat:   cat,
		msg:   msg,
		cause: cause,
		stk:   captureStackDefault(skip + 2), // +2: newFault and the constructor
	}
}

// -----------------------------------------------------------------------------
// Semantic constructors — arithmetic / data
// -----------------------------------------------------------------------------

// NewFault creates a fault with an explicit category and message, capturing
// the stack at the call site. Prefer semantic constructors when one fits.
// An empty category is normalized to CategoryInternal so faults are always
// classifiable.
func NewFault(cat Category, msg string) Fault {
	if cat == "" {
		cat = CategoryInternal
	}
	return newFault(cat, msg, nil, 0)
}

// DivisionByZero indicates an attempt to divide the given numerator by zero.
func DivisionByZero(numerator any) Fault {
	return newFault(CategoryDivisionByZero, fmt.Sprintf("cannot divide %v by zero", numerator), nil, 0)
}

// TypeMismatch indicates a value of an unexpected dynamic type.
func TypeMismatch(want string, got any) Fault {
	return newFault(CategoryTypeMismatch, fmt.Sprintf("want %s, got %T", want, got), nil, 0)
}

// BadValue indicates a value of the right type but an unacceptable shape or
// range (empty sequence, non-iterable input, out-of-domain argument).
func BadValue(reason string) Fault {
	return newFault(CategoryValue, reason, nil, 0)
}

// Conversion indicates a failed conversion of v to the named type.
func Conversion(v any, to string) Fault {
	return newFault(CategoryConversion, fmt.Sprintf("cannot convert %T to %s", v, to), nil, 0)
}

// NotFound indicates a missing entity.
func NotFound(entity string, id any) Fault {
	return newFault(CategoryNotFound, fmt.Sprintf("%s not found: %v", entity, id), nil, 0)
}

// -----------------------------------------------------------------------------
// Semantic constructors — infrastructure / internal
// -----------------------------------------------------------------------------

// IOFault wraps an I/O error.
func IOFault(err error) Fault {
	return newFault(CategoryIO, "i/o failure", err, 0)
}

// Timeout indicates an operation exceeded its time budget.
func Timeout(d time.Duration) Fault {
	return newFault(CategoryTimeout, fmt.Sprintf("timeout after %s", d), nil, 0)
}

// Internal wraps an underlying error as an internal fault. A nil err yields a
// generic internal fault so the raise site is still recorded.
func Internal(err error) Fault {
	return newFault(CategoryInternal, "internal error", err, 0)
}

// Defect wraps an unexpected programming error (bug/invariant violation).
// Guards produce these when the wrapped callable panics.
func Defect(err error) Fault {
	if err == nil {
		err = fmt.Errorf("nil defect") // avoid nil unwrap surprises
	}
	return newFault(CategoryDefect, "", err, 0)
}

// -----------------------------------------------------------------------------
// Adoption of foreign errors
// -----------------------------------------------------------------------------

// Adopt converts any error into a Fault without adding policy.
//   - nil → nil
//   - an error already carrying a fault classification → re-used as-is when it
//     is itself a Fault, otherwise wrapped preserving its classification
//   - other error → wrapped as CategoryInternal
//
// Adopt does not capture a stack; the foreign error's raise site is unknown
// and a capture here would only record the adoption point.
func Adopt(err error) Fault {
	if err == nil {
		return nil
	}
	if f, ok := err.(Fault); ok {
		return f
	}
	return &faultErr{
		cat:   CategoryOf(err), // CategoryInternal for truly foreign errors
		msg:   "",
		cause: err,
	}
}

// Interface conformance guard (kept in the file that defines the type).
var _ Fault = (*faultErr)(nil)
