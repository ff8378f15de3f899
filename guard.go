// guard.go — the guard wrapper and chain composition.
//
// A Guard is an explicit wrapper object around a Callable: it runs the inner
// callable, and on error tests the error's category against its configured
// set. A match fully resolves the call — the diagnostic record is persisted
// and the fallback message becomes the result, so outer layers observe a
// normal return. A miss returns the raw error unchanged for the next layer.
//
// Composition is explicit object construction: Compose applies transformers
// inside-out, so the FIRST transformer is the innermost guard and observes
// errors first. First-match-wins from the inside out; a broad outermost set
// (CategoryAny) acts as a catch-all only for errors no inner guard claimed.
// Layering order is significant and caller-controlled.
//
// Per call, the outermost guard passes through exactly one terminal state:
// the inner result unchanged, a fallback substitution, or an unmatched error.
package xgxguard

import (
	"fmt"
)

// Callable is the common contract guards wrap and implement. Implementing it
// on the Guard itself is what lets guards nest around one another.
type Callable interface {
	Call(args ...any) (any, error)
}

// Func adapts an ordinary function to the Callable interface.
type Func func(args ...any) (any, error)

// Call invokes the function.
func (f Func) Call(args ...any) (any, error) { return f(args...) }

// Transformer wraps a callable in one guard layer. Produced by Handler.Guard.
type Transformer func(Callable) Callable

// Guard intercepts a fixed category set around an inner callable. Guards are
// immutable after construction and safe to share across call sites; they own
// no mutable state. Concurrent calls sharing one diagnostic target are
// last-writer-wins on the destination.
type Guard struct {
	cfg  guardConfig
	set  CategorySet
	next Callable
}

// Categories returns the set this guard matches (defensive copy semantics
// come from CategorySet itself).
func (g *Guard) Categories() CategorySet { return g.set }

// Call runs the inner callable synchronously, exactly once.
//
//   - Success: the inner result is returned unchanged; no diagnostic write.
//   - Error in the set: the record is written to the target (truncating any
//     prior content) and the fallback message is returned with a nil error.
//     The original error is fully suppressed.
//   - Error not in the set: returned unchanged.
//   - Diagnostic-write failure: fatal for this call. The returned error wraps
//     BOTH the write failure and the fault being handled (multi-%w), so
//     errors.Is/As reach either; neither is masked, nothing is retried.
//
// A panic in the inner callable is recovered and converted to a defect fault
// before matching, so a CategoryDefect or CategoryAny set claims it like any
// other error.
func (g *Guard) Call(args ...any) (any, error) {
	res, err := g.invoke(args)
	if err == nil {
		return res, nil
	}
	if !g.set.Contains(CategoryOf(err)) {
		return nil, err
	}
	if werr := writeDiagnostic(g.cfg.target, err); werr != nil {
		return nil, fmt.Errorf("writing diagnostic to %s: %w (while handling %w)", g.cfg.target, werr, err)
	}
	return g.cfg.fallback, nil
}

// invoke runs the inner callable with panic recovery.
func (g *Guard) invoke(args []any) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(error); ok {
				err = Defect(perr)
				return
			}
			err = Defect(fmt.Errorf("panic: %v", r))
		}
	}()
	return g.next.Call(args...)
}

// Compose layers transformers around target inside-out: the first transformer
// becomes the innermost guard, the last the outermost. Nil transformers are
// skipped. With no transformers, target is returned as-is.
func Compose(target Callable, transformers ...Transformer) Callable {
	wrapped := target
	for _, t := range transformers {
		if t == nil {
			continue
		}
		wrapped = t(wrapped)
	}
	return wrapped
}

var _ Callable = (*Guard)(nil)
var _ Callable = (Func)(nil)
