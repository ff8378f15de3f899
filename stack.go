// stack.go — stack capture for fault construction and diagnostic traces.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Capture at the raise site: fault constructors record the stack once, so
//     the diagnostic trace shows the originating call sequence even after the
//     fault travels outward through several guard layers.
//   - Pragmatic performance: bounded depth; capture happens only on fault
//     construction, never on success paths.
package xgxguard

import (
	"runtime"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth is a conservative bound that captures meaningful
	// context without excessive work on exceptional paths.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames, with a
// conservative default depth bound.
//
// Skip model for a typical call chain:
//
//	NewFault → captureStackDefault → captureStack → runtime.Callers
//
// The skip parameter here is *additional* to the internal helpers. Internally
// we add +3 in captureStack (to skip runtime.Callers, captureStack, and
// captureStackDefault) so user-visible stacks begin at (or very near) the
// constructor call site. Any extra 'skip' provided by callers is applied on top.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
// It returns a resolved Stack with file, line, and function names.
//
// Notes:
//   - We allocate a small PC buffer sized by maxDepth and let Callers trim it.
//   - We always reslice to the number of PCs actually written.
//   - We resolve frames via CallersFrames to handle inlined calls correctly.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// Skip accounting:
	//   • +1 for runtime.Callers itself
	//   • +1 for captureStack
	//   • +1 for captureStackDefault
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
