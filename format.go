// format.go — fmt.Formatter implementation for faults.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, structured multi-line format:
//	             category=<category> msg="<message>"
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	               funcB other.go:45
//
// Rationale:
//   - The verbose form doubles as the diagnostic record body (see trace.go),
//     so the layout carries everything a persisted record needs: the
//     discriminant, the message, the causal chain, and the raise-site frames.
//   - Defer cause formatting to fmt with %+v to preserve nested details.
package xgxguard

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes a structured multi-line representation.
// If stk is nil/empty, the stack section is omitted.
// If cause is non-nil, it is formatted with %+v to recurse verbosely.
func formatVerbose(w io.Writer, cat Category, msg string, cause error, stk Stack) {
	// Header: category + msg. Always quote the message for clarity.
	_, _ = fmt.Fprintf(w, "category=%s msg=%q", cat, msg)

	// Cause
	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// Recurse with %+v so nested faults render their own details.
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	// Stack frames (most recent first)
	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			// Function names are fully-qualified (pkg.Func / recv.method).
			// File paths come from runtime; we print as-is for accuracy.
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *faultErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.cat, e.msg, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
