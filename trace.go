// trace.go — diagnostic record rendering and persistence.
//
// The record is free-text and human-readable: the fault's category, message,
// causal chain, and raise-site frames, rendered exactly as the fault's %+v
// form (format.go). It is written as the ENTIRE content of the target —
// truncate-on-write, never append — so the destination always holds the most
// recent handled fault. Repeated handled faults overwrite prior records.
//
// The write is a scoped resource acquisition: the target is opened, fully
// written, and closed before the guard returns, on every path including write
// failure (os.WriteFile guarantees the close).
package xgxguard

import (
	"fmt"
	"os"
	"strings"
)

// renderTrace renders the diagnostic record body for any error. Foreign
// errors are adopted first so the record always opens with a category line.
// The returned text ends with a single newline.
func renderTrace(err error) string {
	if err == nil {
		return ""
	}
	f := Adopt(err)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%+v", f)
	sb.WriteByte('\n')
	return sb.String()
}

// writeDiagnostic persists the record for err at path, replacing any prior
// content. Failures to open or write propagate to the caller; there is no
// retry and no fallback destination.
func writeDiagnostic(path string, err error) error {
	if path == "" {
		return BadValue("diagnostic target must not be empty")
	}
	return os.WriteFile(path, []byte(renderTrace(err)), 0o644)
}
