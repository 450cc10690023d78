// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"strings"

	"fcpath/internal/diag"
)

// Report is the typed result of parsing diagnostic output: the search-path
// entries FreeCAD's Python had at exit, and its sys.version string.
type Report struct {
	// SearchPath holds one entry per sys.path element, in order. Entries may
	// be empty strings: some FreeCAD invocation modes emit an unexplained
	// empty sys.path entry, which is harmless and preserved here.
	SearchPath []string
	// Version is the runtime version string, possibly spanning several lines.
	Version string
}

// ParseDiagnostics parses captured diagnostic output into a Report. The
// first line must be the ready sentinel; the version sentinel must occur
// exactly once afterwards. Lines between the sentinels are the search path,
// lines after the version sentinel (joined by newline) are the version.
func ParseDiagnostics(lines []string) (*Report, error) {
	if len(lines) == 0 || lines[0] != diag.SentinelReady {
		return nil, &ProtocolError{Reason: "output does not start with the ready sentinel"}
	}
	body := lines[1:]

	vidx := -1
	for i, line := range body {
		if line == diag.SentinelVersion {
			if vidx != -1 {
				return nil, &ProtocolError{Reason: "version sentinel encountered more than once"}
			}
			vidx = i
		}
	}
	if vidx == -1 {
		return nil, &ProtocolError{Reason: "version sentinel not found"}
	}
	if vidx == len(body)-1 {
		return nil, &ProtocolError{Reason: "no version string after the version sentinel"}
	}

	return &Report{
		SearchPath: body[:vidx],
		Version:    strings.Join(body[vidx+1:], "\n"),
	}, nil
}

// SplitOutput splits raw captured output into lines, trimming a single
// trailing newline so the last line does not become a spurious empty entry.
func SplitOutput(out []byte) []string {
	s := strings.TrimRight(string(out), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
