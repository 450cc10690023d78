// SPDX-License-Identifier: MPL-2.0

// Package diag generates and runs the diagnostic script used to interrogate a
// FreeCAD installation. The script prints a fixed protocol on stdout: a ready
// sentinel, one line per sys.path entry, a version sentinel, then sys.version.
package diag

import (
	"fmt"
	"os"
)

const (
	// SentinelReady is the first line FreeCAD's Python prints. FreeCAD's
	// console mode tends to exit non-zero even on success, so this line (not
	// the exit code) is what distinguishes a working run from a real failure.
	SentinelReady = "Freecad python working!"

	// SentinelVersion separates the sys.path entries from the sys.version
	// string in the diagnostic output.
	SentinelVersion = "sys.version:"
)

// Script is the diagnostic payload executed by FreeCAD's integrated Python.
// The trailing sys.exit() is required: without it FreeCAD's console mode
// stays open waiting for EOF.
var Script = fmt.Sprintf(`import sys
print('%s')
for x in sys.path:
    print(x)
print('%s')
print(sys.version)
sys.exit()
`, SentinelReady, SentinelVersion)

// WriteScript writes the diagnostic payload to a temporary file and returns
// its path plus a cleanup function. The cleanup must run on every exit path
// of the resolution call.
func WriteScript() (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "fcpath-diag-*.py")
	if err != nil {
		return "", nil, fmt.Errorf("creating diagnostic script: %w", err)
	}
	cleanup = func() {
		_ = os.Remove(f.Name())
	}

	if _, err := f.WriteString(Script); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing diagnostic script: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("flushing diagnostic script: %w", err)
	}
	return f.Name(), cleanup, nil
}
