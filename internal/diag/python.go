// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// hostPythonExe is the interpreter queried for the caller-side version string.
const hostPythonExe = "python3"

// HostPythonVersion returns sys.version of the Python interpreter on PATH.
// The resolver compares it against the version reported by FreeCAD's
// integrated Python; per FreeCAD's embedding docs the two should match for
// the libraries to be usable from an external interpreter.
func HostPythonVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, hostPythonExe, "-c", "import sys; print(sys.version)").Output()
	if err != nil {
		return "", fmt.Errorf("querying %s version: %w", hostPythonExe, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
