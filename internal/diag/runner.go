// SPDX-License-Identifier: MPL-2.0

package diag

import "context"

// Runner invokes the FreeCAD executable with the diagnostic script and
// returns its combined output. Implementations block until the child exits;
// no timeout is imposed beyond ctx. The returned error carries the child's
// exit status — callers must inspect the output rather than the error,
// because FreeCAD exits non-zero even when the diagnostic succeeds.
type Runner interface {
	Run(ctx context.Context, executable, scriptPath string) ([]byte, error)
}
