// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package diag

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// PTYRunner runs FreeCAD's console mode under a pseudo-terminal. FreeCAD
// suppresses its output when stdout is not a tty, so a plain pipe captures
// nothing; attaching the child to a pty makes it print normally.
type PTYRunner struct{}

// Run starts `executable -c scriptPath` on a pty, reads the combined output
// to EOF, then waits for the child. The wait error (typically exit status 1)
// is returned alongside the captured output.
func (PTYRunner) Run(ctx context.Context, executable, scriptPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, executable, "-c", scriptPath)

	f, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting %s under pty: %w", executable, err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	// On Linux the pty master returns EIO once the child side closes; that is
	// the normal EOF condition here, so the copy error is discarded.
	_, _ = io.Copy(&buf, f)

	waitErr := cmd.Wait()
	return normalizeOutput(buf.Bytes()), waitErr
}

// normalizeOutput strips the carriage returns the pty line discipline adds.
func normalizeOutput(out []byte) []byte {
	return bytes.ReplaceAll(out, []byte("\r\n"), []byte("\n"))
}
