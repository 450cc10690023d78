// SPDX-License-Identifier: MPL-2.0

//go:build windows

package diag

import (
	"context"
	"errors"
)

// ErrPTYUnsupported is returned on platforms without pty support.
var ErrPTYUnsupported = errors.New("pty-based freecad invocation is not supported on windows")

// PTYRunner is a stub on Windows; FreeCAD's output-suppression workaround
// relies on Unix pseudo-terminals. Use FREECAD_LIB_ROOT to skip discovery.
type PTYRunner struct{}

// Run always fails on Windows.
func (PTYRunner) Run(_ context.Context, _, _ string) ([]byte, error) {
	return nil, ErrPTYUnsupported
}
