// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"errors"
	"fmt"
	"strings"

	"fcpath/pkg/syspath"
)

var (
	// ErrConfig is the sentinel error wrapped by OverrideError.
	ErrConfig = errors.New("invalid library root override")
	// ErrSubprocess is the sentinel error wrapped by SubprocessError.
	ErrSubprocess = errors.New("freecad invocation failed")
	// ErrProtocol is the sentinel error wrapped by ProtocolError.
	ErrProtocol = errors.New("malformed diagnostic output")
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("freecad library directory not found")
	// ErrAmbiguous is the sentinel error wrapped by AmbiguousLayoutError.
	ErrAmbiguous = errors.New("ambiguous freecad library layout")
	// ErrLayout is the sentinel error wrapped by LayoutError.
	ErrLayout = errors.New("incomplete freecad library layout")
)

type (
	// OverrideError is returned when an explicit root override does not
	// exist as a directory. It wraps ErrConfig for errors.Is() compatibility.
	OverrideError struct {
		// Root is the override value that was rejected.
		Root string
		// Source names where the override came from (flag, env var, config).
		Source string
	}

	// SubprocessError is returned when the FreeCAD executable cannot be
	// invoked, or when its output does not start with the ready sentinel —
	// in that case the underlying startup failure is carried in Cause rather
	// than masked by a parse error.
	SubprocessError struct {
		Executable string
		// Head holds the first few output lines, for diagnosis.
		Head  []string
		Cause error
	}

	// ProtocolError is returned when diagnostic output that did start with
	// the ready sentinel violates the protocol afterwards. It corresponds to
	// the assertion failures of the original tool: fatal and unrecoverable.
	ProtocolError struct {
		Reason string
	}

	// NotFoundError is returned when no search-path entry contains the
	// marker library. It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Marker string
	}

	// AmbiguousLayoutError is returned when more than one search-path entry
	// contains the marker library. Candidates lists every match.
	AmbiguousLayoutError struct {
		Marker     string
		Candidates []string
	}

	// LayoutError is returned when a mandatory subdirectory is missing under
	// the resolved root. It wraps ErrLayout for errors.Is() compatibility.
	LayoutError struct {
		Root    string
		Missing string
	}
)

// Error implements the error interface.
func (e *OverrideError) Error() string {
	return fmt.Sprintf("%s (%s) does not exist as a directory: %s", e.Source, ErrConfig, e.Root)
}

// Unwrap returns ErrConfig for errors.Is() checks.
func (e *OverrideError) Unwrap() error {
	return ErrConfig
}

// Error implements the error interface.
func (e *SubprocessError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrSubprocess, e.Executable)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if len(e.Head) > 0 {
		msg += "; output began: " + strings.Join(e.Head, " | ")
	}
	return msg
}

// Unwrap returns the underlying invocation failure, so unrelated startup
// errors propagate unchanged through errors.Is/As.
func (e *SubprocessError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrSubprocess
}

// Is reports ErrSubprocess in addition to the wrapped cause chain.
func (e *SubprocessError) Is(target error) bool {
	return target == ErrSubprocess
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProtocol, e.Reason)
}

// Unwrap returns ErrProtocol for errors.Is() checks.
func (e *ProtocolError) Unwrap() error {
	return ErrProtocol
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no search-path entry contains %s", ErrNotFound, e.Marker)
}

// Unwrap returns ErrNotFound for errors.Is() checks.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Error implements the error interface.
func (e *AmbiguousLayoutError) Error() string {
	return fmt.Sprintf("%s: %s found in multiple directories: %s",
		ErrAmbiguous, e.Marker, strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrAmbiguous for errors.Is() checks.
func (e *AmbiguousLayoutError) Unwrap() error {
	return ErrAmbiguous
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: required subdirectory %s missing under %s (need %s)",
		ErrLayout, e.Missing, e.Root, strings.Join(syspath.RequiredSubdirs, ", "))
}

// Unwrap returns ErrLayout for errors.Is() checks.
func (e *LayoutError) Unwrap() error {
	return ErrLayout
}
