// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/fcpath/config.cue").
		Wrap(cause).
		Build()

	want := "failed to load configuration: /etc/fcpath/config.cue: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
}

func TestActionableErrorFormatIncludesSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("resolve library root").
		WithSuggestion("Set FREECAD_LIB_ROOT").
		WithSuggestion("Check FreeCAD is on PATH").
		Build()

	formatted := err.Format()
	if !strings.Contains(formatted, "Set FREECAD_LIB_ROOT") {
		t.Errorf("Format() missing first suggestion: %q", formatted)
	}
	if !strings.Contains(formatted, "Check FreeCAD is on PATH") {
		t.Errorf("Format() missing second suggestion: %q", formatted)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("expected nil for missing operation, got %v", ae)
	}
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("expected nil error for missing operation, got %v", err)
	}
}
