// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGetKnownIds(t *testing.T) {
	ids := []Id{
		RootOverrideInvalidId,
		FreecadLaunchFailedId,
		ProtocolViolationId,
		CoreLibNotFoundId,
		AmbiguousLayoutId,
		LayoutInvalidId,
		ConfigLoadFailedId,
	}

	for _, id := range ids {
		is := Get(id)
		if is == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if is.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, is.Id())
		}
		if strings.TrimSpace(string(is.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown message", id)
		}
	}
}

func TestGetUnknownIdReturnsNil(t *testing.T) {
	if is := Get(Id(9999)); is != nil {
		t.Errorf("expected nil for unknown id, got %v", is.Id())
	}
}

func TestValuesSortedAndComplete(t *testing.T) {
	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values() not sorted at index %d", i)
		}
	}
}

func TestRenderUsesRenderer(t *testing.T) {
	original := render
	defer func() { render = original }()

	var gotInput string
	render = func(in string, _ string) (string, error) {
		gotInput = in
		return "rendered", nil
	}

	out, err := Get(CoreLibNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q, want %q", out, "rendered")
	}
	if !strings.Contains(gotInput, "FreeCAD.so") {
		t.Errorf("rendered markdown should mention the marker library, got %q", gotInput)
	}
}
