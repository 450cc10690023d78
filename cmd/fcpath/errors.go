// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"fcpath/internal/issue"
	"fcpath/internal/resolve"
)

// issueFor maps a resolution failure to its catalog entry, or 0 when the
// error has no dedicated help text.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, resolve.ErrConfig):
		return issue.RootOverrideInvalidId
	case errors.Is(err, resolve.ErrSubprocess):
		return issue.FreecadLaunchFailedId
	case errors.Is(err, resolve.ErrProtocol):
		return issue.ProtocolViolationId
	case errors.Is(err, resolve.ErrNotFound):
		return issue.CoreLibNotFoundId
	case errors.Is(err, resolve.ErrAmbiguous):
		return issue.AmbiguousLayoutId
	case errors.Is(err, resolve.ErrLayout):
		return issue.LayoutInvalidId
	default:
		return 0
	}
}

// renderHelp returns the rendered markdown help for a known failure mode,
// or "" when there is none (or rendering fails).
func renderHelp(err error) string {
	id := issueFor(err)
	if id == 0 {
		return ""
	}
	is := issue.Get(id)
	if is == nil {
		return ""
	}
	out, renderErr := is.Render("auto")
	if renderErr != nil {
		return string(is.MarkdownMsg())
	}
	return out
}
