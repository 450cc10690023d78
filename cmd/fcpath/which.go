// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os/exec"

	"fcpath/internal/resolve"

	"github.com/spf13/cobra"
)

// whichCmd prints the FreeCAD executable reference discovery would invoke,
// resolving a bare command name through PATH.
var whichCmd = &cobra.Command{
	Use:   "which",
	Short: "Print the FreeCAD executable that would be interrogated",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		hints := app.hints()
		executable := hints.Executable
		if executable == "" {
			executable = resolve.DefaultExecutable
		}
		expanded, err := resolve.ExpandUser(executable)
		if err != nil {
			return err
		}

		// A bare name is resolved through PATH, matching what the pty
		// invocation would execute.
		if full, err := exec.LookPath(expanded); err == nil {
			expanded = full
		}
		fmt.Fprintln(cmd.OutOrStdout(), expanded)
		return nil
	},
}
