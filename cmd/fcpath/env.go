// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// envCmd prints the search path as a PYTHONPATH assignment, ready for eval
// in a shell.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print a PYTHONPATH assignment including FreeCAD's directories",
	Long: `Resolve the FreeCAD library root, merge its directories into the current
PYTHONPATH according to the install policy, and print the result as a
shell assignment:

  eval "$(fcpath env)"

The prepend-all policy (default) puts FreeCAD's Mod subdirectories and the
Mod, lib and Ext directories at the front, matching the order FreeCAD itself
uses. The append-minimal policy adds only the lib directory at the end.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		_, list, err := app.resolveAndInstall(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PYTHONPATH=%q\n", list.String())
		return nil
	},
}
