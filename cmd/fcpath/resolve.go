// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resolveCmd prints the resolved FreeCAD library root.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved FreeCAD library root",
	Long: `Resolve the FreeCAD library root and print it.

With FREECAD_LIB_ROOT (or --root) set, the value is validated and printed
without invoking FreeCAD. Otherwise the FreeCAD executable is interrogated
with a diagnostic script and the root is inferred from its sys.path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		root, err := app.resolveRoot(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), root)
		return nil
	},
}
