// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"fcpath/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect fcpath configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := config.LoadWithPath(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, SubtitleStyle.Render("# built-in defaults (no config file)"))
			} else {
				fmt.Fprintln(out, SubtitleStyle.Render("# "+path))
			}
			fmt.Fprintf(out, "freecad.lib_root:   %s\n", orUnset(cfg.Freecad.LibRoot))
			fmt.Fprintf(out, "freecad.executable: %s\n", orUnset(cfg.Freecad.Executable))
			fmt.Fprintf(out, "install.policy:     %s\n", cfg.Install.Policy)
			fmt.Fprintf(out, "ui.verbose:         %t\n", cfg.UI.Verbose)
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s.%s\n", dir, config.ConfigFileName, config.ConfigFileExt)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func orUnset(v string) string {
	if v == "" {
		return SubtitleStyle.Render("(unset)")
	}
	return v
}
