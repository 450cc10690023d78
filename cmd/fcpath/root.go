// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for fcpath.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// rootOverride is the --root flag value (explicit library root)
	rootOverride string
	// executableFlag is the --executable flag value
	executableFlag string
	// policyFlag is the --policy flag value
	policyFlag string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "fcpath",
		Short: "Make FreeCAD's Python modules importable outside FreeCAD",
		Long: TitleStyle.Render("fcpath") + SubtitleStyle.Render(" - FreeCAD library path discovery") + `

fcpath locates the directory tree holding FreeCAD's bundled Python modules
(Mod, lib, Ext) and computes the module-search path needed to import them
from a regular Python interpreter.

Discovery runs FreeCAD's console mode under a pseudo-terminal with a small
diagnostic script and infers the layout from the sys.path it reports. Set
FREECAD_LIB_ROOT to skip discovery, or FREECAD_EXECUTABLE to pick the
FreeCAD binary to interrogate.

` + SubtitleStyle.Render("Examples:") + `
  fcpath                    Discover and validate, exit 0 on success
  fcpath resolve            Print the resolved library root
  fcpath env                Print a PYTHONPATH assignment for your shell
  fcpath which              Print the FreeCAD executable that would be used`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bare invocation: discovery then installation, no output.
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			_, _, err = app.resolveAndInstall(cmd.Context())
			return err
		},
	}
)

func init() {
	// A project-local .env may carry FREECAD_EXECUTABLE / FREECAD_LIB_ROOT.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fcpath/config.cue)")
	rootCmd.PersistentFlags().StringVar(&rootOverride, "root", "", "explicit FreeCAD library root (skips discovery)")
	rootCmd.PersistentFlags().StringVar(&executableFlag, "executable", "", "FreeCAD executable path or command name")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "install policy: prepend-all or append-minimal")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger; --verbose lowers the level to debug.
func newLogger() *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// fang already printed the error; add the rendered help for known
		// failure modes so the user gets actionable next steps.
		if help := renderHelp(err); help != "" {
			fmt.Fprintln(os.Stderr, help)
		}
		os.Exit(1)
	}
}
