// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"fcpath/pkg/syspath"
)

const (
	// EnvLibRoot names the environment variable holding an explicit library
	// root. When set, discovery is skipped entirely.
	EnvLibRoot = "FREECAD_LIB_ROOT"
	// EnvExecutable names the environment variable holding the FreeCAD
	// executable path or command name.
	EnvExecutable = "FREECAD_EXECUTABLE"
)

type (
	// FreecadConfig holds the discovery inputs.
	FreecadConfig struct {
		// LibRoot is an explicit library root; overrides discovery.
		LibRoot string `mapstructure:"lib_root"`
		// Executable is the FreeCAD executable path or command name.
		// Empty means "FreeCAD" on PATH.
		Executable string `mapstructure:"executable"`
	}

	// InstallConfig holds search-path installation settings.
	InstallConfig struct {
		// Policy selects how the resolved root is merged into the search
		// list: prepend-all or append-minimal.
		Policy syspath.Policy `mapstructure:"policy"`
	}

	// UIConfig holds output settings.
	UIConfig struct {
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the application configuration.
	Config struct {
		Freecad FreecadConfig `mapstructure:"freecad"`
		Install InstallConfig `mapstructure:"install"`
		UI      UIConfig      `mapstructure:"ui"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Install: InstallConfig{Policy: syspath.PolicyPrependAll},
	}
}

// Validate checks constraints the CUE schema cannot express after env
// overrides have been merged in.
func (c *Config) Validate() error {
	if err := c.Install.Policy.Validate(); err != nil {
		return fmt.Errorf("install.policy: %w", err)
	}
	return nil
}
