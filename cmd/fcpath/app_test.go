// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"fcpath/internal/config"
	"fcpath/pkg/syspath"
)

func newTestApp(cfg *config.Config) *app {
	return &app{cfg: cfg, logger: newLogger()}
}

func TestHintsFromConfig(t *testing.T) {
	defer resetFlags()()

	a := newTestApp(&config.Config{
		Freecad: config.FreecadConfig{
			LibRoot:    "/cfg/root",
			Executable: "/cfg/FreeCAD",
		},
	})

	h := a.hints()
	if h.RootOverride != "/cfg/root" {
		t.Errorf("RootOverride = %q, want /cfg/root", h.RootOverride)
	}
	if h.RootSource != config.EnvLibRoot {
		t.Errorf("RootSource = %q, want %q", h.RootSource, config.EnvLibRoot)
	}
	if h.Executable != "/cfg/FreeCAD" {
		t.Errorf("Executable = %q, want /cfg/FreeCAD", h.Executable)
	}
}

func TestHintsFlagsBeatConfig(t *testing.T) {
	defer resetFlags()()
	rootOverride = "/flag/root"
	executableFlag = "/flag/FreeCAD"

	a := newTestApp(&config.Config{
		Freecad: config.FreecadConfig{
			LibRoot:    "/cfg/root",
			Executable: "/cfg/FreeCAD",
		},
	})

	h := a.hints()
	if h.RootOverride != "/flag/root" {
		t.Errorf("RootOverride = %q, want /flag/root", h.RootOverride)
	}
	if h.RootSource != "--root" {
		t.Errorf("RootSource = %q, want --root", h.RootSource)
	}
	if h.Executable != "/flag/FreeCAD" {
		t.Errorf("Executable = %q, want /flag/FreeCAD", h.Executable)
	}
}

func TestPolicyFlagBeatsConfig(t *testing.T) {
	defer resetFlags()()
	policyFlag = string(syspath.PolicyAppendMinimal)

	a := newTestApp(&config.Config{
		Install: config.InstallConfig{Policy: syspath.PolicyPrependAll},
	})

	p, err := a.policy()
	if err != nil {
		t.Fatalf("policy() returned error: %v", err)
	}
	if p != syspath.PolicyAppendMinimal {
		t.Errorf("policy() = %s, want append-minimal", p)
	}
}

func TestPolicyInvalidFlag(t *testing.T) {
	defer resetFlags()()
	policyFlag = "sideways"

	a := newTestApp(&config.Config{
		Install: config.InstallConfig{Policy: syspath.PolicyPrependAll},
	})

	if _, err := a.policy(); err == nil {
		t.Error("expected error for invalid policy flag")
	}
}

// resetFlags zeroes the package-level flag state and returns a restore func.
func resetFlags() func() {
	origVerbose := verbose
	origCfgFile := cfgFile
	origRoot := rootOverride
	origExe := executableFlag
	origPolicy := policyFlag

	verbose = false
	cfgFile = ""
	rootOverride = ""
	executableFlag = ""
	policyFlag = ""

	return func() {
		verbose = origVerbose
		cfgFile = origCfgFile
		rootOverride = origRoot
		executableFlag = origExe
		policyFlag = origPolicy
	}
}
