// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"fcpath/internal/issue"
	"fcpath/internal/testutil"
	"fcpath/pkg/syspath"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Freecad.LibRoot != "" {
		t.Errorf("expected default lib_root to be empty, got %q", cfg.Freecad.LibRoot)
	}

	if cfg.Freecad.Executable != "" {
		t.Errorf("expected default executable to be empty, got %q", cfg.Freecad.Executable)
	}

	if cfg.Install.Policy != syspath.PolicyPrependAll {
		t.Errorf("expected default policy to be prepend-all, got %s", cfg.Install.Policy)
	}

	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME behavior is linux-specific")
	}

	restoreXDG := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	defer restoreXDG()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}

	expected := filepath.Join("/tmp/test-xdg-config", AppName)
	if dir != expected {
		t.Errorf("ConfigDir() = %s, want %s", dir, expected)
	}
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	restoreRoot := testutil.MustUnsetenv(t, EnvLibRoot)
	defer restoreRoot()
	restoreExe := testutil.MustUnsetenv(t, EnvExecutable)
	defer restoreExe()
	restoreWd := testutil.MustChdir(t, t.TempDir())
	defer restoreWd()

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadWithPath() returned error: %v", err)
	}

	if path != "" {
		t.Errorf("expected no config file to be used, got %q", path)
	}
	if cfg.Install.Policy != syspath.PolicyPrependAll {
		t.Errorf("expected default policy, got %s", cfg.Install.Policy)
	}
}

func TestLoadFromCUEFile(t *testing.T) {
	restoreRoot := testutil.MustUnsetenv(t, EnvLibRoot)
	defer restoreRoot()
	restoreExe := testutil.MustUnsetenv(t, EnvExecutable)
	defer restoreExe()

	dir := t.TempDir()
	cuePath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	content := `
freecad: {
	executable: "/opt/freecad/bin/FreeCAD"
}
install: {
	policy: "append-minimal"
}
`
	if err := os.WriteFile(cuePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithPath() returned error: %v", err)
	}

	if path != cuePath {
		t.Errorf("expected config path %s, got %s", cuePath, path)
	}
	if cfg.Freecad.Executable != "/opt/freecad/bin/FreeCAD" {
		t.Errorf("expected executable from file, got %q", cfg.Freecad.Executable)
	}
	if cfg.Install.Policy != syspath.PolicyAppendMinimal {
		t.Errorf("expected append-minimal policy, got %s", cfg.Install.Policy)
	}
}

func TestEnvOverridesBeatFileValues(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	content := `freecad: executable: "/from/file/FreeCAD"`
	if err := os.WriteFile(cuePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	restoreExe := testutil.MustSetenv(t, EnvExecutable, "/from/env/FreeCAD")
	defer restoreExe()
	restoreRoot := testutil.MustSetenv(t, EnvLibRoot, "/from/env/root")
	defer restoreRoot()

	cfg, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithPath() returned error: %v", err)
	}

	if cfg.Freecad.Executable != "/from/env/FreeCAD" {
		t.Errorf("expected env executable to win, got %q", cfg.Freecad.Executable)
	}
	if cfg.Freecad.LibRoot != "/from/env/root" {
		t.Errorf("expected env lib_root to win, got %q", cfg.Freecad.LibRoot)
	}
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	restoreRoot := testutil.MustUnsetenv(t, EnvLibRoot)
	defer restoreRoot()
	restoreExe := testutil.MustUnsetenv(t, EnvExecutable)
	defer restoreExe()

	dir := t.TempDir()
	cuePath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	// Schema-valid CUE cannot carry a bad policy value, so this exercises
	// the schema rejection path.
	content := `install: policy: "sideways"`
	if err := os.WriteFile(cuePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("expected error for invalid policy, got nil")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("expected ActionableError, got %T: %v", err, err)
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, _, err := LoadWithPath(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config file, got nil")
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := LoadWithPath(ctx, LoadOptions{})
	if err == nil {
		t.Fatal("expected error for canceled context, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}
