// SPDX-License-Identifier: MPL-2.0

// Package resolve locates the root directory of a FreeCAD installation's
// library tree. Discovery runs FreeCAD's console mode with a diagnostic
// script and infers the root from the sys.path it reports; an explicit
// override skips the subprocess entirely.
package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fcpath/internal/diag"
	"fcpath/pkg/syspath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// DefaultExecutable is the bare command name tried when no executable hint
// is given; it must then be resolvable via the caller's PATH.
const DefaultExecutable = "FreeCAD"

type (
	// Hints are the optional resolution inputs. The resolver itself never
	// reads the environment; the CLI layer merges FREECAD_LIB_ROOT and
	// FREECAD_EXECUTABLE into the hints before calling Resolve.
	Hints struct {
		// RootOverride, when set, is returned directly after checking it is
		// an existing directory. No subprocess runs on this path.
		RootOverride string
		// RootSource names where RootOverride came from, for error messages.
		RootSource string
		// Executable is the FreeCAD executable path or command name.
		// Empty means DefaultExecutable on PATH.
		Executable string
	}

	// Resolver discovers a FreeCAD library root. It is a pure function of
	// its hints, the Runner's output, and the filesystem, which makes it
	// testable with a fake runner and an in-memory fs.
	Resolver struct {
		// Runner invokes the FreeCAD executable. Required for discovery;
		// never used when a root override is supplied.
		Runner diag.Runner
		// FS is the filesystem used for all existence checks.
		FS afero.Fs
		// Logger receives the non-fatal version-mismatch warning.
		Logger *log.Logger
		// CallerVersion is the caller-side Python version string compared
		// against FreeCAD's. Empty skips the comparison.
		CallerVersion string
	}
)

// New creates a Resolver with the given runner, the OS filesystem, and the
// default logger.
func New(runner diag.Runner) *Resolver {
	return &Resolver{
		Runner: runner,
		FS:     afero.NewOsFs(),
		Logger: log.Default(),
	}
}

// Resolve returns the absolute path of the directory containing FreeCAD's
// Mod, lib and Ext subdirectories. Resolution either fully succeeds or
// returns one of the package's error kinds; there is no partial result and
// no retry. A version mismatch between the caller's Python and FreeCAD's is
// the one recoverable condition: it logs a warning and resolution proceeds.
func (r *Resolver) Resolve(ctx context.Context, hints Hints) (string, error) {
	if hints.RootOverride != "" {
		return r.checkOverride(hints)
	}

	executable, err := r.executable(hints)
	if err != nil {
		return "", err
	}

	report, err := r.runDiagnostics(ctx, executable)
	if err != nil {
		return "", err
	}

	r.compareVersions(report.Version)

	libDir, err := r.findCoreLib(report.SearchPath)
	if err != nil {
		return "", err
	}

	root := filepath.Dir(libDir)
	if err := r.checkLayout(root); err != nil {
		return "", err
	}
	return root, nil
}

// checkOverride validates an explicit root override and returns it
// unchanged. A non-directory override is a configuration error, raised
// before any subprocess interaction.
func (r *Resolver) checkOverride(hints Hints) (string, error) {
	source := hints.RootSource
	if source == "" {
		source = "root override"
	}
	ok, err := afero.DirExists(r.FS, hints.RootOverride)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", source, err)
	}
	if !ok {
		return "", &OverrideError{Root: hints.RootOverride, Source: source}
	}
	return hints.RootOverride, nil
}

// executable picks the FreeCAD executable reference and expands a leading
// user-home shorthand. A bare default name is left untouched so PATH lookup
// applies.
func (r *Resolver) executable(hints Hints) (string, error) {
	if hints.Executable == "" {
		return DefaultExecutable, nil
	}
	return ExpandUser(hints.Executable)
}

// ExpandUser replaces a leading ~ with the current user's home directory.
func ExpandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// runDiagnostics writes the diagnostic script, runs FreeCAD on it under a
// pty, and parses the captured output. FreeCAD's console mode exits non-zero
// even on success, so the run error only matters when the output does not
// start with the ready sentinel — then the underlying failure is surfaced
// instead of being masked as a parse error.
func (r *Resolver) runDiagnostics(ctx context.Context, executable string) (*Report, error) {
	scriptPath, cleanup, err := diag.WriteScript()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out, runErr := r.Runner.Run(ctx, executable, scriptPath)

	lines := SplitOutput(out)
	if len(lines) == 0 || lines[0] != diag.SentinelReady {
		return nil, &SubprocessError{
			Executable: executable,
			Head:       head(lines, 5),
			Cause:      runErr,
		}
	}
	return ParseDiagnostics(lines)
}

// compareVersions warns when FreeCAD's Python version differs from the
// caller's. Per FreeCAD's embedding docs the two interpreters should match
// for the libraries to work outside FreeCAD.
func (r *Resolver) compareVersions(freecadVersion string) {
	if r.CallerVersion == "" || r.Logger == nil {
		return
	}
	if r.CallerVersion != freecadVersion {
		r.Logger.Warn("python version differs from FreeCAD's integrated python; "+
			"using FreeCAD libraries outside FreeCAD may not work",
			"caller", r.CallerVersion,
			"freecad", freecadVersion)
	}
}

// findCoreLib scans the reported search path for directories containing the
// marker library. Exactly one match identifies the core-library directory;
// zero or several is unrecoverable. Empty entries (emitted by some FreeCAD
// invocation modes) are ignored.
func (r *Resolver) findCoreLib(searchPath []string) (string, error) {
	var candidates []string
	for _, dir := range searchPath {
		if dir == "" {
			continue
		}
		ok, err := afero.Exists(r.FS, filepath.Join(dir, syspath.MarkerLib))
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", dir, err)
		}
		if ok {
			candidates = append(candidates, dir)
		}
	}

	switch len(candidates) {
	case 0:
		return "", &NotFoundError{Marker: syspath.MarkerLib}
	case 1:
		return candidates[0], nil
	default:
		return "", &AmbiguousLayoutError{Marker: syspath.MarkerLib, Candidates: candidates}
	}
}

// checkLayout verifies every mandatory subdirectory exists directly under
// the resolved root.
func (r *Resolver) checkLayout(root string) error {
	for _, sub := range syspath.RequiredSubdirs {
		ok, err := afero.DirExists(r.FS, filepath.Join(root, sub))
		if err != nil {
			return fmt.Errorf("checking %s: %w", filepath.Join(root, sub), err)
		}
		if !ok {
			return &LayoutError{Root: root, Missing: sub}
		}
	}
	return nil
}

func head(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[:n]
}
