// SPDX-License-Identifier: MPL-2.0

package syspath

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// PolicyPrependAll inserts the root's required subdirectories and every
	// immediate subdirectory of Mod at the front of the list, mirroring the
	// order FreeCAD itself produces in sys.path.
	PolicyPrependAll Policy = "prepend-all"
	// PolicyAppendMinimal appends only the core-library directory and relies
	// on the FreeCAD module import to pull in the rest.
	PolicyAppendMinimal Policy = "append-minimal"
)

var (
	// ErrInvalidPolicy is returned when a Policy value is not recognized.
	ErrInvalidPolicy = errors.New("invalid install policy")
	// ErrImportNoCoreLib is returned when the append-minimal import hook
	// finishes without the core-library directory present in the list.
	ErrImportNoCoreLib = errors.New("core-library entry missing after import")
)

type (
	// Policy selects how a resolved library root is merged into the list.
	Policy string

	// InvalidPolicyError is returned when a Policy value is not recognized.
	// It wraps ErrInvalidPolicy for errors.Is() compatibility.
	InvalidPolicyError struct {
		Value Policy
	}

	// Importer triggers the import of module in the target interpreter.
	// Under the append-minimal policy the FreeCAD import has the observed
	// side effect of inserting its own remaining directories into the list,
	// including a second copy of the core-library directory.
	Importer interface {
		Import(module string, list *List) error
	}

	// ImporterFunc adapts a function to the Importer interface.
	ImporterFunc func(module string, list *List) error

	// Installer merges a resolved FreeCAD library root into a search list.
	// FS defaults to the OS filesystem; Importer may be nil, in which case
	// the append-minimal policy performs no import side effect.
	Installer struct {
		FS       afero.Fs
		Importer Importer
	}
)

// Error implements the error interface.
func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid install policy %q (valid: %s, %s)",
		e.Value, PolicyPrependAll, PolicyAppendMinimal)
}

// Unwrap returns ErrInvalidPolicy for errors.Is() checks.
func (e *InvalidPolicyError) Unwrap() error {
	return ErrInvalidPolicy
}

// Validate returns an error if the policy is not a known value.
func (p Policy) Validate() error {
	switch p {
	case PolicyPrependAll, PolicyAppendMinimal:
		return nil
	default:
		return &InvalidPolicyError{Value: p}
	}
}

// IsValid reports whether the policy is a known value.
func (p Policy) IsValid() bool {
	return p.Validate() == nil
}

// Import implements Importer.
func (f ImporterFunc) Import(module string, list *List) error {
	return f(module, list)
}

// NewInstaller creates an Installer backed by the OS filesystem.
func NewInstaller() *Installer {
	return &Installer{FS: afero.NewOsFs()}
}

// Install merges root into list according to policy. Whichever policy runs,
// the list is left without an exact-duplicate entry for the core-library
// directory, so repeated installs do not accumulate entries.
func (ins *Installer) Install(root string, policy Policy, list *List) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	fs := ins.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	switch policy {
	case PolicyPrependAll:
		return ins.prependAll(fs, root, list)
	case PolicyAppendMinimal:
		return ins.appendMinimal(root, list)
	}
	return nil
}

// prependAll reproduces FreeCAD's own sys.path layout: required subdirs at
// the front (inserted in reverse so the final order matches canonical
// precedence), then every immediate subdirectory of Mod in front of those.
func (ins *Installer) prependAll(fs afero.Fs, root string, list *List) error {
	for i := len(RequiredSubdirs) - 1; i >= 0; i-- {
		list.Insert(0, filepath.Join(root, RequiredSubdirs[i]))
	}

	modDir := filepath.Join(root, ModulesDir)
	infos, err := afero.ReadDir(fs, modDir)
	if err != nil {
		return fmt.Errorf("reading modules directory %s: %w", modDir, err)
	}
	for _, info := range infos {
		// Skip stray files; only directories are importable module homes.
		if !info.IsDir() {
			continue
		}
		list.Insert(0, filepath.Join(modDir, info.Name()))
	}

	dedupeCoreLib(list, filepath.Join(root, CoreLibDir))
	return nil
}

// appendMinimal appends the core-library directory, triggers the FreeCAD
// import, then removes the duplicate core-library entry the import produced,
// scanning from the end of the list.
func (ins *Installer) appendMinimal(root string, list *List) error {
	lib := filepath.Join(root, CoreLibDir)
	list.Append(lib)

	if ins.Importer != nil {
		if err := ins.Importer.Import(ImportModule, list); err != nil {
			return fmt.Errorf("importing %s: %w", ImportModule, err)
		}
		if !list.Contains(lib) {
			return ErrImportNoCoreLib
		}
	}

	if list.Count(lib) > 1 {
		for i := list.Len() - 1; i >= 0; i-- {
			if list.At(i) == lib {
				list.RemoveAt(i)
				break
			}
		}
	}
	return nil
}

// dedupeCoreLib removes every exact-duplicate occurrence of lib after its
// first, keeping the frontmost (highest-precedence) entry.
func dedupeCoreLib(list *List, lib string) {
	seen := false
	for i := 0; i < list.Len(); {
		if list.At(i) == lib {
			if seen {
				list.RemoveAt(i)
				continue
			}
			seen = true
		}
		i++
	}
}
