// SPDX-License-Identifier: MPL-2.0

package syspath

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoot = "/opt/freecad"

// newTestFS builds an in-memory FreeCAD layout with two module directories
// and a stray file under Mod.
func newTestFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, sub := range RequiredSubdirs {
		require.NoError(t, fs.MkdirAll(filepath.Join(testRoot, sub), 0o755))
	}
	require.NoError(t, fs.MkdirAll(filepath.Join(testRoot, ModulesDir, "Draft"), 0o755))
	require.NoError(t, fs.MkdirAll(filepath.Join(testRoot, ModulesDir, "Part"), 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testRoot, ModulesDir, "README.txt"), []byte("x"), 0o644))
	return fs
}

func TestPolicyValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, PolicyPrependAll.Validate())
	assert.NoError(t, PolicyAppendMinimal.Validate())

	err := Policy("sideways").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
	assert.False(t, Policy("sideways").IsValid())
}

func TestInstallPrependAll(t *testing.T) {
	t.Parallel()

	ins := &Installer{FS: newTestFS(t)}
	list := New("/usr/lib/python3.11")

	require.NoError(t, ins.Install(testRoot, PolicyPrependAll, list))

	// Mod subdirectories come first (each inserted at the front, so in
	// reverse name order), then Mod, lib, Ext in canonical order, then the
	// pre-existing entries. The stray README.txt must not appear.
	assert.Equal(t, []string{
		"/opt/freecad/Mod/Part",
		"/opt/freecad/Mod/Draft",
		"/opt/freecad/Mod",
		"/opt/freecad/lib",
		"/opt/freecad/Ext",
		"/usr/lib/python3.11",
	}, list.Entries())
}

func TestInstallPrependAllDedupesCoreLib(t *testing.T) {
	t.Parallel()

	ins := &Installer{FS: newTestFS(t)}
	list := New("/opt/freecad/lib", "/usr/lib/python3.11")

	require.NoError(t, ins.Install(testRoot, PolicyPrependAll, list))

	assert.Equal(t, 1, list.Count("/opt/freecad/lib"))
}

func TestInstallPrependAllMissingModDir(t *testing.T) {
	t.Parallel()

	ins := &Installer{FS: afero.NewMemMapFs()}
	list := New()

	err := ins.Install(testRoot, PolicyPrependAll, list)
	assert.Error(t, err)
}

func TestInstallAppendMinimal(t *testing.T) {
	t.Parallel()

	lib := filepath.Join(testRoot, CoreLibDir)

	// The importer models FreeCAD's observed import side effect: it inserts
	// the remaining directories itself, including a second core-lib entry.
	importer := ImporterFunc(func(module string, list *List) error {
		assert.Equal(t, ImportModule, module)
		list.Insert(0, filepath.Join(testRoot, ModulesDir))
		list.Insert(1, lib)
		list.Insert(2, filepath.Join(testRoot, ExtDir))
		return nil
	})
	ins := &Installer{FS: newTestFS(t), Importer: importer}
	list := New("/usr/lib/python3.11")

	require.NoError(t, ins.Install(testRoot, PolicyAppendMinimal, list))

	// The duplicate appended before the import is removed from the end,
	// leaving exactly one core-lib entry (the imported one).
	assert.Equal(t, []string{
		"/opt/freecad/Mod",
		"/opt/freecad/lib",
		"/opt/freecad/Ext",
		"/usr/lib/python3.11",
	}, list.Entries())
}

func TestInstallAppendMinimalIdempotent(t *testing.T) {
	t.Parallel()

	lib := filepath.Join(testRoot, CoreLibDir)
	ins := &Installer{FS: newTestFS(t)}
	list := New("/usr/lib/python3.11")

	require.NoError(t, ins.Install(testRoot, PolicyAppendMinimal, list))
	lenAfterFirst := list.Len()
	assert.Equal(t, 1, list.Count(lib))

	// A second install must not accumulate a duplicate core-lib entry.
	require.NoError(t, ins.Install(testRoot, PolicyAppendMinimal, list))
	assert.Equal(t, lenAfterFirst, list.Len())
	assert.Equal(t, 1, list.Count(lib))
}

func TestInstallAppendMinimalImporterError(t *testing.T) {
	t.Parallel()

	importer := ImporterFunc(func(string, *List) error {
		return assert.AnError
	})
	ins := &Installer{FS: newTestFS(t), Importer: importer}

	err := ins.Install(testRoot, PolicyAppendMinimal, New())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInstallRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	ins := &Installer{FS: newTestFS(t)}
	err := ins.Install(testRoot, Policy("bogus"), New())
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
