// SPDX-License-Identifier: MPL-2.0

package syspath

const (
	// ModulesDir holds one subdirectory per FreeCAD workbench/module.
	ModulesDir = "Mod"
	// CoreLibDir contains the primary FreeCAD library binary.
	CoreLibDir = "lib"
	// ExtDir contains FreeCAD's bundled Python extension packages.
	ExtDir = "Ext"

	// MarkerLib is the file that positively identifies CoreLibDir among
	// arbitrary search-path entries.
	MarkerLib = "FreeCAD.so"

	// ImportModule is the module whose import pulls in the remaining
	// directories under the append-minimal policy.
	ImportModule = "FreeCAD"
)

// RequiredSubdirs are the mandatory children of a FreeCAD library root, in
// canonical precedence order. FreeCAD itself puts every subdirectory of Mod
// ahead of these in sys.path; the installer reproduces that ordering.
var RequiredSubdirs = []string{ModulesDir, CoreLibDir, ExtDir}
