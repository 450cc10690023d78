// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RootOverrideInvalidId Id = iota + 1
	FreecadLaunchFailedId
	ProtocolViolationId
	CoreLibNotFoundId
	AmbiguousLayoutId
	LayoutInvalidId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	rootOverrideInvalidIssue = &Issue{
		id: RootOverrideInvalidId,
		mdMsg: `
# Library root override is not a directory!

FREECAD_LIB_ROOT (or the configured lib_root) points to a path that does not
exist as a directory. When the override is set, discovery is skipped entirely,
so the value must be correct.

## Things you can try:
- Check the value:
~~~
$ echo $FREECAD_LIB_ROOT
~~~
- Point it at the directory that directly contains Mod, lib and Ext
- Unset it to let fcpath discover the root by invoking FreeCAD:
~~~
$ unset FREECAD_LIB_ROOT
~~~`,
	}

	freecadLaunchFailedIssue = &Issue{
		id: FreecadLaunchFailedId,
		mdMsg: `
# Could not interrogate FreeCAD!

The FreeCAD executable failed to start, or it started but never printed the
expected first line of diagnostic output.

Note: FreeCAD's console mode exits with a non-zero status even on success, so
the exit code alone is not the problem — the output was.

## Things you can try:
- Verify FreeCAD runs at all:
~~~
$ FreeCAD --version
~~~
- If FreeCAD is not on your PATH, point fcpath at it:
~~~
$ export FREECAD_EXECUTABLE=/path/to/FreeCAD
~~~
- Or skip discovery entirely with a known root:
~~~
$ export FREECAD_LIB_ROOT=/path/to/freecad
~~~`,
	}

	protocolViolationIssue = &Issue{
		id: ProtocolViolationId,
		mdMsg: `
# Unexpected diagnostic output!

FreeCAD printed the ready sentinel but the rest of its output did not follow
the expected shape (search-path lines, a version sentinel, then the version
string). This usually means a FreeCAD version changed its console behavior.

## Things you can try:
- Run the diagnostic by hand and inspect the output:
~~~
$ script -qefc 'FreeCAD -c /path/to/diag.py' /dev/null
~~~
- Set FREECAD_LIB_ROOT to bypass discovery for this installation`,
	}

	coreLibNotFoundIssue = &Issue{
		id: CoreLibNotFoundId,
		mdMsg: `
# FreeCAD core library not found!

None of the directories FreeCAD reported on its sys.path contains FreeCAD.so,
so the library root could not be identified.

## Things you can try:
- Check your FreeCAD installation includes the shared library (source builds
  put it under ` + "`<build>/lib`" + `)
- Point fcpath at the right installation:
~~~
$ export FREECAD_EXECUTABLE=/path/to/build/bin/FreeCAD
~~~
- Or name the root directly:
~~~
$ export FREECAD_LIB_ROOT=/path/to/build
~~~`,
	}

	ambiguousLayoutIssue = &Issue{
		id: AmbiguousLayoutId,
		mdMsg: `
# Multiple FreeCAD core libraries found!

More than one directory on FreeCAD's sys.path contains FreeCAD.so. fcpath
refuses to guess which installation you meant.

## Things you can try:
- Pick one installation explicitly:
~~~
$ export FREECAD_LIB_ROOT=/path/to/the/one/you/want
~~~
- Clean up stale installations so only one remains on FreeCAD's sys.path`,
	}

	layoutInvalidIssue = &Issue{
		id: LayoutInvalidId,
		mdMsg: `
# Incomplete FreeCAD library layout!

A library root was found, but one of the mandatory subdirectories (Mod, lib,
Ext) is missing directly under it.

## Things you can try:
- Inspect the resolved root and compare against a healthy installation
- Reinstall or rebuild FreeCAD
- If your installation genuinely uses a different layout, set
  FREECAD_LIB_ROOT and the append-minimal install policy:
~~~
$ fcpath env --policy append-minimal
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the fcpath configuration file.

## Configuration file locations:
- Linux: ~/.config/fcpath/config.cue
- macOS: ~/Library/Application Support/fcpath/config.cue
- Windows: %APPDATA%\fcpath\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
freecad: {
	executable: "/opt/freecad/bin/FreeCAD"
}
install: {
	policy: "prepend-all"
}
~~~`,
	}

	issues = map[Id]*Issue{
		rootOverrideInvalidIssue.Id(): rootOverrideInvalidIssue,
		freecadLaunchFailedIssue.Id(): freecadLaunchFailedIssue,
		protocolViolationIssue.Id():   protocolViolationIssue,
		coreLibNotFoundIssue.Id():     coreLibNotFoundIssue,
		ambiguousLayoutIssue.Id():     ambiguousLayoutIssue,
		layoutInvalidIssue.Id():       layoutInvalidIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
