// SPDX-License-Identifier: MPL-2.0

// Package syspath models a Python module-search list as an explicit value and
// installs a resolved FreeCAD library root into it. Keeping the list behind a
// sink type (instead of mutating process-wide state) lets the resolver stay a
// pure function and makes installation independently testable.
package syspath

import (
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// List is an ordered module-search list. The zero value is an empty list.
// A List is not safe for concurrent use.
type List struct {
	entries []string
}

// New creates a List from the given entries, in order.
func New(entries ...string) *List {
	return &List{entries: slices.Clone(entries)}
}

// FromEnv parses a PYTHONPATH-style value (entries joined by the OS path list
// separator). Empty entries are preserved: CPython treats an empty PYTHONPATH
// entry as the current directory, so dropping them would change import
// behavior.
func FromEnv(value string) *List {
	if value == "" {
		return &List{}
	}
	return &List{entries: strings.Split(value, string(os.PathListSeparator))}
}

// Entries returns a copy of the list contents.
func (l *List) Entries() []string {
	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// At returns the entry at index i.
func (l *List) At(i int) string {
	return l.entries[i]
}

// Insert places entry at index i, shifting later entries back.
func (l *List) Insert(i int, entry string) {
	l.entries = slices.Insert(l.entries, i, entry)
}

// Append adds entry at the end of the list.
func (l *List) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// RemoveAt deletes the entry at index i.
func (l *List) RemoveAt(i int) {
	l.entries = slices.Delete(l.entries, i, i+1)
}

// Count returns how many entries are exactly equal to entry.
func (l *List) Count(entry string) int {
	n := 0
	for _, e := range l.entries {
		if e == entry {
			n++
		}
	}
	return n
}

// Contains reports whether entry appears in the list.
func (l *List) Contains(entry string) bool {
	return slices.Contains(l.entries, entry)
}

// String renders the list as a PYTHONPATH-style value.
func (l *List) String() string {
	return strings.Join(l.entries, string(os.PathListSeparator))
}
