package host

import (
	"sort"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/cpu"
)

// ImportFn is a native reimplementation of one guest import. It runs
// synchronously on the calling guest thread's goroutine with that thread's
// execution context, and may block the thread through the kernel wait
// protocol.
type ImportFn func(h *State, c *cpu.State, thread vita3k.SceUID)

type importEntry struct {
	nid uint32
	fn  ImportFn
}

// ImportTable maps NIDs to native import functions. Entries are sorted by
// NID at construction and the table is immutable afterward, so lookups
// need no synchronization.
type ImportTable struct {
	entries []importEntry
}

// NewImportTable builds an import table from a NID-to-function map.
func NewImportTable(fns map[uint32]ImportFn) *ImportTable {
	t := &ImportTable{entries: make([]importEntry, 0, len(fns))}
	for nid, fn := range fns {
		t.entries = append(t.entries, importEntry{nid: nid, fn: fn})
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].nid < t.entries[j].nid })
	return t
}

// Resolve returns the native function for nid, or nil when no native
// substitute exists. A nil result is not an error; callers fall through to
// the unresolved no-op path.
func (t *ImportTable) Resolve(nid uint32) ImportFn {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].nid >= nid })
	if i < len(t.entries) && t.entries[i].nid == nid {
		return t.entries[i].fn
	}
	return nil
}

// Len returns the number of native substitutes in the table.
func (t *ImportTable) Len() int {
	return len(t.entries)
}

// defaultImports is built once at startup from the functions in
// modules.go and never mutated.
var defaultImports = NewImportTable(defaultImportFns())

// DefaultImports returns the built-in import table.
func DefaultImports() *ImportTable {
	return defaultImports
}
