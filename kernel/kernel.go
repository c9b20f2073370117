// Package kernel models the emulated kernel's shared state: the guest
// thread table with its wake protocol, and the export registry that maps
// NIDs to guest code published by loaded modules.
//
// Locking is two-level: the table lock is taken only to find a thread
// record, then released; the record's own lock guards its disposition and
// execution context. Neither lock is ever held across slow work.
package kernel

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	vita3k "github.com/kevinmel2000/Vita3K"
)

// State is the kernel shared by every guest thread and by native
// subsystems that wake them. Pass it explicitly; there is no package-level
// instance.
type State struct {
	mu      sync.Mutex
	threads map[vita3k.SceUID]*ThreadState
	nextUID int32

	exportMu   sync.RWMutex
	exportNids map[uint32]vita3k.Address

	// BaseTick anchors the guest RTC; set once at boot.
	BaseTick uint64

	stopped atomic.Bool
}

// New returns an empty kernel state.
func New() *State {
	return &State{
		threads:    make(map[vita3k.SceUID]*ThreadState),
		nextUID:    0x10000,
		exportNids: make(map[uint32]vita3k.Address),
	}
}

// FindThread looks up a thread record by UID. The table lock is held only
// for the lookup; callers lock the record itself before touching it.
func (k *State) FindThread(tid vita3k.SceUID) (*ThreadState, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	t, ok := k.threads[tid]
	return t, ok
}

// ThreadCount returns the number of live thread records.
func (k *State) ThreadCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.threads)
}

// Stopped reports whether StopAllThreads has been called. One-way; a
// stopped kernel never resumes scheduling.
func (k *State) Stopped() bool {
	return k.stopped.Load()
}

// allThreads snapshots the table so callers can walk records without
// holding the table lock across record locks.
func (k *State) allThreads() []*ThreadState {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]*ThreadState, 0, len(k.threads))
	for _, t := range k.threads {
		out = append(out, t)
	}
	return out
}

func logThread(tid vita3k.SceUID) zap.Field {
	return zap.Int32("thread", int32(tid))
}
