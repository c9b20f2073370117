package kernel

import (
	"go.uber.org/zap"

	vita3k "github.com/kevinmel2000/Vita3K"
)

// PublishExport records that a loaded module implements nid at addr.
// Called by the module loader as images finish loading; the registry is
// insert-only, so the first publication of a NID wins and later duplicates
// are ignored. Publication happens-before any ResolveExport that observes
// it via the registry lock.
func (k *State) PublishExport(nid uint32, addr vita3k.Address) {
	k.exportMu.Lock()
	defer k.exportMu.Unlock()

	if prev, ok := k.exportNids[nid]; ok {
		Logger().Warn("duplicate export ignored",
			zap.Uint32("nid", nid),
			zap.Uint32("kept", uint32(prev)),
			zap.Uint32("ignored", uint32(addr)))
		return
	}
	k.exportNids[nid] = addr
}

// PublishExports publishes a module's whole export table.
func (k *State) PublishExports(exports map[uint32]vita3k.Address) {
	for nid, addr := range exports {
		k.PublishExport(nid, addr)
	}
}

// ResolveExport returns the guest address implementing nid, if any loaded
// module has published one. Safe to call from any thread; the dispatcher
// holds only this read capability.
func (k *State) ResolveExport(nid uint32) (vita3k.Address, bool) {
	k.exportMu.RLock()
	defer k.exportMu.RUnlock()
	addr, ok := k.exportNids[nid]
	return addr, ok
}
