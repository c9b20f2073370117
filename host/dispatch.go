package host

import (
	"go.uber.org/zap"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/cpu"
	"github.com/kevinmel2000/Vita3K/nids"
)

// CallImport routes one guest import call identified by nid, made by
// thread, whose live execution context is c.
//
// A NID exported by a loaded module wins over a native substitute: once
// real guest code for a routine is available, the emulator prefers it
// (LLE) and simply redirects the thread's program counter there. Otherwise
// the native reimplementation runs synchronously on the calling thread
// (HLE). A NID with neither is deliberately a no-op: an unimplemented
// import degrades silently instead of taking the title down, and the
// trace log is the only place that silence shows up.
func CallImport(h *State, c *cpu.State, nid uint32, thread vita3k.SceUID) {
	exportPC, ok := h.Kernel.ResolveExport(nid)

	if !ok {
		// HLE
		fn := h.Imports.Resolve(nid)
		if h.LogImports {
			// The trace is the only place an ignored NID shows up, so
			// a double miss gets its own kind.
			kind := "hle"
			if fn == nil {
				kind = "unresolved"
			}
			Logger().Debug("import called",
				zap.Int32("thread", int32(thread)),
				zap.Uint32("nid", nid),
				zap.String("name", nids.Name(nid)),
				zap.String("kind", kind))
		}
		if fn != nil {
			fn(h, c, thread)
		}
		return
	}

	// LLE - redirect to guest code imported from some loaded module.
	if h.LogImports {
		Logger().Debug("exported import called",
			zap.Int32("thread", int32(thread)),
			zap.Uint32("nid", nid),
			zap.Uint32("address", uint32(exportPC)),
			zap.String("name", nids.Name(nid)),
			zap.String("kind", "lle"))
	}

	t, ok := h.Kernel.FindThread(thread)
	if !ok {
		return
	}
	t.RedirectPC(exportPC)
}
