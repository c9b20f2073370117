// Package vita3k is a Go implementation of a PlayStation Vita emulator core.
//
// The repository centers on the import dispatch and guest-thread
// synchronization subsystem: the machinery that routes every import call a
// game makes into either a native reimplementation (HLE) or real guest code
// loaded from a module image (LLE), and the thread-state protocol that lets
// asynchronous native subsystems wake blocked guest threads.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	vita3k/          Root package with guest address, UID and memory types
//	├── host/        Host state, import dispatch and the per-frame event pump
//	├── kernel/      Guest thread table, export registry and wake protocol
//	├── cpu/         Guest execution context (registers, program counter)
//	├── nids/        Static NID-to-name table for the platform ABI
//	├── audio/       Audio output ports and completion-driven thread resume
//	├── display/     Display state, present queue and GUI toggle flag
//	├── sfo/         System File Object (param.sfo) parsing
//	├── titles/      Installed-title discovery under the emulated filesystem
//	├── rtc/         Vita real-time-clock tick conversion
//	├── config/      YAML configuration loading
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Initialize a host and dispatch an import call:
//
//	h, err := host.Init(basePath, prefPath, config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	th := h.Kernel.AddThread("main", entry)
//
//	// c is the thread's live execution context, owned by the interpreter.
//	host.CallImport(h, c, nid, th.ID)
//
// The CPU interpreter, GPU pipeline and windowing layer are external: the
// core only redirects program counters, invokes native import functions and
// manages thread dispositions.
package vita3k
