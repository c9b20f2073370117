// Package host owns the emulator's top-level state and the import
// dispatcher that routes guest calls into either native reimplementations
// (HLE) or guest code published by loaded modules (LLE).
package host

import (
	"time"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/audio"
	"github.com/kevinmel2000/Vita3K/config"
	"github.com/kevinmel2000/Vita3K/display"
	"github.com/kevinmel2000/Vita3K/kernel"
	"github.com/kevinmel2000/Vita3K/rtc"
	"github.com/kevinmel2000/Vita3K/titles"
)

// Window abstracts the native window the frontend owns. May be absent in
// headless runs and tests.
type Window interface {
	SetResizable(resizable bool)
	SetSize(width, height int)
}

// State aggregates every subsystem an import function may touch. Passed
// explicitly into dispatch; there is no package-level instance.
type State struct {
	BasePath string
	PrefPath string
	Config   config.Config

	Kernel  *kernel.State
	Audio   *audio.State
	Display *display.State
	Imports *ImportTable

	// Mem is the guest address space, owned by the memory subsystem.
	// Import functions tolerate it being nil in tests.
	Mem vita3k.Memory

	// Window is the native window, if the frontend created one.
	Window Window

	// Events carries windowing events into HandleEvents.
	Events chan Event

	// LogImports mirrors config; checked on every dispatch, so it is
	// read once into a plain bool rather than through Config.
	LogImports bool

	GameTitle string
	TitleID   string
	Titles    []titles.Title

	start time.Time
}

// Init builds the host state: kernel, display, audio wired with the
// kernel's wake capability, the default import table, and the installed
// title list scanned from the pref path.
func Init(basePath, prefPath string, cfg config.Config) (*State, error) {
	k := kernel.New()
	k.BaseTick = rtc.BaseTicks()

	// Audio gets exactly one capability: waking a guest thread. The
	// dependency direction is explicit so tests can hand it a fake.
	a, err := audio.Init(func(tid vita3k.SceUID) {
		k.ResumeThread(tid)
	})
	if err != nil {
		return nil, err
	}

	s := &State{
		BasePath:   basePath,
		PrefPath:   prefPath,
		Config:     cfg,
		Kernel:     k,
		Audio:      a,
		Display:    display.New(cfg.BorderWidth, cfg.BorderHeight),
		Imports:    DefaultImports(),
		Events:     make(chan Event, 64),
		LogImports: cfg.LogImports,
		Titles:     titles.Scan(prefPath, Logger()),
		start:      time.Now(),
	}
	return s, nil
}

// ProcessTime returns microseconds since the host booted, the guest's
// notion of process time.
func (s *State) ProcessTime() uint64 {
	return uint64(time.Since(s.start).Microseconds())
}
