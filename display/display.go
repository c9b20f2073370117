// Package display tracks display output state: the pending-present queue,
// the abort flag raised at shutdown, and the GUI overlay toggle polled
// every frame.
package display

import (
	"sync"
	"sync/atomic"

	vita3k "github.com/kevinmel2000/Vita3K"
)

// Default framebuffer dimensions of the emulated screen.
const (
	DefaultWidth  = 960
	DefaultHeight = 544
)

// FrameBuf describes one guest framebuffer queued for presentation.
type FrameBuf struct {
	Base   vita3k.Address
	Pitch  uint32
	Format uint32
	Width  uint32
	Height uint32
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// State is the shared display record. Abort and ImguiRender are atomics
// because they are polled every frame and contended rarely; frame waiters
// serialize on mu/cond.
type State struct {
	mu    sync.Mutex
	cond  *sync.Cond
	frame uint64

	// Present holds framebuffers queued by the GPU pipeline and drained
	// by the host frame loop. Aborted at shutdown so producers never
	// block on a sink that stopped consuming.
	Present *Queue[FrameBuf]

	Abort       atomic.Bool
	ImguiRender atomic.Bool

	WindowSize Size
	ImageSize  Size
}

// New returns a display sized to the default resolution with the given
// window border.
func New(borderWidth, borderHeight int) *State {
	d := &State{
		Present: NewQueue[FrameBuf](),
	}
	d.cond = sync.NewCond(&d.mu)
	d.SetDims(DefaultWidth, DefaultHeight, borderWidth, borderHeight)
	return d
}

// SetDims updates the image and window dimensions.
func (d *State) SetDims(width, height, borderWidth, borderHeight int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ImageSize = Size{Width: width, Height: height}
	d.WindowSize = Size{Width: width + borderWidth, Height: height + borderHeight}
}

// Dims returns the current image and window sizes.
func (d *State) Dims() (image, window Size) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ImageSize, d.WindowSize
}

// SignalAbort raises the abort flag and wakes every frame waiter. One-way:
// the flag is never lowered again.
func (d *State) SignalAbort() {
	d.Abort.Store(true)
	d.mu.Lock()
	d.cond.Broadcast()
	d.mu.Unlock()
}

// FrameDone wakes threads blocked in WaitFrame. The frame loop calls this
// once per presented frame.
func (d *State) FrameDone() {
	d.mu.Lock()
	d.frame++
	d.cond.Broadcast()
	d.mu.Unlock()
}

// WaitFrame blocks until the next FrameDone, returning false if the
// display was aborted instead. Waiters always re-check the abort flag on
// wake and never re-enter the wait once it is set.
func (d *State) WaitFrame() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := d.frame
	for d.frame == start {
		if d.Abort.Load() {
			return false
		}
		d.cond.Wait()
	}
	return !d.Abort.Load()
}

// ToggleImguiRender flips the GUI overlay flag with a compare-and-swap
// retry loop and reports the previous value. Lock-free: the flag is read
// every frame and a mutex would be wasted on it.
func (d *State) ToggleImguiRender() bool {
	old := d.ImguiRender.Load()
	for !d.ImguiRender.CompareAndSwap(old, !old) {
		old = d.ImguiRender.Load()
	}
	return old
}
