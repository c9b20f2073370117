package host

import (
	"github.com/kevinmel2000/Vita3K/display"
)

// EventType discriminates windowing events fed into the pump.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
)

// Event is one windowing event. The windowing layer itself is external;
// it forwards its events into State.Events.
type Event struct {
	Type EventType
	Key  rune
}

// KeyToggleGUI toggles the GUI overlay.
const KeyToggleGUI = 'g'

// HandleEvents drains pending events and reports whether the frame loop
// should keep running. On quit it stops every guest thread, aborts the
// present queue and raises the display abort so nothing stays blocked on
// a frame that will never come.
func HandleEvents(h *State) bool {
	for {
		select {
		case ev := <-h.Events:
			switch ev.Type {
			case EventQuit:
				h.Kernel.StopAllThreads()
				h.Display.Present.Abort()
				h.Display.SignalAbort()
				return false

			case EventKeyDown:
				if ev.Key == KeyToggleGUI {
					toggleGUI(h)
				}
			}

		default:
			return true
		}
	}
}

// toggleGUI flips the overlay flag and resizes the window: borderless
// fixed-size without the overlay, bordered and resizable with it.
func toggleGUI(h *State) {
	wasShown := h.Display.ToggleImguiRender()

	if wasShown {
		h.Display.SetDims(display.DefaultWidth, display.DefaultHeight, 0, 0)
		if h.Window != nil {
			h.Window.SetResizable(false)
		}
	} else {
		h.Display.SetDims(display.DefaultWidth, display.DefaultHeight,
			h.Config.BorderWidth, h.Config.BorderHeight)
		if h.Window != nil {
			h.Window.SetResizable(true)
		}
	}

	if h.Window != nil {
		_, window := h.Display.Dims()
		h.Window.SetSize(window.Width, window.Height)
	}
}
