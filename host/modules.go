package host

import (
	"time"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/audio"
	"github.com/kevinmel2000/Vita3K/cpu"
	"github.com/kevinmel2000/Vita3K/display"
)

// Sce error codes returned through r0.
const (
	sceAudioOutErrorInvalidPort    = 0x80260001
	sceAudioOutErrorInvalidSize    = 0x80260003
	sceAudioOutErrorTooManyObjects = 0x80260005
)

// defaultImportFns lists every built-in native reimplementation, keyed by
// NID. Routines catalogued in the nids table but absent here fall through
// to the silent no-op path until someone implements them.
func defaultImportFns() map[uint32]ImportFn {
	return map[uint32]ImportFn{
		0x7595D9AA: importSceKernelExitProcess,
		0x4B675D05: importSceKernelDelayThread,
		0x0FB972F9: importSceKernelGetThreadId,
		0xAC0F692B: importSceKernelGetProcessTimeWide,
		0x5795E898: importSceDisplayWaitVblankStart,
		0x7A410B64: importSceDisplaySetFrameBuf,
		0x5BC341E4: importSceAudioOutOpenPort,
		0x02DB3F5F: importSceAudioOutOutput,
		0x677424D6: importSceAudioOutGetRestSample,
		0x69E2E6B5: importSceAudioOutReleasePort,
		0x1BA763CA: importSceRtcGetCurrentTick,
	}
}

func importSceKernelExitProcess(h *State, c *cpu.State, thread vita3k.SceUID) {
	h.Kernel.StopAllThreads()
	h.Display.Present.Abort()
	h.Display.SignalAbort()
	c.ReturnValue(0)
}

func importSceKernelDelayThread(h *State, c *cpu.State, thread vita3k.SceUID) {
	usec := c.Arg(0)
	if usec > 0 {
		// Arm the wait before starting the timer. The timer fires once;
		// if it landed before the thread blocked, nothing would ever
		// replay the wake and a microsecond delay could hang forever.
		if h.Kernel.PrepareWait(thread) {
			timer := time.AfterFunc(time.Duration(usec)*time.Microsecond, func() {
				h.Kernel.ResumeThread(thread)
			})
			if !h.Kernel.CommitWait(thread) {
				timer.Stop()
			}
		}
	}
	c.ReturnValue(0)
}

func importSceKernelGetThreadId(h *State, c *cpu.State, thread vita3k.SceUID) {
	c.ReturnValue(uint32(thread))
}

func importSceKernelGetProcessTimeWide(h *State, c *cpu.State, thread vita3k.SceUID) {
	t := h.ProcessTime()
	c.SetReg(0, uint32(t))
	c.SetReg(1, uint32(t>>32))
}

func importSceDisplayWaitVblankStart(h *State, c *cpu.State, thread vita3k.SceUID) {
	h.Display.WaitFrame()
	c.ReturnValue(0)
}

// importSceDisplaySetFrameBuf queues the framebuffer described by the
// SceDisplayFrameBuf struct at r0 for presentation.
func importSceDisplaySetFrameBuf(h *State, c *cpu.State, thread vita3k.SceUID) {
	addr := vita3k.Address(c.Arg(0))

	var fb display.FrameBuf
	if h.Mem != nil && addr != 0 {
		// struct SceDisplayFrameBuf:
		// u32 size, u32 base, u32 pitch, u32 pixelformat, u32 width, u32 height
		base, _ := h.Mem.ReadU32(addr + 4)
		pitch, _ := h.Mem.ReadU32(addr + 8)
		format, _ := h.Mem.ReadU32(addr + 12)
		width, _ := h.Mem.ReadU32(addr + 16)
		height, _ := h.Mem.ReadU32(addr + 20)
		fb = display.FrameBuf{
			Base:   vita3k.Address(base),
			Pitch:  pitch,
			Format: format,
			Width:  width,
			Height: height,
		}
	}

	h.Display.Present.Push(fb)
	c.ReturnValue(0)
}

func importSceAudioOutOpenPort(h *State, c *cpu.State, thread vita3k.SceUID) {
	// args: port type, buffer length, frequency, mode
	port, err := h.Audio.OpenPort(int(c.Arg(1)), int(c.Arg(2)), int(c.Arg(3)))
	if err != nil {
		c.ReturnValue(sceAudioOutErrorTooManyObjects)
		return
	}
	c.ReturnValue(uint32(port.ID))
}

func importSceAudioOutOutput(h *State, c *cpu.State, thread vita3k.SceUID) {
	portID := int(c.Arg(0))

	port, ok := h.Audio.Port(portID)
	if !ok {
		c.ReturnValue(sceAudioOutErrorInvalidPort)
		return
	}

	var samples []int16
	if h.Mem != nil {
		addr := vita3k.Address(c.Arg(1))
		n := port.Length
		if port.Mode == audio.ModeStereo {
			n *= 2
		}
		raw, err := h.Mem.Read(addr, uint32(n*2))
		if err == nil {
			samples = make([]int16, n)
			for i := range samples {
				samples[i] = int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
			}
		}
	}

	// Arm the wait before queueing: the mixer runs on its own goroutine
	// and may drain the buffer and resume this thread before it blocks.
	armed := h.Kernel.PrepareWait(thread)

	wait, err := h.Audio.Output(portID, samples, thread)
	if err != nil {
		if armed {
			h.Kernel.CancelWait(thread)
		}
		c.ReturnValue(sceAudioOutErrorInvalidPort)
		return
	}
	if armed {
		if wait {
			h.Kernel.CommitWait(thread)
		} else {
			h.Kernel.CancelWait(thread)
		}
	}
	c.ReturnValue(uint32(port.Length))
}

func importSceAudioOutGetRestSample(h *State, c *cpu.State, thread vita3k.SceUID) {
	port, ok := h.Audio.Port(int(c.Arg(0)))
	if !ok {
		c.ReturnValue(sceAudioOutErrorInvalidPort)
		return
	}
	c.ReturnValue(uint32(port.Backlog() * port.Length))
}

func importSceAudioOutReleasePort(h *State, c *cpu.State, thread vita3k.SceUID) {
	h.Audio.ReleasePort(int(c.Arg(0)))
	c.ReturnValue(0)
}

func importSceRtcGetCurrentTick(h *State, c *cpu.State, thread vita3k.SceUID) {
	tick := h.Kernel.BaseTick + h.ProcessTime()
	if h.Mem != nil {
		addr := vita3k.Address(c.Arg(0))
		h.Mem.WriteU32(addr, uint32(tick))
		h.Mem.WriteU32(addr+4, uint32(tick>>32))
	}
	c.ReturnValue(0)
}
