// Package audio models guest audio output ports. A guest thread that
// outputs faster than the hardware drains is blocked by its import
// function; the mixer wakes it again through the resume callback handed
// over at construction. Audio knows how to wake a thread, never how the
// kernel schedules one.
package audio

import (
	"sync"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/errors"
)

// ResumeCallback wakes a guest thread blocked on audio completion. It must
// be safe to call from any goroutine and tolerate threads that no longer
// exist.
type ResumeCallback func(tid vita3k.SceUID)

// Port modes.
const (
	ModeMono   = 0
	ModeStereo = 1
)

// MaxPorts bounds concurrently open output ports, matching the console.
const MaxPorts = 8

// maxBacklog is how many buffers a port queues before its producer thread
// should block until the mixer catches up.
const maxBacklog = 2

type pending struct {
	samples []int16
	tid     vita3k.SceUID
}

// OutPort is one open audio output port.
type OutPort struct {
	ID     int
	Length int
	Freq   int
	Mode   int

	mu      sync.Mutex
	backlog []pending
}

// State owns the open ports and the kernel wake capability.
type State struct {
	mu       sync.Mutex
	resume   ResumeCallback
	ports    map[int]*OutPort
	nextPort int
}

// Init creates the audio state. The resume callback is mandatory: without
// it, a blocked producer thread could never be woken.
func Init(resume ResumeCallback) (*State, error) {
	if resume == nil {
		return nil, errors.InvalidInput(errors.PhaseAudio, "resume callback is required")
	}
	return &State{
		resume:   resume,
		ports:    make(map[int]*OutPort),
		nextPort: 1,
	}, nil
}

// OpenPort opens an output port for buffers of length samples at freq Hz.
func (s *State) OpenPort(length, freq, mode int) (*OutPort, error) {
	if length <= 0 {
		return nil, errors.InvalidInput(errors.PhaseAudio, "buffer length must be positive")
	}
	if mode != ModeMono && mode != ModeStereo {
		return nil, errors.InvalidInput(errors.PhaseAudio, "unknown port mode")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ports) >= MaxPorts {
		return nil, errors.Exhausted(errors.PhaseAudio, "output ports", MaxPorts)
	}

	p := &OutPort{
		ID:     s.nextPort,
		Length: length,
		Freq:   freq,
		Mode:   mode,
	}
	s.nextPort++
	s.ports[p.ID] = p
	return p, nil
}

// Port looks up an open port by id.
func (s *State) Port(id int) (*OutPort, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.ports[id]
	return p, ok
}

// ReleasePort closes a port. Queued buffers are dropped but their producer
// threads are still resumed, so none stays blocked on a dead port.
func (s *State) ReleasePort(id int) {
	s.mu.Lock()
	p, ok := s.ports[id]
	delete(s.ports, id)
	s.mu.Unlock()

	if !ok {
		return
	}

	p.mu.Lock()
	backlog := p.backlog
	p.backlog = nil
	p.mu.Unlock()

	for _, b := range backlog {
		s.resume(b.tid)
	}
}

// Output queues samples on the port for thread tid and reports whether the
// producer should block until the mixer drains the backlog. The caller's
// import function does the actual blocking through the kernel.
func (s *State) Output(portID int, samples []int16, tid vita3k.SceUID) (shouldWait bool, err error) {
	p, ok := s.Port(portID)
	if !ok {
		return false, errors.NotFound(errors.PhaseAudio, "output port", "")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.backlog = append(p.backlog, pending{samples: samples, tid: tid})
	return len(p.backlog) >= maxBacklog, nil
}

// Process drains one buffer per port, as a hardware completion interrupt
// would, and resumes each drained buffer's producer thread. Resume is
// idempotent, so waking a thread that never blocked is fine.
func (s *State) Process() {
	s.mu.Lock()
	ports := make([]*OutPort, 0, len(s.ports))
	for _, p := range s.ports {
		ports = append(ports, p)
	}
	s.mu.Unlock()

	for _, p := range ports {
		p.mu.Lock()
		var tid vita3k.SceUID
		drained := false
		if len(p.backlog) > 0 {
			tid = p.backlog[0].tid
			p.backlog = p.backlog[1:]
			drained = true
		}
		p.mu.Unlock()

		if drained {
			s.resume(tid)
		}
	}
}

// Backlog returns the number of undrained buffers on the port.
func (p *OutPort) Backlog() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.backlog)
}
