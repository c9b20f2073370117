package kernel

import (
	"sync"

	"go.uber.org/zap"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/cpu"
)

// ToDo is a thread's scheduling disposition.
type ToDo int

const (
	ToDoExit ToDo = iota
	ToDoRun
	ToDoStep
	ToDoWait
)

func (d ToDo) String() string {
	switch d {
	case ToDoExit:
		return "exit"
	case ToDoRun:
		return "run"
	case ToDoStep:
		return "step"
	case ToDoWait:
		return "wait"
	}
	return "unknown"
}

// ThreadState is one guest thread's control block. The record lock (mu)
// guards the disposition and the execution context; somethingToDo is
// signaled whenever the disposition may have changed.
//
// Disposition transitions are wait -> run (an external wake through
// ResumeThread) and run -> wait (the thread blocking itself in WaitThread).
// Nothing else flips a disposition except shutdown, which forces exit.
type ThreadState struct {
	ID   vita3k.SceUID
	Name string

	mu            sync.Mutex
	somethingToDo *sync.Cond
	toDo          ToDo

	cpu *cpu.State
}

// AddThread creates a thread record with a fresh execution context entered
// at entry. Thread creation belongs to the guest scheduler; this is the
// surface it drives.
func (k *State) AddThread(name string, entry vita3k.Address) *ThreadState {
	c := cpu.NewState()
	c.WritePC(entry)

	t := &ThreadState{
		Name: name,
		toDo: ToDoRun,
		cpu:  c,
	}
	t.somethingToDo = sync.NewCond(&t.mu)

	k.mu.Lock()
	t.ID = vita3k.SceUID(k.nextUID)
	k.nextUID++
	k.threads[t.ID] = t
	k.mu.Unlock()

	return t
}

// RemoveThread reaps a terminated thread's record. Waiters still blocked
// on the record are woken so nobody sleeps on a reaped thread.
func (k *State) RemoveThread(tid vita3k.SceUID) {
	k.mu.Lock()
	t, ok := k.threads[tid]
	delete(k.threads, tid)
	k.mu.Unlock()

	if ok {
		t.mu.Lock()
		t.toDo = ToDoExit
		t.somethingToDo.Broadcast()
		t.mu.Unlock()
	}
}

// ResumeThread transitions a waiting thread back to run and signals its
// record unconditionally, so a resume against a thread already running is
// a harmless no-op and speculative resumes are safe. A missing thread is
// also a no-op: the thread may simply have terminated first.
//
// This is the one entry point asynchronous native subsystems (audio
// completion, timers) may call, from any goroutine.
func (k *State) ResumeThread(tid vita3k.SceUID) {
	t, ok := k.FindThread(tid)
	if !ok {
		Logger().Debug("resume for missing thread", logThread(tid))
		return
	}

	t.mu.Lock()
	if t.toDo == ToDoWait {
		t.toDo = ToDoRun
	}
	t.somethingToDo.Broadcast()
	t.mu.Unlock()
}

// WaitThread blocks the calling thread: disposition goes run -> wait and
// the caller sleeps on the record until an external resume or shutdown.
// Returns true if the thread was resumed to run, false when it should
// exit instead. Only the thread itself may call this, from inside a
// native import function body.
//
// A resume is only guaranteed to stick once the wait is armed. Callers
// that start the resuming work before blocking must arm first through
// PrepareWait and block through CommitWait, or the resume can land in
// between and be lost.
func (k *State) WaitThread(tid vita3k.SceUID) bool {
	if !k.PrepareWait(tid) {
		return false
	}
	return k.CommitWait(tid)
}

// PrepareWait arms the wait disposition for tid before the caller starts
// whatever work will eventually resume it. A resume landing between
// PrepareWait and CommitWait flips the disposition back to run, so
// CommitWait returns immediately instead of sleeping on a wake that
// already happened. Returns false when the thread is missing or the
// kernel is stopping; the caller must then skip CommitWait.
func (k *State) PrepareWait(tid vita3k.SceUID) bool {
	t, ok := k.FindThread(tid)
	if !ok {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if k.stopped.Load() {
		return false
	}
	t.toDo = ToDoWait
	return true
}

// CommitWait sleeps on a wait armed by PrepareWait until the disposition
// leaves wait. Returns true if the thread was resumed to run, false when
// it should exit instead.
func (k *State) CommitWait(tid vita3k.SceUID) bool {
	t, ok := k.FindThread(tid)
	if !ok {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for t.toDo == ToDoWait {
		// Re-check shutdown on every wake; never re-enter the wait
		// once the kernel is stopping.
		if k.stopped.Load() {
			return false
		}
		t.somethingToDo.Wait()
	}

	return t.toDo == ToDoRun
}

// CancelWait reverts an armed wait that will never be committed, putting
// the thread back to run. A resume that already flipped the disposition
// makes this a no-op.
func (k *State) CancelWait(tid vita3k.SceUID) {
	t, ok := k.FindThread(tid)
	if !ok {
		return
	}

	t.mu.Lock()
	if t.toDo == ToDoWait {
		t.toDo = ToDoRun
	}
	t.mu.Unlock()
}

// StopAllThreads flips the global stop flag, forces every record to exit
// and broadcasts each one, so no thread stays blocked on a resource that
// will never arrive.
func (k *State) StopAllThreads() {
	k.stopped.Store(true)

	for _, t := range k.allThreads() {
		t.mu.Lock()
		t.toDo = ToDoExit
		t.somethingToDo.Broadcast()
		t.mu.Unlock()
	}

	Logger().Info("stopped all threads", zap.Int("count", k.ThreadCount()))
}

// Disposition returns the thread's current scheduling disposition.
func (t *ThreadState) Disposition() ToDo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toDo
}

// SetDisposition overwrites the disposition. Scheduler surface; the
// dispatch core itself only ever moves wait <-> run.
func (t *ThreadState) SetDisposition(d ToDo) {
	t.mu.Lock()
	t.toDo = d
	t.somethingToDo.Broadcast()
	t.mu.Unlock()
}

// RedirectPC points the thread's execution context at addr. Used by the
// LLE dispatch path; execution resumes there when the interpreter next
// runs this thread.
func (t *ThreadState) RedirectPC(addr vita3k.Address) {
	t.mu.Lock()
	t.cpu.WritePC(addr)
	t.mu.Unlock()
}

// PC returns the thread's current program counter.
func (t *ThreadState) PC() vita3k.Address {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cpu.PC()
}

// WithCPU runs fn with the record lock held, giving exclusive access to
// the execution context. Native import functions use this to read call
// arguments and write return values.
func (t *ThreadState) WithCPU(fn func(c *cpu.State)) {
	t.mu.Lock()
	fn(t.cpu)
	t.mu.Unlock()
}
