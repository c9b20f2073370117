package audio

import (
	"sync"
	"testing"

	vita3k "github.com/kevinmel2000/Vita3K"
)

// resumeRecorder is a fake kernel wake capability.
type resumeRecorder struct {
	mu   sync.Mutex
	tids []vita3k.SceUID
}

func (r *resumeRecorder) resume(tid vita3k.SceUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tids = append(r.tids, tid)
}

func (r *resumeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tids)
}

func TestInitRequiresResumeCallback(t *testing.T) {
	if _, err := Init(nil); err == nil {
		t.Fatal("Init(nil) should fail")
	}
}

func TestOpenPort(t *testing.T) {
	rec := &resumeRecorder{}
	s, err := Init(rec.resume)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	p, err := s.OpenPort(256, 48000, ModeStereo)
	if err != nil {
		t.Fatalf("OpenPort failed: %v", err)
	}
	if p.ID == 0 {
		t.Error("port should get a nonzero id")
	}

	got, ok := s.Port(p.ID)
	if !ok || got != p {
		t.Error("Port lookup mismatch")
	}
}

func TestOpenPortValidation(t *testing.T) {
	rec := &resumeRecorder{}
	s, _ := Init(rec.resume)

	if _, err := s.OpenPort(0, 48000, ModeStereo); err == nil {
		t.Error("zero-length buffers should be rejected")
	}
	if _, err := s.OpenPort(256, 48000, 7); err == nil {
		t.Error("unknown mode should be rejected")
	}
}

func TestOpenPortLimit(t *testing.T) {
	rec := &resumeRecorder{}
	s, _ := Init(rec.resume)

	for i := 0; i < MaxPorts; i++ {
		if _, err := s.OpenPort(256, 48000, ModeMono); err != nil {
			t.Fatalf("OpenPort %d failed: %v", i, err)
		}
	}
	if _, err := s.OpenPort(256, 48000, ModeMono); err == nil {
		t.Error("port limit should be enforced")
	}
}

func TestOutputAndProcessResumesProducer(t *testing.T) {
	rec := &resumeRecorder{}
	s, _ := Init(rec.resume)
	p, _ := s.OpenPort(4, 48000, ModeMono)

	const tid = vita3k.SceUID(0x10001)

	wait, err := s.Output(p.ID, []int16{1, 2, 3, 4}, tid)
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if wait {
		t.Error("first buffer should not require waiting")
	}

	wait, _ = s.Output(p.ID, []int16{5, 6, 7, 8}, tid)
	if !wait {
		t.Error("backlog should now require the producer to wait")
	}

	s.Process()
	if rec.count() != 1 {
		t.Fatalf("resume count = %d, want 1", rec.count())
	}
	if rec.tids[0] != tid {
		t.Errorf("resumed tid = %d, want %d", rec.tids[0], tid)
	}
	if p.Backlog() != 1 {
		t.Errorf("backlog = %d, want 1", p.Backlog())
	}

	// Draining an empty port resumes nobody.
	s.Process()
	s.Process()
	if rec.count() != 2 {
		t.Errorf("resume count = %d, want 2", rec.count())
	}
}

func TestOutputUnknownPort(t *testing.T) {
	rec := &resumeRecorder{}
	s, _ := Init(rec.resume)

	if _, err := s.Output(99, nil, 1); err == nil {
		t.Error("Output on unknown port should fail")
	}
}

func TestReleasePortResumesBlockedProducers(t *testing.T) {
	rec := &resumeRecorder{}
	s, _ := Init(rec.resume)
	p, _ := s.OpenPort(4, 48000, ModeMono)

	s.Output(p.ID, []int16{1}, 0x10001)
	s.Output(p.ID, []int16{2}, 0x10002)

	s.ReleasePort(p.ID)

	if rec.count() != 2 {
		t.Fatalf("resume count = %d, want 2", rec.count())
	}
	if _, ok := s.Port(p.ID); ok {
		t.Error("released port should be gone")
	}

	// Releasing again is a no-op.
	s.ReleasePort(p.ID)
}
