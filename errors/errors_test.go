package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Path:   []string{"param.sfo", "TITLE"},
				Detail: "key table truncated",
			},
			contains: []string{"[parse]", "invalid_data", "param.sfo.TITLE", "key table truncated"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseIO,
				Kind:  KindNotFound,
			},
			contains: []string{"[io]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "bad module image",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "bad module image", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidData,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseParse, Kind: KindInvalidData}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseIO, Kind: KindInvalidData}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseParse, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseParse, Kind: KindInvalidData}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseKernel, KindNotFound).
		Path("threads", "0x10001").
		Value(0x10001).
		Cause(cause).
		Detail("thread %s gone", "0x10001").
		Build()

	if err.Phase != PhaseKernel {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseKernel)
	}
	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	if len(err.Path) != 2 || err.Path[0] != "threads" || err.Path[1] != "0x10001" {
		t.Errorf("Path = %v, want [threads 0x10001]", err.Path)
	}
	if err.Value != 0x10001 {
		t.Errorf("Value = %v, want 0x10001", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "thread 0x10001 gone" {
		t.Errorf("Detail = %v, want 'thread 0x10001 gone'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseIO, "title", "PCSG00000")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "PCSG00000") {
			t.Errorf("Detail = %v, should contain title id", err.Detail)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseParse, []string{"header"}, "bad magic")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseParse, []string{"entries"}, 64, 16)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 64 {
			t.Errorf("Value = %v, want 64", err.Value)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseLoad, "compressed SELF images")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("Aborted", func(t *testing.T) {
		err := Aborted(PhaseDisplay, "present queue")
		if err.Kind != KindAborted {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAborted)
		}
	})

	t.Run("Exhausted", func(t *testing.T) {
		err := Exhausted(PhaseAudio, "output ports", 8)
		if err.Kind != KindExhausted {
			t.Errorf("Kind = %v, want %v", err.Kind, KindExhausted)
		}
		if !strings.Contains(err.Detail, "8") {
			t.Errorf("Detail = %v, should contain limit", err.Detail)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("short read")
		err := ParseFailed("param.sfo", cause)
		if err.Phase != PhaseParse {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
		}
		if !errors.Is(err.Cause, cause) {
			t.Error("cause not preserved")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := Wrap(PhaseIO, KindInvalidData, cause, "read sce_sys")
		if !errors.Is(err.Unwrap(), cause) {
			t.Error("Wrap did not keep cause")
		}
	})
}
