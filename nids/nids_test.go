package nids

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		nid  uint32
		want string
	}{
		{0x5795E898, "sceDisplayWaitVblankStart"},
		{0x02DB3F5F, "sceAudioOutOutput"},
		{0xC5C11EE7, "sceKernelCreateThread"},
		{0xDEADBEEF, ""},
	}

	for _, tt := range tests {
		if got := Name(tt.nid); got != tt.want {
			t.Errorf("Name(%#x) = %q, want %q", tt.nid, got, tt.want)
		}
	}
}

func TestEntriesUnique(t *testing.T) {
	seenNID := make(map[uint32]string)
	seenName := make(map[string]bool)

	for _, e := range Entries {
		if prev, ok := seenNID[e.NID]; ok {
			t.Errorf("NID %#x assigned to both %s and %s", e.NID, prev, e.Name)
		}
		seenNID[e.NID] = e.Name

		if seenName[e.Name] {
			t.Errorf("name %s listed twice", e.Name)
		}
		seenName[e.Name] = true
	}
}
