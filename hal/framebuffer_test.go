package hal

import "testing"

func TestMemoryFramebufferPresent(t *testing.T) {
	fb := NewMemoryFramebuffer(4, 2)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 16 {
		t.Fatalf("stride=%d len=%d, want 8 and 16", fb.StrideBytes(), len(fb.Buffer()))
	}

	fb.ClearRGB(0xFF, 0x00, 0x00)
	snap := make([]byte, 16)
	if n := fb.Snapshot(snap); n != 0 || snap[0] != 0 {
		t.Fatalf("Snapshot() before Present = %d, %#x; want 0, 0", n, snap[0])
	}

	var pushed int
	fb.OnPresent(func(buf []byte) error {
		pushed = len(buf)
		return nil
	})
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if n := fb.Snapshot(snap); n != 1 {
		t.Fatalf("Snapshot() = %d presents, want 1", n)
	}
	if got := uint16(snap[0]) | uint16(snap[1])<<8; got != 0xF800 {
		t.Fatalf("pixel = %#04x, want 0xf800", got)
	}
	if pushed != 16 {
		t.Fatalf("OnPresent saw %d bytes, want 16", pushed)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0x00, 0x00},
		{0x00, 0xFF, 0x00},
		{0x00, 0x00, 0xFF},
	}
	for _, tt := range tests {
		r, g, b := RGB888From565(RGB565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("round trip %v = %d,%d,%d", tt, r, g, b)
		}
	}

	dst := make([]byte, 8)
	ExpandRGB565(dst, []byte{0x00, 0xF8, 0xE0, 0x07})
	want := []byte{0xFF, 0, 0, 0xFF, 0, 0xFF, 0, 0xFF}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("ExpandRGB565() = %v, want %v", dst, want)
		}
	}
}
