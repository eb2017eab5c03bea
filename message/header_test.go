package message

import "testing"

func TestHeaderSetGetLowerCasesKeys(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Type", "application/json")
	v, ok := h.Get("content-type")
	if !ok || v != "application/json" {
		t.Fatalf("Get(lower) = %q, %v", v, ok)
	}
	v, ok = h.Get("CONTENT-TYPE")
	if !ok || v != "application/json" {
		t.Fatalf("Get(upper) = %q, %v", v, ok)
	}
}

func TestHeaderLastWins(t *testing.T) {
	h := NewHeader()
	h.Set("X-Token", "first")
	h.Set("x-token", "second")
	v, ok := h.Get("X-TOKEN")
	if !ok || v != "second" {
		t.Fatalf("Get() = %q, %v, want %q", v, ok, "second")
	}
}

func TestHeaderContentLength(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "13")
	n, err := h.ContentLength()
	if err != nil {
		t.Fatalf("ContentLength() failed: %v", err)
	}
	if n != 13 {
		t.Errorf("ContentLength() = %d, want 13", n)
	}
}

func TestHeaderContentLengthMissing(t *testing.T) {
	h := NewHeader()
	if _, err := h.ContentLength(); err == nil {
		t.Error("expected an error for a missing content-length")
	}
}
