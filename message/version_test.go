package message

import "testing"

func TestVersionRoundTrip(t *testing.T) {
	for _, v := range []Version{Version09, Version10, Version11} {
		parsed, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("ParseVersion(%q) failed: %v", v.String(), err)
		}
		if parsed != v {
			t.Errorf("round trip mismatch: %v -> %q -> %v", v, v.String(), parsed)
		}
	}
}

func TestVersionHasWireForm(t *testing.T) {
	for _, v := range []Version{Version09, Version10, Version11} {
		if !v.HasWireForm() {
			t.Errorf("%v should have a wire form", v)
		}
	}
	for _, v := range []Version{Version2, Version3} {
		if v.HasWireForm() {
			t.Errorf("%v should not have a wire form", v)
		}
	}
}

func TestParseVersionRejectsHTTP2And3(t *testing.T) {
	for _, tok := range []string{"HTTP/2", "HTTP/3", "HTTP/1.2", "ftp/1.1"} {
		if _, err := ParseVersion(tok); err == nil {
			t.Errorf("ParseVersion(%q) should have failed", tok)
		}
	}
}
