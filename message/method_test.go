package message

import "testing"

func TestMethodRoundTrip(t *testing.T) {
	methods := []Method{Get, Post, Put, Patch, Delete, Connect, Options, Trace, Head}
	for _, m := range methods {
		rendered := m.String()
		parsed, err := ParseMethod(rendered)
		if err != nil {
			t.Fatalf("ParseMethod(%q) failed: %v", rendered, err)
		}
		if parsed != m {
			t.Errorf("round trip mismatch: %v -> %q -> %v", m, rendered, parsed)
		}
	}
}

func TestParseMethodInvalid(t *testing.T) {
	if _, err := ParseMethod("FETCH"); err == nil {
		t.Error("expected an error for an unrecognized method")
	}
}

func TestMethodUnhandlable(t *testing.T) {
	for _, m := range []Method{Trace, Connect, Options} {
		if !m.Unhandlable() {
			t.Errorf("%v should be unhandlable", m)
		}
	}
	for _, m := range []Method{Get, Post, Put, Patch, Delete, Head} {
		if m.Unhandlable() {
			t.Errorf("%v should be handlable", m)
		}
	}
}
