package message

import "testing"

func TestParseMimeInfoBasic(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "13")
	h.Set("Content-Type", "application/json; charset=utf-8")

	info, err := ParseMimeInfo(h)
	if err != nil {
		t.Fatalf("ParseMimeInfo failed: %v", err)
	}
	if info.Length != 13 {
		t.Errorf("Length = %d, want 13", info.Length)
	}
	if info.MainType != "application" || info.SubType != "json" {
		t.Errorf("MainType/SubType = %q/%q", info.MainType, info.SubType)
	}
	if !info.HasCharset || info.Charset != "utf-8" {
		t.Errorf("Charset = %q, HasCharset = %v", info.Charset, info.HasCharset)
	}
}

func TestParseMimeInfoMultipartRequiresBoundary(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "0")
	h.Set("Content-Type", "multipart/form-data")
	if _, err := ParseMimeInfo(h); err == nil {
		t.Error("expected an error for multipart without a boundary")
	}
}

func TestParseMimeInfoMultipartWithBoundary(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "0")
	h.Set("Content-Type", "multipart/form-data; boundaryString=xyz")
	info, err := ParseMimeInfo(h)
	if err != nil {
		t.Fatalf("ParseMimeInfo failed: %v", err)
	}
	if !info.HasBoundary || info.Boundary != "xyz" {
		t.Errorf("Boundary = %q, HasBoundary = %v", info.Boundary, info.HasBoundary)
	}
}

func TestParseMimeInfoEncodingList(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "0")
	h.Set("Content-Type", "text/plain")
	h.Set("Content-Encoding", "gzip, br")
	info, err := ParseMimeInfo(h)
	if err != nil {
		t.Fatalf("ParseMimeInfo failed: %v", err)
	}
	if len(info.Encoding) != 2 || info.Encoding[0] != EncodingGzip || info.Encoding[1] != EncodingBr {
		t.Errorf("Encoding = %v", info.Encoding)
	}
}

func TestParseContentLengthRejectsNonNumeric(t *testing.T) {
	if _, err := parseContentLength("not-a-number"); err == nil {
		t.Error("expected an error for a non-numeric content-length")
	}
	if _, err := parseContentLength("-5"); err == nil {
		t.Error("expected an error for a negative content-length")
	}
}
