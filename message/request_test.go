package message

import "testing"

func TestParseStartLineHTTP09(t *testing.T) {
	rl, err := parseStartLine("GET /dogs")
	if err != nil {
		t.Fatalf("parseStartLine failed: %v", err)
	}
	if rl.Method != Get || rl.Version != Version09 {
		t.Errorf("got method=%v version=%v", rl.Method, rl.Version)
	}
}

func TestParseStartLineHTTP11(t *testing.T) {
	rl, err := parseStartLine("POST /dogs HTTP/1.1\r\n")
	if err != nil {
		t.Fatalf("parseStartLine failed: %v", err)
	}
	if rl.Method != Post || rl.Version != Version11 {
		t.Errorf("got method=%v version=%v", rl.Method, rl.Version)
	}
}

func TestParseStartLineTooFewSegments(t *testing.T) {
	if _, err := parseStartLine("GET"); err == nil {
		t.Error("expected an error for a single-token start line")
	}
}

func TestParseStartLineTooManySegments(t *testing.T) {
	if _, err := parseStartLine("GET /dogs HTTP/1.1 extra"); err == nil {
		t.Error("expected an error for a four-token start line")
	}
}

func TestParseStartLineEmpty(t *testing.T) {
	if _, err := parseStartLine(""); err == nil {
		t.Error("expected an error for an empty start line")
	}
}

func TestParseHeadRequiresHostOnHTTP11(t *testing.T) {
	lines := []string{"GET /dogs HTTP/1.1"}
	if _, err := parseHead(lines); err == nil {
		t.Error("expected a missing-host error for HTTP/1.1 without a Host header")
	}
}

func TestParseHeadAcceptsHostOnHTTP11(t *testing.T) {
	lines := []string{"GET /dogs HTTP/1.1", "Host: example.com"}
	head, err := parseHead(lines)
	if err != nil {
		t.Fatalf("parseHead failed: %v", err)
	}
	if _, ok := head.Headers.Get("host"); !ok {
		t.Error("expected the host header to be present")
	}
}

func TestParseHeadHTTP09DoesNotRequireHost(t *testing.T) {
	lines := []string{"GET /dogs"}
	if _, err := parseHead(lines); err != nil {
		t.Fatalf("parseHead failed: %v", err)
	}
}

func TestReadRequestParsesHeadAndFramedBody(t *testing.T) {
	raw := "POST /dogs HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 14\r\n" +
		"\r\n" +
		`{"name":"Rex"}`

	req, err := NewRequestFromBytes([]byte(raw))
	if err != nil {
		t.Fatalf("NewRequestFromBytes failed: %v", err)
	}
	if req.Method() != Post {
		t.Errorf("Method() = %v, want Post", req.Method())
	}
	if req.Path().Value != "/dogs" {
		t.Errorf("Path() = %+v", req.Path())
	}

	var body struct {
		Name string `mapstructure:"name"`
	}
	if err := req.BindJSON(&body); err != nil {
		t.Fatalf("BindJSON failed: %v", err)
	}
	if body.Name != "Rex" {
		t.Errorf("body.Name = %q, want Rex", body.Name)
	}
}

func TestReadRequestToleratesBareLF(t *testing.T) {
	raw := "GET /dogs HTTP/1.1\n" +
		"Host: example.com\n" +
		"\n"
	req, err := NewRequestFromBytes([]byte(raw))
	if err != nil {
		t.Fatalf("NewRequestFromBytes failed: %v", err)
	}
	if req.Method() != Get {
		t.Errorf("Method() = %v, want Get", req.Method())
	}
}
