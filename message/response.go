package message

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Response is an immutable value: version, status, lower-cased headers,
// body bytes, and the write-capable stream it will be sent on. A Response
// sends to exactly one stream exactly once; Send consumes it.
type Response struct {
	version Version
	status  Status
	headers Header
	body    []byte
	stream  io.WriteCloser
	sent    bool
}

// ResponseBuilder accumulates the optional pieces of a Response before
// Build finalizes them. Build fails when version, status, or stream is
// missing.
type ResponseBuilder struct {
	version    Version
	hasVersion bool
	status     Status
	hasStatus  bool
	headers    Header
	body       []byte
	stream     io.WriteCloser
}

// NewResponseBuilder starts an empty builder.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{headers: NewHeader()}
}

// FromRequestStream seeds the builder's version and stream from a consumed
// request's connection, mirroring "a builder constructed from a consumed
// Request inherits its version and steals its stream."
func (b *ResponseBuilder) FromRequestStream(version Version, stream io.WriteCloser) *ResponseBuilder {
	b.version, b.hasVersion = version, true
	b.stream = stream
	return b
}

// Version sets the response's HTTP version.
func (b *ResponseBuilder) Version(v Version) *ResponseBuilder {
	b.version, b.hasVersion = v, true
	return b
}

// StatusValue sets the response's status.
func (b *ResponseBuilder) StatusValue(s Status) *ResponseBuilder {
	b.status, b.hasStatus = s, true
	return b
}

// Header sets a single response header. Header names are stored lower-cased.
func (b *ResponseBuilder) Header(key, value string) *ResponseBuilder {
	b.headers.Set(key, value)
	return b
}

// Body sets the response body bytes.
func (b *ResponseBuilder) Body(body []byte) *ResponseBuilder {
	b.body = body
	return b
}

// Stream sets the write-capable destination for Send.
func (b *ResponseBuilder) Stream(w io.WriteCloser) *ResponseBuilder {
	b.stream = w
	return b
}

// Build finalizes the Response, applying the header-invariant
// post-processing from §3: Content-Length is set for any non-empty body,
// and a Content-Type lacking a charset parameter gets "; charset=UTF-8"
// appended.
func (b *ResponseBuilder) Build() (*Response, error) {
	if !b.hasVersion {
		return nil, fmt.Errorf("response builder: version is required")
	}
	if !b.hasStatus {
		return nil, fmt.Errorf("response builder: status is required")
	}
	if b.stream == nil {
		return nil, fmt.Errorf("response builder: stream is required")
	}

	headers := b.headers
	if len(b.body) > 0 {
		headers.Set("content-length", fmt.Sprintf("%d", len(b.body)))
		if ct, ok := headers.Get("content-type"); ok && !strings.Contains(ct, "charset=") {
			headers.Set("content-type", ct+"; charset=UTF-8")
		}
	}

	return &Response{
		version: b.version,
		status:  b.status,
		headers: headers,
		body:    b.body,
		stream:  b.stream,
	}, nil
}

// Status returns the response's status.
func (r *Response) Status() Status { return r.status }

// Headers returns the response's lower-cased header map.
func (r *Response) Headers() Header { return r.headers }

// Body returns the response's body bytes.
func (r *Response) Body() []byte { return r.body }

var headerCaser = cases.Title(language.Und)

// titleCaseHeaderName capitalizes each hyphen-separated segment of a
// header name, e.g. "content-type" -> "Content-Type".
func titleCaseHeaderName(name string) string {
	segments := strings.Split(name, "-")
	for i, seg := range segments {
		segments[i] = headerCaser.String(seg)
	}
	return strings.Join(segments, "-")
}

// Serialize renders the response to its wire bytes. HTTP/1.x renders the
// status line, title-cased headers, a blank line, and the body. HTTP/0.9
// renders only the body. HTTP/2 and HTTP/3 have no serialized form here.
func (r *Response) Serialize() ([]byte, error) {
	switch r.version {
	case Version09:
		return r.body, nil
	case Version10, Version11:
		var buf strings.Builder
		fmt.Fprintf(&buf, "%s %s\r\n", r.version, r.status)
		for _, k := range r.headers.Keys() {
			fmt.Fprintf(&buf, "%s: %s\r\n", titleCaseHeaderName(k), r.headers.HashMap[k])
		}
		buf.WriteString("\r\n")
		out := []byte(buf.String())
		out = append(out, r.body...)
		return out, nil
	default:
		return nil, fmt.Errorf("serialization for %s is unimplemented", r.version)
	}
}

// Send writes the serialized response to its owned stream in one logical
// write and consumes the Response; calling Send twice is a programming
// error.
func (r *Response) Send() error {
	if r.sent {
		return fmt.Errorf("response already sent")
	}
	r.sent = true
	defer r.stream.Close()

	data, err := r.Serialize()
	if err != nil {
		return err
	}
	_, err = r.stream.Write(data)
	return err
}

// ErrorResponse synthesizes a response for a dispatch or parse error: the
// given version and stream, the mapped status, and a plain-text body
// naming the reason.
func ErrorResponse(version Version, stream io.WriteCloser, status Status, reason string) (*Response, error) {
	return NewResponseBuilder().
		Version(version).
		StatusValue(status).
		Header("content-type", "text/plain").
		Body([]byte(reason)).
		Stream(stream).
		Build()
}
