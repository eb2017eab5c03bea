// Package message implements the from-scratch HTTP/1.x wire types: the
// closed Method/Version/Path variants, the lower-cased Header map, the
// start-line and head parser, the lazy body reader, and the
// version-aware Response builder/serializer.
package message

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// BodyReader is the sole owner of a connection's read half once a Request
// has parsed its head. The body is read lazily, only when the caller asks
// for it as text or JSON.
type BodyReader interface {
	Text(info MimeParseInfo) (string, error)
	JSON(info MimeParseInfo) (any, error)
}

// http1BodyReader reads exactly Content-Length bytes from the stream on
// first use and caches them; HTTP/1.0 and HTTP/1.1 share this framing
// (chunked encoding is out of scope).
type http1BodyReader struct {
	r    *bufio.Reader
	read bool
	data []byte
	err  error
}

func (b *http1BodyReader) load(length int) ([]byte, error) {
	if !b.read {
		buf := make([]byte, length)
		n, err := io.ReadFull(b.r, buf)
		b.data = buf[:n]
		b.err = err
		b.read = true
	}
	if b.err != nil {
		return nil, newParseError(ErrBodyParse, "short read: expected %d bytes, got %d", length, len(b.data))
	}
	return b.data, nil
}

func (b *http1BodyReader) Text(info MimeParseInfo) (string, error) {
	if info.MainType != "text" {
		return "", newParseError(ErrBodyParse, "expected main MIME type 'text', got %q", info.MainType)
	}
	data, err := b.load(info.Length)
	if err != nil {
		return "", err
	}
	if !isValidUTF8(data) {
		return "", newParseError(ErrBodyParse, "body is not valid UTF-8")
	}
	return string(data), nil
}

func (b *http1BodyReader) JSON(info MimeParseInfo) (any, error) {
	if info.MainType != "application" || info.SubType != "json" {
		return nil, newParseError(ErrBodyParse, "expected content-type application/json, got %q", info.Original)
	}
	data, err := b.load(info.Length)
	if err != nil {
		return nil, err
	}
	if !isValidUTF8(data) {
		return nil, newParseError(ErrBodyParse, "body is not valid UTF-8")
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, newParseError(ErrBodyParse, "malformed JSON: %v", err)
	}
	return v, nil
}

func isValidUTF8(b []byte) bool {
	return strings.ToValidUTF8(string(b), "�") == string(b)
}

// Request owns a RequestHead and the body reader that is the sole owner of
// the connection's read half. The body is lazy: it is only read when
// ReadBodyText, ReadBodyJSON or BindJSON is called.
type Request struct {
	Head RequestHead
	body BodyReader
}

// NewRequest builds a Request from an already-parsed head and a reader
// positioned at the start of the body.
func NewRequest(head RequestHead, r *bufio.Reader) *Request {
	return &Request{
		Head: head,
		body: &http1BodyReader{r: r},
	}
}

// ReadRequestHead reads and parses a request head (start line + headers)
// from reader, tolerating both CRLF and bare-LF line endings.
func ReadRequestHead(reader *bufio.Reader) (RequestHead, error) {
	lines, err := readHeadLines(reader)
	if err != nil {
		return RequestHead{}, err
	}
	return parseHead(lines)
}

// ReadRequest reads a full request head from r and returns a Request whose
// body reader is positioned immediately after the head.
func ReadRequest(r io.Reader) (*Request, error) {
	reader := bufio.NewReader(r)
	head, err := ReadRequestHead(reader)
	if err != nil {
		return nil, err
	}
	return NewRequest(head, reader), nil
}

// NewRequestFromBytes parses a complete request message (head + framed
// body) out of an in-memory byte slice. Useful for tests and for the
// worker pool's unit-level exercising of the parser without a socket.
func NewRequestFromBytes(data []byte) (*Request, error) {
	return ReadRequest(bytes.NewReader(data))
}

// Method returns the parsed method.
func (r *Request) Method() Method { return r.Head.Method }

// Path returns the parsed path-form.
func (r *Request) Path() Path { return r.Head.Path }

// Version returns the parsed version.
func (r *Request) Version() Version { return r.Head.Version }

// Headers returns the parsed header map.
func (r *Request) Headers() Header { return r.Head.Headers }

// ReadBodyText decodes the body as UTF-8 text, verifying the advertised
// main MIME type is "text".
func (r *Request) ReadBodyText() (string, error) {
	info, err := ParseMimeInfo(r.Head.Headers)
	if err != nil {
		return "", err
	}
	return r.body.Text(info)
}

// ReadBodyJSON decodes the body as a generic JSON value, verifying the
// advertised content-type is application/json.
func (r *Request) ReadBodyJSON() (any, error) {
	info, err := ParseMimeInfo(r.Head.Headers)
	if err != nil {
		return nil, err
	}
	return r.body.JSON(info)
}

// BindJSON decodes the JSON body and then decodes the resulting generic
// value into dst via mapstructure, a convenience layered on top of
// ReadBodyJSON for handlers that want a typed struct instead of `any`.
func (r *Request) BindJSON(dst any) error {
	v, err := r.ReadBodyJSON()
	if err != nil {
		return err
	}
	return mapstructure.Decode(v, dst)
}
