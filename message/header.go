package message

import (
	"fmt"
	"strings"

	"github.com/curol/httpcore/message/hashmap"
)

// Header is the metadata of a request or response: a mapping from a
// lower-cased header name to its whitespace-trimmed value string. Insertion
// order is irrelevant; duplicate names collapse to last-wins.
type Header struct {
	hashmap.HashMap
}

// NewHeader returns an empty Header.
func NewHeader() Header {
	return Header{HashMap: hashmap.New()}
}

// Set stores value under the lower-cased form of key, overwriting any
// previous value (last-wins on duplicate names). Both key and value are
// trimmed of surrounding whitespace by the underlying HashMap.
func (h Header) Set(key, value string) {
	h.HashMap.Set(strings.ToLower(key), value)
}

// Get returns the stored (trimmed) value for key.
func (h Header) Get(key string) (string, bool) {
	return h.HashMap.Get(strings.ToLower(key))
}

// ContentLength returns the parsed Content-Length header, or an error if it
// is absent or not a valid non-negative integer.
func (h Header) ContentLength() (int, error) {
	v, ok := h.Get("content-length")
	if !ok {
		return 0, fmt.Errorf("missing content-length")
	}
	return parseContentLength(v)
}

// ContentType returns the raw Content-Type header value, unparsed.
func (h Header) ContentType() (string, bool) {
	return h.Get("content-type")
}
