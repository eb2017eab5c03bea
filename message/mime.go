package message

import (
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/validator"
)

// ContentEncoding is one member of the comma-separated Content-Encoding
// list. Decompression is out of scope; the list is reported, not applied.
type ContentEncoding string

const (
	EncodingGzip     ContentEncoding = "gzip"
	EncodingCompress ContentEncoding = "compress"
	EncodingDeflate  ContentEncoding = "deflate"
	EncodingBr       ContentEncoding = "br"
	EncodingZstd     ContentEncoding = "zstd"
)

func parseContentEncoding(token string) (ContentEncoding, error) {
	switch ContentEncoding(token) {
	case EncodingGzip, EncodingCompress, EncodingDeflate, EncodingBr, EncodingZstd:
		return ContentEncoding(token), nil
	default:
		return "", newParseError(ErrBodyParse, "invalid content-encoding %q", token)
	}
}

// MimeParseInfo is body-framing metadata derived from the request headers:
// length, content-type, an optional charset or multipart boundary, and the
// advertised (but unapplied) encoding list.
type MimeParseInfo struct {
	Length      int
	MainType    string
	SubType     string
	Original    string
	Charset     string
	Boundary    string
	HasCharset  bool
	HasBoundary bool
	Encoding    []ContentEncoding
}

// parseContentLength validates that v is a well-formed, non-negative
// decimal integer before handing it to strconv.Atoi, using the pack's
// numeric validator rather than a hand-rolled character scan.
func parseContentLength(v string) (int, error) {
	if !validator.IsNumberStr(v) {
		return 0, newParseError(ErrBodyParse, "content-length %q is not numeric", v)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, newParseError(ErrBodyParse, "content-length %q is not a non-negative integer", v)
	}
	return n, nil
}

// parseContentType splits a Content-Type header value into its main media
// type and an optional charset or boundaryString parameter. "boundaryString"
// is required when the main type is "multipart", per §4.1 step 1.
func parseContentType(raw string) (mainType, subType, charset, boundary string, hasCharset, hasBoundary bool, err error) {
	mediaType, rest, hasParam := strings.Cut(raw, ";")
	mediaType = strings.TrimSpace(mediaType)
	main, sub, ok := strings.Cut(mediaType, "/")
	if !ok {
		err = newParseError(ErrInvalidHeader, "invalid or unsupported MIME type %q", mediaType)
		return
	}
	mainType, subType = strings.ToLower(main), strings.ToLower(sub)

	if !hasParam {
		if mainType == "multipart" {
			err = newParseError(ErrBodyParse, "boundaryString is required for multipart/* MIME types")
		}
		return
	}

	param := strings.TrimSpace(rest)
	name, value, ok := strings.Cut(param, "=")
	if !ok {
		err = newParseError(ErrInvalidHeader, "unexpected ';' in Content-Type header; expected charset=... or boundaryString=...")
		return
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boundarystring":
		if mainType != "multipart" {
			err = newParseError(ErrBodyParse, "boundaryString is required only for multipart/* MIME types, got %q", mediaType)
			return
		}
		boundary, hasBoundary = value, true
	case "charset":
		charset, hasCharset = value, true
	default:
		err = newParseError(ErrInvalidHeader, "unexpected Content-Type parameter %q", name)
		return
	}
	if mainType == "multipart" && !hasBoundary {
		err = newParseError(ErrBodyParse, "boundaryString is required for multipart/* MIME types")
	}
	return
}

// ParseMimeInfo extracts length, content-type, charset, boundary, and the
// encoding list from a request's headers. content-length and content-type
// are required fields.
func ParseMimeInfo(h Header) (MimeParseInfo, error) {
	length, err := h.ContentLength()
	if err != nil {
		return MimeParseInfo{}, newParseError(ErrBodyParse, "missing or malformed content-length")
	}

	ctRaw, ok := h.ContentType()
	if !ok {
		return MimeParseInfo{}, newParseError(ErrBodyParse, "missing content-type")
	}
	mainType, subType, charset, boundary, hasCharset, hasBoundary, err := parseContentType(ctRaw)
	if err != nil {
		return MimeParseInfo{}, err
	}

	var encodings []ContentEncoding
	if encRaw, ok := h.Get("content-encoding"); ok {
		for _, tok := range strings.Split(encRaw, ",") {
			enc, err := parseContentEncoding(strings.TrimSpace(tok))
			if err != nil {
				return MimeParseInfo{}, err
			}
			encodings = append(encodings, enc)
		}
	}

	return MimeParseInfo{
		Length:      length,
		MainType:    mainType,
		SubType:     subType,
		Original:    ctRaw,
		Charset:     charset,
		Boundary:    boundary,
		HasCharset:  hasCharset,
		HasBoundary: hasBoundary,
		Encoding:    encodings,
	}, nil
}
