package message

import (
	"bufio"
	"strings"
)

// RequestHead is the start line plus headers: everything in the message up
// to the first empty line.
type RequestHead struct {
	Method  Method
	Path    Path
	Version Version
	Headers Header
}

// readHeadLines reads lines from reader up to (but not including) the
// first empty line, reconstituting them with CRLF so a parser fed
// CRLF-terminated or bare-LF input behaves identically. This mirrors the
// listener's responsibility in §4.5 step 2.
func readHeadLines(reader *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		lines = append(lines, trimmed)
		if err != nil {
			break
		}
	}
	return lines, nil
}

// parseHead parses a start line followed by header lines (already split,
// CRLF/LF-tolerant) into a RequestHead. If the version is HTTP/1.1, a
// "host" header is required.
func parseHead(lines []string) (RequestHead, error) {
	if len(lines) == 0 {
		return RequestHead{}, newParseError(ErrEmptyStartLine, "request head is empty")
	}

	rl, err := parseStartLine(lines[0])
	if err != nil {
		return RequestHead{}, err
	}

	headers := NewHeader()
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return RequestHead{}, newParseError(ErrInvalidHeader, "header line %q has no ':'", line)
		}
		// header.Set trims both sides, so leading whitespace after the
		// colon does not survive into the stored value (see Header.Set).
		headers.Set(name, value)
	}

	if rl.Version == Version11 {
		if _, ok := headers.Get("host"); !ok {
			return RequestHead{}, newParseError(ErrMissingHost, "HTTP/1.1 requests must include a Host header")
		}
	}

	return RequestHead{
		Method:  rl.Method,
		Path:    rl.Path,
		Version: rl.Version,
		Headers: headers,
	}, nil
}
