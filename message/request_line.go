package message

import "strings"

// RequestLine is the parsed first line of a request: method, path-form,
// and version (absent for HTTP/0.9).
type RequestLine struct {
	Method  Method
	Path    Path
	Version Version
}

// parseStartLine splits the first line by a single space into at most
// three tokens. Two tokens mean HTTP/0.9 (method and path only); three
// mean method, path, and version. Any other count is an error.
func parseStartLine(line string) (RequestLine, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return RequestLine{}, newParseError(ErrEmptyStartLine, "start line is empty")
	}

	tokens := strings.SplitN(line, " ", 3)
	for _, t := range tokens {
		if t == "" {
			return RequestLine{}, newParseError(ErrTooFewSegments, "start line %q has empty segments", line)
		}
	}

	var methodTok, pathTok, versionTok string
	switch len(tokens) {
	case 2:
		methodTok, pathTok = tokens[0], tokens[1]
		return buildRequestLine(methodTok, pathTok, "", Version09)
	case 3:
		methodTok, pathTok, versionTok = tokens[0], tokens[1], tokens[2]
		if strings.Contains(versionTok, " ") {
			return RequestLine{}, newParseError(ErrTooManySegments, "start line %q has too many segments", line)
		}
		return buildRequestLine(methodTok, pathTok, versionTok, 0)
	default:
		if len(tokens) < 2 {
			return RequestLine{}, newParseError(ErrTooFewSegments, "start line %q has too few segments", line)
		}
		return RequestLine{}, newParseError(ErrTooManySegments, "start line %q has too many segments", line)
	}
}

func buildRequestLine(methodTok, pathTok, versionTok string, zeroNineVersion Version) (RequestLine, error) {
	method, err := ParseMethod(methodTok)
	if err != nil {
		return RequestLine{}, err
	}
	path, err := ParsePath(pathTok)
	if err != nil {
		return RequestLine{}, err
	}
	if versionTok == "" {
		return RequestLine{Method: method, Path: path, Version: zeroNineVersion}, nil
	}
	version, err := ParseVersion(versionTok)
	if err != nil {
		return RequestLine{}, err
	}
	return RequestLine{Method: method, Path: path, Version: version}, nil
}
