package pkg

import (
	"strings"
	"time"

	"simpleHttpServer/internal"
)

// ParseRequest turns one complete raw-byte capture into a Request. It is a
// pure transformation: no I/O, no shared state, and it never fails.
// Malformed input degrades to default values (GET method, empty path,
// empty maps) rather than producing an error.
//
// Client endpoint metadata is not known at this layer; the accept step
// fills it in after parsing.
func ParseRequest(raw []byte) *Request {
	req := &Request{
		method:      MethodGet,
		queryParams: make(map[string]string),
		headers:     make(map[string]string),
		cookies:     make(map[string]string),
		rawRequest:  string(raw),
		timestamp:   time.Now().Unix(),
	}

	if len(raw) == 0 {
		return req
	}

	// The parser tolerates captures with or without a trailing
	// terminator: with no terminator the whole capture is treated as a
	// headers-only request.
	headerEnd, bodyStart, found := findHeaderEnd(raw)

	headerSection := raw
	if found {
		headerSection = raw[:headerEnd]
	}

	headerSection = headerSection[numLeadingCRorLF(headerSection):]

	lines := strings.Split(string(headerSection), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	req.parseRequestLine(lines[0])

	for _, line := range lines[1:] {
		if line == "" {
			break
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		name = trimOWS(name)
		value = trimOWS(value)
		req.headers[name] = value

		if internal.EqualFold(name, "cookie") {
			req.parseCookies(value)
		}
	}

	if found && bodyStart < len(raw) {
		req.bodyBytes = raw[bodyStart:]
		req.body = string(req.bodyBytes)
	}

	return req
}

// parseRequestLine parses "GET /foo?a=1 HTTP/1.1" into method, target and
// version. Missing pieces are left at their defaults.
func (r *Request) parseRequestLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	r.method = ParseMethod(fields[0])

	if len(fields) > 1 {
		url := fields[1]
		r.fullURL = url

		if path, query, ok := strings.Cut(url, "?"); ok {
			r.path = path
			r.parseQuery(query)
		} else {
			r.path = url
		}
	}

	if len(fields) > 2 {
		r.httpVersion = fields[2]
	}
}

// parseQuery splits a query string into key=value pairs on '&'. Values are
// stored raw, without percent-decoding. Parsing stops at the first pair
// with no '='; that pair and everything after it are discarded.
func (r *Request) parseQuery(query string) {
	start := 0
	for start < len(query) {
		eq := strings.IndexByte(query[start:], '=')
		if eq == -1 {
			break
		}
		eq += start

		amp := strings.IndexByte(query[eq:], '&')
		if amp == -1 {
			amp = len(query)
		} else {
			amp += eq
		}

		r.queryParams[query[start:eq]] = query[eq+1 : amp]
		start = amp + 1
	}
}

// parseCookies splits a Cookie header value into key=value pairs on ';',
// trimming whitespace around both key and value. A segment with no '='
// ends parsing.
func (r *Request) parseCookies(value string) {
	start := 0
	for start < len(value) {
		eq := strings.IndexByte(value[start:], '=')
		if eq == -1 {
			break
		}
		eq += start

		semi := strings.IndexByte(value[eq:], ';')
		if semi == -1 {
			semi = len(value)
		} else {
			semi += eq
		}

		name := trimOWS(value[start:eq])
		r.cookies[name] = trimOWS(value[eq+1 : semi])
		start = semi + 1
	}
}
