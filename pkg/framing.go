package pkg

import (
	"bytes"
	"errors"
	"io"
	"strconv"
)

const (
	// DefaultMaxMessageSize is the capture limit used by a freshly
	// constructed server before SetMaxMessageSize is called.
	DefaultMaxMessageSize = 88192

	// maxMessageCeiling bounds a capture when no maximum is configured
	// (SetMaxMessageSize(0)).
	maxMessageCeiling = 100 << 20 // 100 MB

	readChunkSize = 4 << 10
)

// frameState tracks where the framing loop is within one request capture.
type frameState int

const (
	readingHeaders frameState = iota
	readingBody
	frameComplete
	frameAborted
)

var errEmptyCapture = errors.New("http: connection closed before any data arrived")

// findHeaderEnd locates the header terminator in b: "\r\n\r\n", or a bare
// "\n\n" for leniency. headerEnd is the offset where the terminator starts
// and bodyStart the offset just past it.
func findHeaderEnd(b []byte) (headerEnd, bodyStart int, ok bool) {
	if i := bytes.Index(b, []byte("\r\n\r\n")); i != -1 {
		return i, i + 4, true
	}

	if i := bytes.Index(b, []byte("\n\n")); i != -1 {
		return i, i + 2, true
	}

	return 0, 0, false
}

// scanContentLength extracts the declared body length from a raw header
// block. The match is against the literal token "Content-Length:". A value
// that does not parse as an unsigned integer is treated as zero, the same
// policy the accessor-level read uses, so a malformed header can never
// abort the connection.
func scanContentLength(header []byte) uint64 {
	i := bytes.Index(header, []byte("Content-Length:"))
	if i == -1 {
		return 0
	}

	v := header[i+len("Content-Length:"):]
	if j := bytes.IndexByte(v, '\n'); j != -1 {
		v = v[:j]
	}

	v = bytes.TrimSuffix(v, []byte("\r"))

	n, err := strconv.ParseUint(trimOWS(string(v)), 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// frameRequest reads r until it has captured one complete HTTP request:
// headers up to the terminator plus however many body bytes the
// Content-Length header declares, never exceeding maxSize (or the internal
// ceiling when maxSize is zero).
//
// Short reads are best-effort completions, not errors: a client that
// disconnects mid-body still yields whatever was captured. The only failure
// is a connection that closes before any byte arrived.
func frameRequest(r io.Reader, maxSize int) ([]byte, error) {
	ceiling := maxSize
	if ceiling <= 0 {
		ceiling = maxMessageCeiling
	}

	buf := make([]byte, 0, readChunkSize)
	chunk := make([]byte, readChunkSize)

	state := readingHeaders
	required := 0 // total capture size once the body length is known

	for state == readingHeaders {
		if len(buf) >= ceiling {
			// Buffer exhausted before the terminator; hand over
			// what was captured.
			state = frameComplete
			break
		}

		space := ceiling - len(buf)
		if space > len(chunk) {
			space = len(chunk)
		}

		n, err := r.Read(chunk[:space])
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}

		if n <= 0 || err != nil {
			if len(buf) == 0 {
				state = frameAborted
				break
			}

			// A partial or malformed request is still handed to
			// the parser.
			state = frameComplete
			break
		}

		headerEnd, bodyStart, ok := findHeaderEnd(buf)
		if !ok {
			continue
		}

		length := scanContentLength(buf[:headerEnd])
		if length == 0 {
			state = frameComplete
			break
		}

		if length > uint64(ceiling-bodyStart) {
			// The declared length is not trusted beyond the
			// configured maximum; cap the body at the space left.
			required = ceiling
		} else {
			required = bodyStart + int(length)
		}

		state = readingBody
	}

	for state == readingBody {
		if len(buf) >= required {
			state = frameComplete
			break
		}

		space := required - len(buf)
		if space > len(chunk) {
			space = len(chunk)
		}

		n, err := r.Read(chunk[:space])
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}

		if n <= 0 || err != nil {
			// Short body is accepted as-is.
			state = frameComplete
			break
		}
	}

	if state == frameAborted {
		return nil, errEmptyCapture
	}

	return buf, nil
}
