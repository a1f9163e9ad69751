package pkg

import (
	"strconv"
	"strings"

	"simpleHttpServer/internal"
)

// Request is the parsed, read-only view over one HTTP request's bytes.
// It is constructed exactly once by ParseRequest and never mutated after;
// it holds no reference to the connection it arrived on.
type Request struct {
	method      Method
	path        string
	fullURL     string
	httpVersion string
	queryParams map[string]string
	headers     map[string]string
	cookies     map[string]string
	body        string
	bodyBytes   []byte
	clientIP    string
	clientPort  int
	timestamp   int64
	rawRequest  string
}

// Method returns the HTTP method of the request line.
func (r *Request) Method() Method { return r.method }

// Path returns the request path without the query string.
func (r *Request) Path() string { return r.path }

// FullURL returns the request target as sent, including the query string.
func (r *Request) FullURL() string { return r.fullURL }

// HTTPVersion returns the protocol token of the request line,
// e.g. "HTTP/1.1".
func (r *Request) HTTPVersion() string { return r.httpVersion }

// QueryParameter returns the value of the named query parameter, or ""
// if it is absent. Values are raw: no percent-decoding is performed.
func (r *Request) QueryParameter(name string) string {
	return r.queryParams[name]
}

// QueryParameters returns all query parameters. The returned map is shared;
// callers must not modify it.
func (r *Request) QueryParameters() map[string]string { return r.queryParams }

func (r *Request) HasQueryParameter(name string) bool {
	_, ok := r.queryParams[name]

	return ok
}

// Header returns the value of the named header. The lookup is
// ASCII-case-insensitive regardless of how the header was cased on the wire.
func (r *Request) Header(name string) string {
	if v, ok := r.headers[name]; ok {
		return v
	}

	for k, v := range r.headers {
		if internal.EqualFold(k, name) {
			return v
		}
	}

	return ""
}

// Headers returns all headers keyed by their declared names as sent by the
// client. The returned map is shared; callers must not modify it.
func (r *Request) Headers() map[string]string { return r.headers }

func (r *Request) HasHeader(name string) bool {
	if _, ok := r.headers[name]; ok {
		return true
	}

	for k := range r.headers {
		if internal.EqualFold(k, name) {
			return true
		}
	}

	return false
}

// Authorization returns the Authorization header value.
func (r *Request) Authorization() string {
	return r.Header("Authorization")
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. It returns "" when the header is missing or not Bearer.
func (r *Request) BearerToken() string {
	auth := r.Authorization()
	if i := strings.Index(auth, "Bearer "); i != -1 {
		return auth[i+len("Bearer "):]
	}

	return ""
}

// BasicAuth returns the base64 credentials from an
// "Authorization: Basic <credentials>" header, still encoded.
func (r *Request) BasicAuth() string {
	auth := r.Authorization()
	if i := strings.Index(auth, "Basic "); i != -1 {
		return auth[i+len("Basic "):]
	}

	return ""
}

// APIKey returns the value of a custom key header. An empty headerName
// looks up "X-API-Key".
func (r *Request) APIKey(headerName string) string {
	if headerName == "" {
		headerName = "X-API-Key"
	}

	return r.Header(headerName)
}

// Body returns the request body as a string.
func (r *Request) Body() string { return r.body }

// BodyBytes returns the request body as raw bytes.
func (r *Request) BodyBytes() []byte { return r.bodyBytes }

// ContentType returns the Content-Type header value.
func (r *Request) ContentType() string {
	return r.Header("Content-Type")
}

// ContentLength returns the declared Content-Length. A missing or
// unparsable header yields 0; the error is never propagated.
func (r *Request) ContentLength() uint64 {
	v := r.Header("Content-Length")
	if v == "" {
		return 0
	}

	n, err := strconv.ParseUint(trimOWS(v), 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// Cookie returns the value of the named cookie, or "" if absent.
func (r *Request) Cookie(name string) string { return r.cookies[name] }

// Cookies returns all cookies parsed from the Cookie header. The returned
// map is shared; callers must not modify it.
func (r *Request) Cookies() map[string]string { return r.cookies }

func (r *Request) HasCookie(name string) bool {
	_, ok := r.cookies[name]

	return ok
}

// ClientIP returns the remote address of the connection the request
// arrived on. It is set by the accept step, not by the parser.
func (r *Request) ClientIP() string { return r.clientIP }

// ClientPort returns the remote port of the connection.
func (r *Request) ClientPort() int { return r.clientPort }

func (r *Request) UserAgent() string { return r.Header("User-Agent") }

func (r *Request) Referer() string { return r.Header("Referer") }

func (r *Request) Host() string { return r.Header("Host") }

// RawRequest returns the complete request exactly as received: request
// line, headers and body.
func (r *Request) RawRequest() string { return r.rawRequest }

// HasBody reports whether any body bytes were received.
func (r *Request) HasBody() bool { return len(r.body) > 0 }

func (r *Request) IsMethod(m Method) bool { return r.method == m }

// IsJSON reports whether the Content-Type declares a JSON payload,
// case-insensitively and ignoring parameters such as charset.
func (r *Request) IsJSON() bool {
	return internal.ContainsFold(r.ContentType(), "application/json")
}

// IsFormData reports whether the Content-Type declares a urlencoded form.
func (r *Request) IsFormData() bool {
	return internal.ContainsFold(r.ContentType(), "application/x-www-form-urlencoded")
}

// IsMultipart reports whether the Content-Type declares a multipart payload.
func (r *Request) IsMultipart() bool {
	return internal.ContainsFold(r.ContentType(), "multipart/")
}

// Timestamp returns the wall-clock receipt time in Unix seconds, stamped
// when the request was parsed.
func (r *Request) Timestamp() int64 { return r.timestamp }
