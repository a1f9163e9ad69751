package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseString(t *testing.T, raw string) *Request {
	t.Helper()

	return ParseRequest([]byte(raw))
}

func TestHeaderLookupCaseInsensitive(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\ncontent-type: text/plain\r\nX-Custom: v\r\n\r\n")

	assert.Equal(t, "text/plain", req.Header("Content-Type"))
	assert.Equal(t, "text/plain", req.Header("CONTENT-TYPE"))
	assert.Equal(t, "v", req.Header("x-custom"))
	assert.True(t, req.HasHeader("CONTENT-type"))
	assert.False(t, req.HasHeader("Accept"))
	assert.Empty(t, req.Header("Accept"))
}

func TestHeadersPreserveDeclaredNames(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\nx-weird-CASING: 1\r\n\r\n")

	_, ok := req.Headers()["x-weird-CASING"]
	assert.True(t, ok)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name string
		auth string
		want string
	}{
		{"bearer", "Authorization: Bearer xyz123\r\n", "xyz123"},
		{"basic not bearer", "Authorization: Basic dXNlcg==\r\n", ""},
		{"missing", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parseString(t, "GET / HTTP/1.1\r\n"+tt.auth+"\r\n")

			assert.Equal(t, tt.want, req.BearerToken())
		})
	}
}

func TestBasicAuth(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\nAuthorization: Basic dXNlcjpwYXNz\r\n\r\n")

	assert.Equal(t, "dXNlcjpwYXNz", req.BasicAuth())
	assert.Empty(t, req.BearerToken())
}

func TestAPIKey(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\nX-API-Key: secret\r\nX-Custom-Key: other\r\n\r\n")

	assert.Equal(t, "secret", req.APIKey(""))
	assert.Equal(t, "other", req.APIKey("X-Custom-Key"))
}

func TestContentTypePredicates(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		isJSON      bool
		isForm      bool
		isMultipart bool
	}{
		{"json with charset", "application/json; charset=utf-8", true, false, false},
		{"json upper", "Application/JSON", true, false, false},
		{"plain", "text/plain", false, false, false},
		{"form", "application/x-www-form-urlencoded", false, true, false},
		{"multipart", "multipart/form-data; boundary=x", false, false, true},
		{"absent", "", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "POST / HTTP/1.1\r\n"
			if tt.contentType != "" {
				raw += "Content-Type: " + tt.contentType + "\r\n"
			}
			raw += "\r\n"

			req := parseString(t, raw)

			assert.Equal(t, tt.isJSON, req.IsJSON())
			assert.Equal(t, tt.isForm, req.IsFormData())
			assert.Equal(t, tt.isMultipart, req.IsMultipart())
		})
	}
}

func TestContentLengthAccessor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   uint64
	}{
		{"valid", "Content-Length: 123\r\n", 123},
		{"unparsable", "Content-Length: nope\r\n", 0},
		{"negative", "Content-Length: -1\r\n", 0},
		{"missing", "", 0},
		{"lowercase name", "content-length: 9\r\n", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parseString(t, "POST / HTTP/1.1\r\n"+tt.header+"\r\n")

			assert.Equal(t, tt.want, req.ContentLength())
		})
	}
}

func TestWellKnownHeaderAccessors(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\n"+
		"Host: example.com\r\n"+
		"User-Agent: curl/8.0\r\n"+
		"Referer: http://example.com/prev\r\n"+
		"\r\n")

	assert.Equal(t, "example.com", req.Host())
	assert.Equal(t, "curl/8.0", req.UserAgent())
	assert.Equal(t, "http://example.com/prev", req.Referer())
}

func TestIsMethod(t *testing.T) {
	req := parseString(t, "DELETE /x HTTP/1.1\r\n\r\n")

	assert.True(t, req.IsMethod(MethodDelete))
	assert.False(t, req.IsMethod(MethodGet))
}

func TestQueryParameterAccessors(t *testing.T) {
	req := parseString(t, "GET /p?a=1&b=2 HTTP/1.1\r\n\r\n")

	assert.Equal(t, "1", req.QueryParameter("a"))
	assert.True(t, req.HasQueryParameter("b"))
	assert.False(t, req.HasQueryParameter("c"))
	assert.Empty(t, req.QueryParameter("c"))
}
