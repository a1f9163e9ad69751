package pkg

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// ValidMethod reports whether method is a syntactically valid HTTP method
// token per RFC 7230: one or more tchar, no CTLs or separators.
func ValidMethod(method string) bool {
	return len(method) > 0 && strings.IndexFunc(method, isNotToken) == -1
}

// trimOWS trims optional whitespace (spaces and tabs) from both ends of s.
func trimOWS(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}

	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}

	return s
}

func numLeadingCRorLF(v []byte) (n int) {
	for _, b := range v {
		if b == '\r' || b == '\n' {
			n++
			continue
		}

		break
	}

	return
}
