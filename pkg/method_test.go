package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodString(t *testing.T) {
	assert.Equal(t, "GET", MethodGet.String())
	assert.Equal(t, "POST", MethodPost.String())
	assert.Equal(t, "CONNECT", MethodConnect.String())
	assert.Equal(t, "UNKNOWN", Method(99).String())
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"GET", MethodGet},
		{"POST", MethodPost},
		{"PUT", MethodPut},
		{"DELETE", MethodDelete},
		{"PATCH", MethodPatch},
		{"HEAD", MethodHead},
		{"OPTIONS", MethodOptions},
		{"TRACE", MethodTrace},
		{"CONNECT", MethodConnect},
		// Unknown and invalid tokens default to GET; a bad method is
		// never an error.
		{"BREW", MethodGet},
		{"get", MethodGet},
		{"", MethodGet},
		{"GE T", MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMethod(tt.in))
		})
	}
}

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod("GET"))
	assert.True(t, ValidMethod("BREW"))
	assert.False(t, ValidMethod(""))
	assert.False(t, ValidMethod("GE T"))
	assert.False(t, ValidMethod("GET/"))
}