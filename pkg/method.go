package pkg

// Method is the HTTP method of a request.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
	MethodHead
	MethodOptions
	MethodTrace
	MethodConnect
)

var methodNames = map[Method]string{
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodDelete:  "DELETE",
	MethodPatch:   "PATCH",
	MethodHead:    "HEAD",
	MethodOptions: "OPTIONS",
	MethodTrace:   "TRACE",
	MethodConnect: "CONNECT",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return "UNKNOWN"
}

// ParseMethod maps a request-line token to a Method. Unknown or invalid
// tokens map to MethodGet; a bad method never fails a request.
func ParseMethod(s string) Method {
	if !ValidMethod(s) {
		return MethodGet
	}

	for m, name := range methodNames {
		if name == s {
			return m
		}
	}

	return MethodGet
}
