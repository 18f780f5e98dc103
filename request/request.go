package request

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

type Method string

// Supported methods for HTTP/1.1.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.1
const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodOptions, MethodGet, MethodHead, MethodPost,
		MethodPut, MethodDelete, MethodTrace, MethodConnect:
		return true
	}
	return false
}

// [Major, Minor]
type Version [2]uint

// ParseVersion parses http version text(e.g. "HTTP/1.1") into [Version].
func ParseVersion(b []byte) (Version, error) {
	prefix := []byte("HTTP/")
	if !bytes.HasPrefix(b, prefix) {
		return Version{}, errors.Errorf("http version prefix not found: %s", b)
	}

	// Get major and minor version.
	first, second, found := bytes.Cut(b[len(prefix):], []byte{'.'})
	if !found {
		return Version{}, errors.Errorf("dot seperator not found on version: %s", b)
	}

	major, err1 := strconv.ParseUint(string(first), 10, 64)
	minor, err2 := strconv.ParseUint(string(second), 10, 64)
	if err1 != nil || err2 != nil {
		return Version{}, errors.Errorf("http version is not convertable to int: %s", b)
	}

	return Version{uint(major), uint(minor)}, nil
}

func (ver Version) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write([]byte("HTTP/"))
	buf.Write([]byte(strconv.FormatUint(uint64(ver[0]), 10)))
	buf.Write([]byte{'.'})
	buf.Write([]byte(strconv.FormatUint(uint64(ver[1]), 10)))
	return buf.Bytes()
}

func (ver Version) String() string { return string(ver.Text()) }

type Field struct{ Name, Value string }

func (f *Field) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(f.Name)
	buf.WriteString(": ")
	buf.WriteString(f.Value)
	return buf.Bytes()
}

// Request is a serializable snapshot of a [Builder]. It shares no state
// with the builder that produced it.
type Request struct {
	Method  Method
	Target  string
	Version Version

	Headers []Field

	Body []byte
}
