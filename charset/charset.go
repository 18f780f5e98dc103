// Package charset converts between text and bytes in a named character set.
// It backs the string-typed body operations of package request and is usable
// on its own.
package charset

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	// ErrUnsupported reports a charset name with no known encoding.
	ErrUnsupported = errors.New("unsupported charset")
	// ErrEncode reports text that cannot be represented in the target charset.
	ErrEncode = errors.New("cannot encode text")
	// ErrDecode reports bytes that are not valid in the source charset.
	ErrDecode = errors.New("cannot decode text")
)

// Lookup resolves an IANA charset name (e.g. "ISO-8859-1") to its encoding.
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupported, "%q: %s", name, err)
	}
	if enc == nil {
		// The index knows the name but has no encoding for it.
		return nil, errors.Wrapf(ErrUnsupported, "%q", name)
	}
	return enc, nil
}

// EncodeText converts s to bytes in enc. A nil enc means UTF-8, which is a
// passthrough of the string's bytes. A rune that cannot be represented in
// enc reports ErrEncode instead of being replaced.
func EncodeText(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		return []byte(s), nil
	}

	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(ErrEncode, "%s", err)
	}
	return out, nil
}

// DecodeText converts bytes in enc to a string. A nil enc means UTF-8.
func DecodeText(enc encoding.Encoding, p []byte) (string, error) {
	if enc == nil {
		return string(p), nil
	}

	out, err := enc.NewDecoder().Bytes(p)
	if err != nil {
		return "", errors.Wrapf(ErrDecode, "%s", err)
	}
	return string(out), nil
}
