package request

import (
	"bytes"
	"io"
	"runtime"
	"strings"

	"rawreq/charset"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
	"golang.org/x/text/encoding"
)

// ErrInvalidArgument reports a malformed method, target, protocol version
// or header field. Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

const defaultAcceptCharset = "ISO-8859-1,UTF-8;q=0.7,*;q=0.7"

// Preferred format: IMF-fixdate
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.7
const imfFixDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

var defaultUserAgent = "rawreq (" + runtime.Version() + ")"

type BuilderOptions struct {
	// Protocol overrides the version on the request line, e.g. "HTTP/1.0".
	// Empty means HTTP/1.1.
	Protocol string

	// UserAgent and AcceptCharset override the default values of the
	// User-Agent and Accept-Charset fields set at construction.
	UserAgent     string
	AcceptCharset string

	// Charset encodes string bodies passed to [Builder.BodyText].
	// Nil means UTF-8, a passthrough of the string's bytes.
	Charset encoding.Encoding

	// Clock supplies the time for [Builder.StampDate].
	Clock clock.Clock
}

// Builder accumulates the parts of an HTTP/1.1 request message and
// serializes them on demand. It is not safe for concurrent use.
//
// Method and target are fixed at construction. Header fields keep their
// insertion order, so repeated serialization of the same configuration is
// byte-identical. The body is append-only.
type Builder struct {
	method  Method
	target  string
	version Version

	headers Headers
	body    bytes.Buffer

	charset encoding.Encoding
	clock   clock.Clock

	err error
}

// New creates a builder and validates its configuration up front.
// It reports ErrInvalidArgument for an unknown method, an empty target or a
// malformed BuilderOptions.Protocol. The per-method constructors skip this
// eager validation and leave it to [Builder.Validate].
func New(method Method, target string, opts BuilderOptions) (*Builder, error) {
	b := newBuilder(method, target, opts)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func newBuilder(method Method, target string, opts BuilderOptions) *Builder {
	b := &Builder{
		method:  method,
		target:  target,
		version: Version{1, 1},
		charset: opts.Charset,
		clock:   opts.Clock,
	}
	if b.clock == nil {
		b.clock = clock.New()
	}

	if opts.Protocol != "" {
		ver, err := ParseVersion([]byte(opts.Protocol))
		if err != nil {
			b.err = errors.Wrapf(ErrInvalidArgument, "protocol: %s", err)
		} else {
			b.version = ver
		}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	acceptCharset := opts.AcceptCharset
	if acceptCharset == "" {
		acceptCharset = defaultAcceptCharset
	}

	b.headers.Set("User-Agent", userAgent)
	b.headers.Set("Accept-Charset", acceptCharset)

	return b
}

// Options creates an OPTIONS request to target.
func Options(target string) *Builder { return newBuilder(MethodOptions, target, BuilderOptions{}) }

// Get creates a GET request to target.
func Get(target string) *Builder { return newBuilder(MethodGet, target, BuilderOptions{}) }

// GetRoot creates a GET request to "/".
func GetRoot() *Builder { return Get("/") }

// Head creates a HEAD request to target.
func Head(target string) *Builder { return newBuilder(MethodHead, target, BuilderOptions{}) }

// Post creates a POST request to target.
func Post(target string) *Builder { return newBuilder(MethodPost, target, BuilderOptions{}) }

// Put creates a PUT request to target.
func Put(target string) *Builder { return newBuilder(MethodPut, target, BuilderOptions{}) }

// Delete creates a DELETE request to target.
func Delete(target string) *Builder { return newBuilder(MethodDelete, target, BuilderOptions{}) }

// Trace creates a TRACE request to target.
func Trace(target string) *Builder { return newBuilder(MethodTrace, target, BuilderOptions{}) }

// Connect creates a CONNECT request to target.
func Connect(target string) *Builder { return newBuilder(MethodConnect, target, BuilderOptions{}) }

// Host sets the Host field.
func (b *Builder) Host(host string) *Builder {
	b.headers.Set("Host", host)
	return b
}

// From sets the From field.
func (b *Builder) From(email string) *Builder {
	b.headers.Set("From", email)
	return b
}

// Agent sets the User-Agent field, replacing the construction default.
func (b *Builder) Agent(userAgent string) *Builder {
	b.headers.Set("User-Agent", userAgent)
	return b
}

// Charset sets the Accept-Charset field, replacing the construction default.
func (b *Builder) Charset(acceptCharset string) *Builder {
	b.headers.Set("Accept-Charset", acceptCharset)
	return b
}

// SetHeader sets an arbitrary header field, overwriting any previous value
// of the same name.
func (b *Builder) SetHeader(name, value string) *Builder {
	b.headers.Set(name, value)
	return b
}

// StampDate sets the Date field to the current time of the builder's clock,
// in IMF-fixdate form.
func (b *Builder) StampDate() *Builder {
	b.headers.Set("Date", b.clock.Now().UTC().Format(imfFixDateFormat))
	return b
}

// Body appends p to the request body. Multiple calls accumulate.
func (b *Builder) Body(p []byte) *Builder {
	b.body.Write(p)
	return b
}

// BodyText encodes s with the builder's charset and appends the result to
// the body. An encoding failure leaves the body untouched and is reported
// by Err and Validate.
func (b *Builder) BodyText(s string) *Builder {
	p, err := charset.EncodeText(b.charset, s)
	if err != nil {
		if b.err == nil {
			b.err = errors.Wrap(err, "encoding body text")
		}
		return b
	}
	b.body.Write(p)
	return b
}

// Err returns the first error recorded by a configuration call, if any.
func (b *Builder) Err() error { return b.err }

// Validate reports whether the builder describes a syntactically valid
// request: a known method, a non-blank target and well-formed header
// fields. It also surfaces any error recorded by a configuration call.
func (b *Builder) Validate() error {
	if b.err != nil {
		return b.err
	}
	if !b.method.IsValid() {
		return errors.Wrapf(ErrInvalidArgument, "unknown method %q", string(b.method))
	}
	if strings.TrimSpace(b.target) == "" {
		return errors.Wrap(ErrInvalidArgument, "empty request target")
	}
	for _, f := range b.headers.Fields() {
		if !httpguts.ValidHeaderFieldName(f.Name) {
			return errors.Wrapf(ErrInvalidArgument, "invalid field name %q", f.Name)
		}
		if !httpguts.ValidHeaderFieldValue(f.Value) {
			return errors.Wrapf(ErrInvalidArgument, "invalid value of field %q", f.Name)
		}
	}
	return nil
}

// Request returns a snapshot of the current state, ready for an [Encoder].
func (b *Builder) Request() Request {
	body := make([]byte, b.body.Len())
	copy(body, b.body.Bytes())

	return Request{
		Method:  b.method,
		Target:  b.target,
		Version: b.version,
		Headers: b.headers.Fields(),
		Body:    body,
	}
}

// Bytes serializes the request message: request line, header fields in
// insertion order, an empty line, then the body verbatim. It reads but does
// not consume the builder's state, so repeated calls yield equal results.
//
// No Content-Length field is derived from the body; callers that need one
// must set it themselves.
func (b *Builder) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	// Writes to a bytes.Buffer cannot fail.
	_ = NewEncoder(buf, DefaultEncodeOptions).Encode(b.Request())
	return buf.Bytes()
}

// Text returns the serialized message as a string. It is byte-for-byte
// consistent with Bytes.
func (b *Builder) Text() string { return string(b.Bytes()) }

func (b *Builder) String() string { return b.Text() }

// WriteTo serializes the message to w, implementing io.WriterTo for a
// transport layer. Like Bytes, it leaves the builder unchanged.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}
