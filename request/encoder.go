package request

import (
	"bufio"
	"bytes"
	"io"

	"rawreq/rule"

	"github.com/pkg/errors"
)

type EncodeOptions struct {
	// UseSoleLF specifies wheter a single LF character should be used as a line terminator.
	//
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-3
	UseSoleLF bool
}

var DefaultEncodeOptions = EncodeOptions{
	UseSoleLF: false,
}

// Encoder writes request messages to an underlying writer.
type Encoder struct {
	bw   *bufio.Writer
	opts EncodeOptions
}

func NewEncoder(w io.Writer, opts EncodeOptions) *Encoder {
	return &Encoder{
		bw:   bufio.NewWriter(w),
		opts: opts,
	}
}

func (e *Encoder) Encode(request Request) error {
	if err := e.encodeRequestLine(request); err != nil {
		return errors.Wrap(err, "encoding request line")
	}

	if err := e.encodeHeaders(request.Headers); err != nil {
		return errors.Wrap(err, "encoding headers")
	}

	if _, err := e.bw.Write(request.Body); err != nil {
		return errors.Wrap(err, "writing request body")
	}

	if err := e.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing request")
	}

	return nil
}

func (e *Encoder) encodeRequestLine(request Request) error {
	buf := bytes.NewBuffer(nil)

	buf.WriteString(string(request.Method))
	buf.WriteByte(rule.SP)
	buf.WriteString(request.Target)
	buf.WriteByte(rule.SP)
	buf.Write(request.Version.Text())

	if err := e.writeLine(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing line")
	}

	return nil
}

func (e *Encoder) encodeHeaders(fields []Field) error {
	for _, field := range fields {
		if err := e.writeLine(field.Text()); err != nil {
			return errors.Wrap(err, "writing field")
		}
	}

	// Write a empty line as all the headers are written.
	if err := e.writeLine(nil); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}

func (e *Encoder) writeLine(line []byte) error {
	if _, err := e.bw.Write(line); err != nil {
		return errors.Wrap(err, "writing line")
	}

	term := rule.CRLF
	if e.opts.UseSoleLF {
		term = term[1:]
	}

	if _, err := e.bw.Write(term); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}
