package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Options tune how [Open] binds the streams.
type Options struct {
	// Encoding names the character encoding of the input, e.g. "windows-1252".
	// The input is decoded to UTF-8 before scanning. Empty means the bytes are used as is.
	Encoding string

	// BufferSize is the size of the output buffer. Zero means the bufio default.
	BufferSize int
}

// Streams is a pair of open handles: the input for reading and the output for writing.
// Both stay open until [Streams.Close].
type Streams struct {
	InPath  string
	OutPath string

	in  *os.File
	out *os.File

	reader io.Reader
	writer *bufio.Writer

	closed bool
}

// CheckEncoding reports whether name is a known input encoding.
// The empty name means no decoding and is always valid.
func CheckEncoding(name string) error {
	_, err := decoder(name)
	return err
}

// decoder returns the transformer decoding name to UTF-8, or nil for the empty name.
func decoder(name string) (transform.Transformer, error) {
	if name == "" {
		return nil, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownEncoding, name, err)
	}

	return enc.NewDecoder(), nil
}

// Open binds the input and output paths.
//
// The encoding is checked before any file is touched and an unknown name matches
// [ErrUnknownEncoding]. The input is opened next, so a missing input never creates or
// truncates the output. The output is created or truncated. On failure nothing is left
// open and the error is an [*InputOpenError] or an [*OutputOpenError].
func Open(inPath, outPath string, opts Options) (*Streams, error) {
	decode, err := decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nil, &InputOpenError{Path: inPath, Err: err}
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		in.Close()
		return nil, &OutputOpenError{Path: outPath, Err: err}
	}

	var reader io.Reader = in
	if decode != nil {
		reader = transform.NewReader(in, decode)
	}

	writer := bufio.NewWriter(out)
	if opts.BufferSize > 0 {
		writer = bufio.NewWriterSize(out, opts.BufferSize)
	}

	return &Streams{
		InPath:  inPath,
		OutPath: outPath,
		in:      in,
		out:     out,
		reader:  reader,
		writer:  writer,
	}, nil
}

// Reader returns the input stream, decoded if an Encoding was set.
// It is not buffered: the scanning engine keeps its own input buffer.
func (s *Streams) Reader() io.Reader {
	return s.reader
}

// Writer returns the buffered output stream.
func (s *Streams) Writer() io.Writer {
	return s.writer
}

// Close flushes the output and closes both files. It is safe to call more than once;
// only the first call does any work.
func (s *Streams) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error

	if err := s.writer.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush output %q: %w", s.OutPath, err))
	}

	if err := s.out.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close output %q: %w", s.OutPath, err))
	}

	if err := s.in.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close input %q: %w", s.InPath, err))
	}

	return errors.Join(errs...)
}
