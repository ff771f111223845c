// Common package contains the input plumbing shared by the tools:
// opening plain or gzipped files and streaming them line by line.
package common

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/pkg/errors"
)

const readerSize = 1 << 16

// gzipFile closes the decompressor and the file underneath it.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	ferr := g.f.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// plainFile reads through a buffer but closes the file.
type plainFile struct {
	*bufio.Reader
	f *os.File
}

func (p *plainFile) Close() error {
	return p.f.Close()
}

// OpenInput opens file for reading and transparently decompresses it when it
// starts with the gzip magic bytes. The caller must Close the result.
func OpenInput(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}

	br := bufio.NewReaderSize(f, readerSize)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, errors.Wrap(err, "failed to open gzip reader")
		}
		return &gzipFile{Reader: gr, f: f}, nil
	}
	// Peek errors (short or empty file) surface again on the first real read
	return &plainFile{Reader: br, f: f}, nil
}

// LineReader yields lines without their terminator ("\n" or "\r\n").
// The returned slice is only valid until the next call to Next; it is
// backed by a buffer reused across calls.
type LineReader struct {
	r    *bufio.Reader
	buf  []byte
	line int
}

// NewLineReader wraps r. Lines may be of any length.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, readerSize)}
}

// Line returns the 1-based number of the line last returned by Next.
func (lr *LineReader) Line() int {
	return lr.line
}

// Next returns the next line, or io.EOF once the input is exhausted.
// A final line lacking a terminator is still returned.
func (lr *LineReader) Next() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		chunk, err := lr.r.ReadSlice('\n')
		switch {
		case err == bufio.ErrBufferFull:
			lr.buf = append(lr.buf, chunk...) // longer than the reader buffer
			continue
		case err == io.EOF:
			if len(chunk) == 0 && len(lr.buf) == 0 {
				return nil, io.EOF
			}
			lr.buf = append(lr.buf, chunk...)
			lr.line++
			return trimCR(lr.buf), nil
		case err != nil:
			return nil, errors.Wrapf(err, "reading line %d", lr.line+1)
		}

		line := chunk
		if len(lr.buf) > 0 {
			lr.buf = append(lr.buf, chunk...)
			line = lr.buf
		}
		lr.line++
		return trimCR(line[:len(line)-1]), nil
	}
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}

// StreamLines calls handler for every line of r, stopping at the first
// handler error. Line numbers are 1-based.
func StreamLines(r io.Reader, handler func(lineNo int, line []byte) error) error {
	lr := NewLineReader(r)
	for {
		line, err := lr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler(lr.Line(), line); err != nil {
			return err
		}
	}
}
