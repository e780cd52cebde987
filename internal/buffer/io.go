package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"unicode/utf8"
)

var nativeLineEnding = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// ErrInvalidUTF8 is returned by Read for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Read loads a document from r. Every "\r\n" is normalised to '\n'. The
// ending of the first line break is remembered as the line ending used by
// WriteTo. Input that is not valid UTF-8 is rejected so that writing the
// document back cannot lose bytes.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("byte %d: %w", invalidOffset(data), ErrInvalidUTF8)
	}

	ending := nativeLineEnding
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		ending = "\n"
		if i > 0 && data[i-1] == '\r' {
			ending = "\r\n"
		}
	}

	d := FromString(strings.ReplaceAll(string(data), "\r\n", "\n"))
	d.ending = ending
	return d, nil
}

// invalidOffset returns the offset of the first byte that does not start
// a valid UTF-8 sequence.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// LineEnding returns the line ending WriteTo will use.
func (d *Document) LineEnding() string {
	return d.ending
}

// SetLineEnding changes the line ending used by WriteTo.
func (d *Document) SetLineEnding(ending string) {
	d.ending = ending
}

// WriteTo writes the document using its line ending.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, line := range d.lines {
		n, err := io.WriteString(w, string(line))
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("failed to write line %d: %w", i, err)
		}
		if i == len(d.lines)-1 {
			break
		}
		n, err = io.WriteString(w, d.ending)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("failed to write line %d: %w", i, err)
		}
	}
	return total, nil
}
