// Package lines reads beatmap text as numbered lines.
package lines

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	DefaultMaxLineSize = 1 << 20
	initialBufferSize  = 4096
)

// Options configures scanning behavior.
type Options struct {
	MaxLineSize int
}

// DefaultOptions returns default scanning options.
func DefaultOptions() Options {
	return Options{
		MaxLineSize: DefaultMaxLineSize,
	}
}

// Line is one line of input with its 1-based position.
type Line struct {
	Text   string
	Number int
}

// Scan calls fn for every line of r in order and stops at the first error
// fn returns. Input is UTF-8 unless it starts with a UTF-16 byte order
// mark; a UTF-8 byte order mark is dropped.
func Scan(r io.Reader, opts Options, fn func(Line) error) error {
	if opts.MaxLineSize == 0 {
		opts = DefaultOptions()
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, decoder))
	sc.Buffer(make([]byte, 0, min(initialBufferSize, opts.MaxLineSize)), opts.MaxLineSize)

	n := 0
	for sc.Scan() {
		n++
		if err := fn(Line{Text: sc.Text(), Number: n}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", n+1, err)
	}
	return nil
}
