// Package decoder turns beatmap text into a model.Document.
//
// Decoding is single-pass and best-effort: malformed numbers become NaN and
// short or unknown records are dropped. The only failure is a slider whose
// repeat count exceeds MaxRepeatCount, which aborts the run with an error
// wrapping ErrMalformedRecord.
package decoder

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rcliao/beatmap/internal/lines"
	"github.com/rcliao/beatmap/internal/model"
)

var formatVersionRegex = regexp.MustCompile(`^osu file format v(\d+)$`)

// Decoder accumulates a Document from lines fed in order.
type Decoder struct {
	doc     *model.Document
	section string
	logger  *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger logs dropped records at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a Decoder with an empty document.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		doc:    model.NewDocument(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Document returns the document decoded so far.
func (d *Decoder) Document() *model.Document {
	return d.doc
}

// Section returns the name of the active section, empty before the first header.
func (d *Decoder) Section() string {
	return d.section
}

// DecodeLine decodes one line. n is the line number used in errors and logs.
func (d *Decoder) DecodeLine(n int, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") {
		return nil
	}

	if name, ok := sectionName(line); ok {
		d.section = name
		return nil
	}

	if d.section == "" {
		if m := formatVersionRegex.FindStringSubmatch(line); m != nil {
			d.doc.Version, _ = strconv.Atoi(m[1])
		}
		return nil
	}

	if err := d.route(n, line); err != nil {
		return &RecordError{Line: n, Section: d.section, Err: err}
	}
	return nil
}

// drop logs a record that produced no output.
func (d *Decoder) drop(n int, reason string) {
	d.logger.Debug("record dropped", "line", n, "section", d.section, "reason", reason)
}

// Decode reads r to the end and returns the decoded document.
func Decode(r io.Reader, opts ...Option) (*model.Document, error) {
	d := New(opts...)
	err := lines.Scan(r, lines.DefaultOptions(), func(l lines.Line) error {
		return d.DecodeLine(l.Number, l.Text)
	})
	if err != nil {
		return nil, err
	}
	return d.Document(), nil
}

// DecodeFile decodes the beatmap at path.
func DecodeFile(path string, opts ...Option) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open beatmap: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
