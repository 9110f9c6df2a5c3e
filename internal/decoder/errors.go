package decoder

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord marks a record that aborts the whole decode run.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError reports the line on which decoding was aborted.
type RecordError struct {
	Line    int
	Section string
	Err     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d [%s]: %v", e.Line, e.Section, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
