package pa_stats

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInputUnavailable is returned when the pseudoalignment file cannot be opened.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrMalformedLine is matched by every *MalformedLineError.
	ErrMalformedLine = errors.New("malformed line")
	// ErrEmptyInput is returned when a fraction is requested over zero reads.
	ErrEmptyInput = errors.New("no reads in input")
)

// MalformedLineError describes a token that is not a non-negative integer.
// Line and Text are filled in by the accumulator; the parser only knows
// the column (0 is the read id) and the token.
type MalformedLineError struct {
	Line   int
	Text   string
	Column int
	Token  string
	Err    error
}

func (e *MalformedLineError) Error() string {
	what := "color"
	if e.Column == 0 {
		what = "read id"
	}
	msg := fmt.Sprintf("malformed line: invalid %s %q in column %d", what, e.Token, e.Column+1)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d: %q", msg, e.Line, e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is match ErrMalformedLine.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}
