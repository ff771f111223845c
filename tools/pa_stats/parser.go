package pa_stats

import (
	"bytes"
	"strconv"
)

// ParseLine splits a pseudoalignment line "<read_id> <color_1> ... <color_k>"
// on single spaces. colors is truncated and refilled in input order, so the
// caller should hand the returned slice back in on the next call to reuse its
// storage. Tokens are not trimmed: a doubled or trailing space produces an
// empty token, which is malformed.
func ParseLine(line []byte, colors []uint64) (uint64, []uint64, error) {
	colors = colors[:0]

	tok, rest, more := cut(line)
	readID, err := parseToken(tok, 0)
	if err != nil {
		return 0, colors, err
	}

	for col := 1; more; col++ {
		tok, rest, more = cut(rest)
		color, err := parseToken(tok, col)
		if err != nil {
			return readID, colors, err
		}
		colors = append(colors, color)
	}
	return readID, colors, nil
}

func cut(b []byte) (tok, rest []byte, more bool) {
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, false
}

func parseToken(tok []byte, col int) (uint64, error) {
	v, err := strconv.ParseUint(string(tok), 10, 64)
	if err != nil {
		return 0, &MalformedLineError{Column: col, Token: string(tok), Err: numErr(err)}
	}
	return v, nil
}

// numErr drops strconv's "strconv.ParseUint: parsing ..." prefix, the token is already in the message.
func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
