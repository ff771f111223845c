package pa_stats

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		id     uint64
		colors []uint64
	}{
		{"0", 0, []uint64{}},
		{"0 5", 0, []uint64{5}},
		{"12 5 6 5", 12, []uint64{5, 6, 5}},
		{"18446744073709551615 18446744073709551615", 1<<64 - 1, []uint64{1<<64 - 1}},
		{"3 9 1 4", 3, []uint64{9, 1, 4}},
	}
	for _, tt := range tests {
		id, colors, err := ParseLine([]byte(tt.line), nil)
		if err != nil {
			t.Errorf("ParseLine(%q): %v", tt.line, err)
			continue
		}
		if id != tt.id {
			t.Errorf("ParseLine(%q) id = %d, want %d", tt.line, id, tt.id)
		}
		if len(colors) != len(tt.colors) || (len(colors) > 0 && !reflect.DeepEqual(colors, tt.colors)) {
			t.Errorf("ParseLine(%q) colors = %v, want %v", tt.line, colors, tt.colors)
		}
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		line   string
		column int
		token  string
	}{
		{"", 0, ""},
		{"abc 1", 0, "abc"},
		{"-1 2", 0, "-1"},
		{"2 abc", 1, "abc"},
		{"2 5 x", 2, "x"},
		{"2  5", 1, ""},       // doubled space
		{"2 5 ", 2, ""},       // trailing space
		{" 2 5", 0, ""},       // leading space
		{"2 5\t6", 1, "5\t6"}, // only ' ' separates
		{"1 18446744073709551616", 1, "18446744073709551616"},
	}
	for _, tt := range tests {
		_, _, err := ParseLine([]byte(tt.line), nil)
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("ParseLine(%q) err = %v, want ErrMalformedLine", tt.line, err)
			continue
		}
		var mle *MalformedLineError
		if !errors.As(err, &mle) {
			t.Fatalf("ParseLine(%q) err is not *MalformedLineError", tt.line)
		}
		if mle.Column != tt.column || mle.Token != tt.token {
			t.Errorf("ParseLine(%q) column/token = %d/%q, want %d/%q",
				tt.line, mle.Column, mle.Token, tt.column, tt.token)
		}
	}
}

func TestParseLine_ReusesBuffer(t *testing.T) {
	buf := make([]uint64, 0, 8)
	_, buf, err := ParseLine([]byte("0 1 2 3 4"), buf)
	if err != nil {
		t.Fatal(err)
	}
	first := &buf[:1][0]

	_, buf, err = ParseLine([]byte("1 9"), buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(buf, []uint64{9}) {
		t.Errorf("stale colors leaked: %v", buf)
	}
	if &buf[0] != first {
		t.Error("color buffer was reallocated")
	}

	_, buf, err = ParseLine([]byte("2"), buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 0 {
		t.Errorf("read-id-only line left colors %v", buf)
	}
}

func TestMalformedLineError_Message(t *testing.T) {
	err := &MalformedLineError{Line: 4, Text: "2 abc", Column: 1, Token: "abc"}
	want := `malformed line: invalid color "abc" in column 2 at line 4: "2 abc"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
