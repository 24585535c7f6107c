package alnum

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want []byte
	}{
		{"", 36, []byte{}},
		{"0", 2, []byte{0}},
		{"101", 2, []byte{1, 0, 1}},
		{"09aZ", 36, []byte{0, 9, 10, 35}},
		{"deadBEEF", 16, []byte{13, 14, 10, 13, 11, 14, 14, 15}},
		{"zZ", 36, []byte{35, 35}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in, tt.base)
		if err != nil {
			t.Errorf("Decode(%q, %d): %v", tt.in, tt.base, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Decode(%q, %d) = %v, want %v", tt.in, tt.base, got, tt.want)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		in   string
		base int
	}{
		{"2", 2},
		{"g", 16},
		{"G", 16},
		{"-", 36},
		{" 1", 10},
		{"é", 36},
		{"\x00", 36},
		{"abc{", 36},
	}
	for _, tt := range tests {
		if _, err := Decode(tt.in, tt.base); !errors.Is(err, ErrInvalid) {
			t.Errorf("Decode(%q, %d): err = %v, want ErrInvalid", tt.in, tt.base, err)
		}
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	lower, err := Decode(digits, 36)
	if err != nil {
		t.Fatal(err)
	}
	upper, err := Decode(strings.ToUpper(digits), 36)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(lower, upper) {
		t.Errorf("Decode(upper) = %v, want %v", upper, lower)
	}
	for i, v := range lower {
		if int(v) != i {
			t.Errorf("Decode(%q) = %d, want %d", digits[i], v, i)
		}
	}
}

func TestDecodeBaseOutOfRange(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 256} {
		func() {
			defer func() {
				r := recover()
				if err, ok := r.(error); !ok || !errors.HasAssertionFailure(err) {
					t.Errorf("Decode(_, %d): panic = %v, want assertion failure", base, r)
				}
			}()
			Decode("0", base)
		}()
	}
}

func TestEncode(t *testing.T) {
	vals := make([]byte, 36)
	for i := range vals {
		vals[i] = byte(i)
	}
	if got := Encode(vals); got != digits {
		t.Errorf("Encode(0..35) = %q, want %q", got, digits)
	}
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q, want empty", got)
	}
}
