// Package alnum maps between characters and digit values for bases 2
// through 36, where the digits are '0' through '9' followed by 'a' through
// 'z'. Decoding is case-insensitive; encoding is lowercase.
package alnum

import "github.com/cockroachdb/errors"

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// invalid marks characters outside the alphabet.
const invalid = 0xff

var decode [256]byte

func init() {
	for i := range decode {
		decode[i] = invalid
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		decode[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			decode[c-'a'+'A'] = byte(i)
		}
	}
}

// ErrInvalid is returned when decoding a string with a character that is
// not a digit of the requested base.
var ErrInvalid = errors.New("uuid25: invalid digit character")

// Decode returns the digit values of s in the given base, most significant
// first. It panics if base is outside 2 through 36.
func Decode(s string, base int) ([]byte, error) {
	if base < 2 || base > len(digits) {
		panic(errors.AssertionFailedf("alnum: base %d out of range", base))
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v := decode[s[i]]
		if int(v) >= base {
			return nil, ErrInvalid
		}
		out[i] = v
	}
	return out, nil
}

// Encode returns the lowercase characters for the given digit values.
// Each value must be below 36.
func Encode(vals []byte) string {
	buf := make([]byte, len(vals))
	for i, v := range vals {
		buf[i] = digits[v]
	}
	return string(buf)
}
