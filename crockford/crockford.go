// Package crockford maps between Crockford Base32 characters and digit
// values. The alphabet excludes I, L, O, U to avoid ambiguity.
// Decoding is case-insensitive and, per Crockford, reads I and L as 1 and
// O as 0. Encoding is uppercase.
package crockford

import "github.com/cockroachdb/errors"

const Base = 32

var encode = [Base]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'X',
	'Y', 'Z',
}

const invalid = 0xff

var decode [256]byte

func init() {
	for i := range decode {
		decode[i] = invalid
	}
	for i, c := range encode {
		decode[c] = byte(i)
		// Case-insensitive: map lowercase to same value
		if c >= 'A' && c <= 'Z' {
			decode[c+32] = byte(i)
		}
	}
	// Crockford substitutions
	decode['I'] = 1
	decode['i'] = 1
	decode['L'] = 1
	decode['l'] = 1
	decode['O'] = 0
	decode['o'] = 0
}

// ErrInvalid is returned when decoding a string with invalid characters.
var ErrInvalid = errors.New("uuid25: invalid crockford character")

// Decode returns the digit values of a Crockford Base32 string, most
// significant first. Returns ErrInvalid if the string contains a
// character outside the alphabet (U, punctuation, non-ASCII).
func Decode(s string) ([]byte, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v := decode[s[i]]
		if v >= Base {
			return nil, ErrInvalid
		}
		out[i] = v
	}
	return out, nil
}

// Encode returns the uppercase Crockford characters for the given digit
// values. Each value must be below 32.
func Encode(vals []byte) string {
	buf := make([]byte, len(vals))
	for i, v := range vals {
		buf[i] = encode[v]
	}
	return string(buf)
}
