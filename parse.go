package uuid25

import (
	"strings"

	"github.com/paraglidehq/uuid25/alnum"
	"github.com/paraglidehq/uuid25/baseconv"
	"github.com/paraglidehq/uuid25/crockford"
)

// Parse parses any supported UUID string, choosing the format by length:
//
//	25  uuid25          dpoadk8izg9y4tte7vy1xt94o
//	26  Crockford       77M7B3PW8Q8GHRK25FSW91C63R
//	32  hex             e7a1d63b711744238988afcf12161878
//	36  hyphenated      e7a1d63b-7117-4423-8988-afcf12161878
//	38  braced          {e7a1d63b-7117-4423-8988-afcf12161878}
//	45  URN             urn:uuid:e7a1d63b-7117-4423-8988-afcf12161878
//
// Letters are case-insensitive in every format. Any other input returns
// ErrSyntax.
func Parse(s string) (ID, error) {
	switch len(s) {
	case Size:
		return ParseUUID25(s)
	case crockfordSize:
		return ParseCrockford(s)
	case hexSize:
		return ParseHex(s)
	case hexSize + 4:
		return ParseHyphenated(s)
	case hexSize + 6:
		return ParseBraced(s)
	case len(urnPrefix) + hexSize + 4:
		return ParseURN(s)
	default:
		return Nil, ErrSyntax
	}
}

// ParseUUID25 parses the 25-character canonical form.
func ParseUUID25(s string) (ID, error) {
	if len(s) != Size {
		return Nil, ErrSyntax
	}
	d, err := alnum.Decode(s, 36)
	if err != nil {
		return Nil, ErrSyntax
	}
	// 25 base-36 digits reach past 128 bits.
	if !inRange(d) {
		return Nil, ErrSyntax
	}
	return ID{digits: [Size]byte(d)}, nil
}

// ParseCrockford parses the 26-character Crockford Base32 form. I and L
// are read as 1 and O as 0.
func ParseCrockford(s string) (ID, error) {
	if len(s) != crockfordSize {
		return Nil, ErrSyntax
	}
	d, err := crockford.Decode(s)
	if err != nil {
		return Nil, ErrSyntax
	}
	// 26 digits hold 130 bits; the top two must be clear.
	if d[0] > 7 {
		return Nil, ErrSyntax
	}
	return ID{digits: [Size]byte(baseconv.MustConvert(d, crockford.Base, 36, Size))}, nil
}

// ParseHex parses 32 hex digits without separators.
func ParseHex(s string) (ID, error) {
	if len(s) != hexSize {
		return Nil, ErrSyntax
	}
	return parseHexDigits(s)
}

// ParseHyphenated parses the 8-4-4-4-12 form.
func ParseHyphenated(s string) (ID, error) {
	if len(s) != hexSize+4 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Nil, ErrSyntax
	}
	return parseHexDigits(s[:8] + s[9:13] + s[14:18] + s[19:23] + s[24:])
}

// ParseBraced parses the hyphenated form wrapped in curly braces.
func ParseBraced(s string) (ID, error) {
	if len(s) != hexSize+6 || s[0] != '{' || s[len(s)-1] != '}' {
		return Nil, ErrSyntax
	}
	return ParseHyphenated(s[1 : len(s)-1])
}

// ParseURN parses the "urn:uuid:" form. The prefix is case-insensitive.
func ParseURN(s string) (ID, error) {
	if len(s) != len(urnPrefix)+hexSize+4 || !strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		return Nil, ErrSyntax
	}
	return ParseHyphenated(s[len(urnPrefix):])
}

func parseHexDigits(s string) (ID, error) {
	d, err := alnum.Decode(s, 16)
	if err != nil {
		return Nil, ErrSyntax
	}
	return ID{digits: [Size]byte(baseconv.MustConvert(d, 16, 36, Size))}, nil
}

// Parse parses a string into the ID receiver.
func (id *ID) Parse(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
