// Package uuid25 implements uuid25, a 25-character, case-insensitive,
// lexicographically sortable base-36 encoding of 128-bit UUIDs, and
// converts it to and from the hex, hyphenated, braced, URN and Crockford
// Base32 text forms and the 16-byte binary form.
//
//	id, err := uuid25.Parse("8da942a4-1fbe-4ca6-852c-95c473229c7d")
//	id.String()     // "8dx554y5rzerz1syhqsvsdw8t"
//	id.Hyphenated() // "8da942a4-1fbe-4ca6-852c-95c473229c7d"
//
// IDs are immutable values and safe to share between goroutines.
package uuid25

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/paraglidehq/uuid25/alnum"
	"github.com/paraglidehq/uuid25/baseconv"
	"github.com/paraglidehq/uuid25/crockford"
)

// Compile-time interface checks for ID
var (
	_ fmt.Stringer               = ID{}
	_ driver.Valuer              = ID{}
	_ sql.Scanner                = (*ID)(nil)
	_ encoding.TextMarshaler     = ID{}
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.BinaryMarshaler   = ID{}
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ json.Marshaler             = ID{}
	_ json.Unmarshaler           = (*ID)(nil)
	_ gob.GobEncoder             = ID{}
	_ gob.GobDecoder             = (*ID)(nil)
)

const (
	// Size is the length of the canonical uuid25 string.
	Size = 25
	// ByteSize is the length of the binary form.
	ByteSize = 16

	hexSize       = 32
	crockfordSize = 26
	urnPrefix     = "urn:uuid:"
	maxString     = "f5lxx1zz5pnorynqglhzmsp33"
)

var (
	// ErrSyntax is returned for any string that is not a UUID in one of
	// the supported formats.
	ErrSyntax = errors.New("uuid25: invalid UUID string")

	// ErrLength is returned when the binary form is not exactly 16 bytes.
	ErrLength = errors.New("uuid25: UUID must be exactly 16 bytes")

	// ErrDigitValues is returned by FromDigitValues for arrays that are not
	// 25 base-36 digits no greater than Max.
	ErrDigitValues = errors.New("uuid25: invalid digit values")
)

type Format string

const (
	FormatUUID25     Format = "uuid25"
	FormatHex        Format = "hex"
	FormatHyphenated Format = "hyphenated"
	FormatBraced     Format = "braced"
	FormatURN        Format = "urn"
	FormatCrockford  Format = "crockford"
)

// ID is a 128-bit UUID held as the 25 base-36 digits of its uuid25 form.
// The zero value is the nil UUID. IDs compare with == and order with
// Compare the same way their canonical strings do.
type ID struct {
	digits [Size]byte
}

var (
	// Nil is the all-zero UUID, "0000000000000000000000000".
	Nil ID

	// Max is the all-ones UUID, "f5lxx1zz5pnorynqglhzmsp33".
	Max = ID{digits: mustDigits36(maxString)}
)

func mustDigits36(s string) [Size]byte {
	d, err := alnum.Decode(s, 36)
	if err != nil || len(d) != Size {
		panic(errors.AssertionFailedf("uuid25: bad constant %q", s))
	}
	return [Size]byte(d)
}

// inRange reports whether d, as 25 base-36 digits, is at most Max.
func inRange(d []byte) bool {
	return bytes.Compare(d, Max.digits[:]) <= 0
}

func (id ID) IsNil() bool {
	return id == Nil
}

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
// The order is numeric order of the 128-bit values.
func Compare(a, b ID) int {
	return bytes.Compare(a.digits[:], b.digits[:])
}

// DigitValues returns the 25 base-36 digit values, most significant first.
func (id ID) DigitValues() [Size]byte {
	return id.digits
}

// String returns the canonical 25-character uuid25 form.
func (id ID) String() string {
	return alnum.Encode(id.digits[:])
}

func (id ID) Format(f Format) string {
	switch f {
	case FormatHex:
		return id.Hex()
	case FormatHyphenated:
		return id.Hyphenated()
	case FormatBraced:
		return id.Braced()
	case FormatURN:
		return id.URN()
	case FormatCrockford:
		return id.Crockford()
	default:
		return id.String()
	}
}

// Bytes returns the ID as a 16-byte big-endian slice.
func (id ID) Bytes() []byte {
	return baseconv.MustConvert(id.digits[:], 36, 256, ByteSize)
}

// Hex returns the 32-digit lowercase hex form without separators.
func (id ID) Hex() string {
	return alnum.Encode(baseconv.MustConvert(id.digits[:], 36, 16, hexSize))
}

// Hyphenated returns the 8-4-4-4-12 form, e.g.
// "e7a1d63b-7117-4423-8988-afcf12161878".
func (id ID) Hyphenated() string {
	h := id.Hex()
	var b strings.Builder
	b.Grow(hexSize + 4)
	b.WriteString(h[:8])
	b.WriteByte('-')
	b.WriteString(h[8:12])
	b.WriteByte('-')
	b.WriteString(h[12:16])
	b.WriteByte('-')
	b.WriteString(h[16:20])
	b.WriteByte('-')
	b.WriteString(h[20:])
	return b.String()
}

// Braced returns the hyphenated form wrapped in curly braces.
func (id ID) Braced() string {
	return "{" + id.Hyphenated() + "}"
}

// URN returns the RFC 4122 URN form, "urn:uuid:" + hyphenated.
func (id ID) URN() string {
	return urnPrefix + id.Hyphenated()
}

// Crockford returns the 26-character uppercase Crockford Base32 form.
func (id ID) Crockford() string {
	return crockford.Encode(baseconv.MustConvert(id.digits[:], 36, crockford.Base, crockfordSize))
}

// UUID converts the ID to a github.com/google/uuid UUID.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id.Bytes())
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts every
// format Parse does.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = Nil
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("uuid25: invalid JSON string")
	}
	return id.UnmarshalText(b[1 : len(b)-1])
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// GobEncode implements gob.GobEncoder.
func (id ID) GobEncode() ([]byte, error) {
	return id.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (id *ID) GobDecode(data []byte) error {
	return id.UnmarshalBinary(data)
}

// FromDigitValues returns the ID for 25 base-36 digit values, most
// significant first. Returns ErrDigitValues if the length is wrong, a
// digit is 36 or more, or the value exceeds 128 bits.
func FromDigitValues(d []byte) (ID, error) {
	if len(d) != Size {
		return Nil, ErrDigitValues
	}
	for _, v := range d {
		if v >= 36 {
			return Nil, ErrDigitValues
		}
	}
	if !inRange(d) {
		return Nil, ErrDigitValues
	}
	return ID{digits: [Size]byte(d)}, nil
}

// FromBytes returns an ID from a 16-byte big-endian slice.
func FromBytes(b []byte) (ID, error) {
	if len(b) != ByteSize {
		return Nil, ErrLength
	}
	return ID{digits: [Size]byte(baseconv.MustConvert(b, 256, 36, Size))}, nil
}

// FromBytesOrNil returns an ID from a 16-byte slice.
// Returns Nil on error.
func FromBytesOrNil(b []byte) ID {
	id, err := FromBytes(b)
	if err != nil {
		return Nil
	}
	return id
}

// FromUUID converts a github.com/google/uuid UUID.
func FromUUID(u uuid.UUID) ID {
	return ID{digits: [Size]byte(baseconv.MustConvert(u[:], 256, 36, Size))}
}

// FromString returns an ID parsed from the input string.
// Alias for Parse.
func FromString(s string) (ID, error) {
	return Parse(s)
}

// FromStringOrNil returns an ID parsed from the input string.
// Returns Nil on error.
func FromStringOrNil(s string) ID {
	id, err := Parse(s)
	if err != nil {
		return Nil
	}
	return id
}

// Must panics if err is not nil
func Must(id ID, err error) ID {
	if err != nil {
		panic(err)
	}
	return id
}
