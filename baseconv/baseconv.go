// Package baseconv reprojects fixed-length digit-value arrays between
// positional bases 2 through 256 using native uint64 arithmetic.
//
// A digit-value array holds one digit magnitude per element, most
// significant digit first. Conversion processes the source in words of
// several digits at a time, sized so that every multiply-accumulate stays
// within uint64, and sweeps the destination buffer like long division.
package baseconv

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	MinBase = 2
	MaxBase = 256
)

// ErrOverflow is returned when the destination is too short to hold the
// converted value.
var ErrOverflow = errors.New("uuid25: destination too small for converted value")

// Convert returns src, interpreted in srcBase, as exactly dstSize digits in
// dstBase, zero-padded on the left. An empty src yields dstSize zeros.
//
// Convert panics with an assertion failure if a base is outside
// [MinBase, MaxBase], dstSize is negative or any src digit is not below
// srcBase.
func Convert(src []byte, srcBase, dstBase, dstSize int) ([]byte, error) {
	if srcBase < MinBase || srcBase > MaxBase || dstBase < MinBase || dstBase > MaxBase {
		panic(errors.AssertionFailedf("baseconv: base out of range: src=%d dst=%d", srcBase, dstBase))
	}
	if dstSize < 0 {
		panic(errors.AssertionFailedf("baseconv: negative destination size %d", dstSize))
	}
	for i, d := range src {
		if int(d) >= srcBase {
			panic(errors.AssertionFailedf("baseconv: digit %d at %d not below base %d", d, i, srcBase))
		}
	}

	sb, db := uint64(srcBase), uint64(dstBase)
	wordLen, wordBase := wordSize(sb, db)

	dst := make([]byte, dstSize)
	// dst[dstUsed:] may be nonzero; everything left of it is still zero.
	dstUsed := dstSize - 1

	// The first word is short so the remaining words divide src evenly.
	for i := len(src)%wordLen - wordLen; i < len(src); i += wordLen {
		var carry uint64
		for j := max(i, 0); j < i+wordLen; j++ {
			carry = carry*sb + uint64(src[j])
		}

		for j := dstSize - 1; j >= 0; j-- {
			carry += uint64(dst[j]) * wordBase
			dst[j] = byte(carry % db)
			carry /= db
			if carry == 0 && j <= dstUsed {
				dstUsed = j
				break
			}
		}
		if carry != 0 {
			return nil, ErrOverflow
		}
	}
	return dst, nil
}

// MustConvert is like Convert but treats ErrOverflow as an internal
// invariant failure. Use it only where dstSize is known to fit every
// possible src value.
func MustConvert(src []byte, srcBase, dstBase, dstSize int) []byte {
	dst, err := Convert(src, srcBase, dstBase, dstSize)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err,
			"baseconv: %d base-%d digits do not fit in %d base-%d digits", len(src), srcBase, dstSize, dstBase))
	}
	return dst
}

// wordSize returns how many source digits are read per outer step and
// srcBase raised to that count. It guarantees wordBase*dstBase fits in
// uint64, which bounds every intermediate carry.
func wordSize(srcBase, dstBase uint64) (wordLen int, wordBase uint64) {
	wordLen, wordBase = 1, srcBase
	limit := math.MaxUint64 / (srcBase * dstBase)
	for wordBase <= limit {
		wordLen++
		wordBase *= srcBase
	}
	return wordLen, wordBase
}
