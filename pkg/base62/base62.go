// Package base62 converts between non-negative integers and short
// alphanumeric codes. The encoding is positional over the 62-character
// alphabet 0-9A-Za-z, most-significant digit first, so Encode and Decode
// are exact inverses for every uint64.
package base62

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Alphabet order matters: digits, then uppercase, then lowercase.
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base     = 62
)

var (
	// ErrInvalidCharacter is returned when a code contains a character
	// outside the base62 alphabet.
	ErrInvalidCharacter = errors.New("invalid character in base62 code")

	// ErrOverflow is returned when a decoded value exceeds the uint64 range.
	ErrOverflow = errors.New("decoded value exceeds uint64 range")
)

// charValue maps an alphabet byte to its digit value, -1 for anything else.
var charValue [256]int8

func init() {
	for i := range charValue {
		charValue[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		charValue[alphabet[i]] = int8(i)
	}
}

// Encode converts n to its base62 representation. Encode(0) == "0"; no
// other representation carries a leading zero digit.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}

	// uint64 needs at most 11 base62 digits.
	buf := make([]byte, 0, 11)
	for n > 0 {
		buf = append(buf, alphabet[n%base])
		n /= base
	}

	// Digits were produced least-significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Decode converts a base62 code back to its integer value. It fails with
// ErrInvalidCharacter, naming the offending character, if the code contains
// anything outside the alphabet, and with ErrOverflow if the value does not
// fit in a uint64.
func Decode(code string) (uint64, error) {
	var result uint64
	for i := 0; i < len(code); i++ {
		v := charValue[code[i]]
		if v < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, code[i], i)
		}
		if result > (math.MaxUint64-uint64(v))/base {
			return 0, ErrOverflow
		}
		result = result*base + uint64(v)
	}
	return result, nil
}
