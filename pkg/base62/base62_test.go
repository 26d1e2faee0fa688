package base62_test

import (
	"math"
	"testing"

	"shortlink/pkg/base62"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want string
	}{
		{"zero", 0, "0"},
		{"single digit", 9, "9"},
		{"first uppercase", 10, "A"},
		{"last uppercase", 35, "Z"},
		{"first lowercase", 36, "a"},
		{"last single digit", 61, "z"},
		{"first two digits", 62, "10"},
		{"digit then uppercase", 97, "1Z"},
		{"large value", 123456789, "8M0kX"},
		{"max uint64", math.MaxUint64, "LygHa16AHYF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base62.Encode(tt.n))
		})
	}
}

func TestDecode_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		code string
		want uint64
	}{
		{"zero", "0", 0},
		{"last single digit", "z", 61},
		{"first two digits", "10", 62},
		{"digit then uppercase", "1Z", 97},
		{"large value", "8M0kX", 123456789},
		{"empty decodes to zero", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base62.Decode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_InvalidCharacter_ReturnsError(t *testing.T) {
	for _, code := range []string{"abc!", "-1", "ab cd", "héllo", "_"} {
		_, err := base62.Decode(code)
		assert.ErrorIs(t, err, base62.ErrInvalidCharacter, "code %q", code)
	}
}

func TestDecode_InvalidCharacter_NamesOffender(t *testing.T) {
	_, err := base62.Decode("ab*cd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'*'`)
}

func TestDecode_Overflow_ReturnsError(t *testing.T) {
	// One past the max uint64 representation.
	_, err := base62.Decode("LygHa16AHYG")
	assert.ErrorIs(t, err, base62.ErrOverflow)

	// Way too long.
	_, err = base62.Decode("zzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, base62.ErrOverflow)
}

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 61, 62, 63, 3843, 3844, 1_000_000, 1 << 32, math.MaxInt64, math.MaxUint64}
	for _, n := range values {
		got, err := base62.Decode(base62.Encode(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	// Dense sweep over small identifiers, the range store-assigned ids
	// actually live in early on.
	for n := uint64(0); n < 10_000; n++ {
		got, err := base62.Decode(base62.Encode(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestEncode_NoLeadingZeros(t *testing.T) {
	for n := uint64(1); n < 5_000; n++ {
		code := base62.Encode(n)
		assert.NotEqual(t, byte('0'), code[0], "Encode(%d) = %q", n, code)
	}
}
