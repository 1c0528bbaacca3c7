package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		s    Scalar
		text string
		want any
	}{
		{U8, "255", uint8(255)},
		{I8, "-128", int8(-128)},
		{U16, "0x2a00", uint16(0x2a00)},
		{I16, "-2", int16(-2)},
		{U32, "0b101", uint32(5)},
		{I32, " 42 ", int32(42)},
		{U64, "18446744073709551615", uint64(18446744073709551615)},
		{I64, "-9223372036854775808", int64(-9223372036854775808)},
		{Bytes(3), "01 02:ff", []byte{1, 2, 0xff}},
		{Bytes(0), "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.s.String()+"/"+tt.text, func(t *testing.T) {
			got, err := ParseValue(tt.s, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Parsed values are accepted by the field codec.
			fixed, ordered := CodecFor(tt.s)
			if ordered != nil {
				fixed, _ = ordered.Bind(LittleEndian)
			}
			buf := make([]byte, tt.s.Width())
			assert.NoError(t, fixed.Put(got, buf))
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	for _, tc := range []struct {
		s    Scalar
		text string
	}{
		{U8, "256"},
		{I8, "128"},
		{U16, "-1"},
		{U32, "x"},
		{Bytes(2), "010203"},
		{Bytes(2), "zz"},
	} {
		_, err := ParseValue(tc.s, tc.text)
		assert.Error(t, err, "%s %q", tc.s, tc.text)
	}
}

func TestHex(t *testing.T) {
	b, err := ParseHex("0x2A 00\n00:2a")
	require.NoError(t, err)
	assert.Equal(t, []byte{42, 0, 0, 42}, b)
	assert.Equal(t, "2a 00 00 2a", FormatHex(b))
	assert.Equal(t, "", FormatHex(nil))

	assert.Equal(t, "42", FormatValue(uint16(42)))
	assert.Equal(t, "-3", FormatValue(int8(-3)))
	assert.Equal(t, "de ad", FormatValue([]byte{0xde, 0xad}))
}
