package wire_test

import (
	"testing"

	"github.com/Alia5/wirestruct/wire"
	"github.com/stretchr/testify/assert"
)

func TestLookupScalar(t *testing.T) {
	cases := []struct {
		goType string
		want   wire.Scalar
		ok     bool
	}{
		{"uint8", wire.U8, true},
		{"byte", wire.U8, true},
		{"int8", wire.I8, true},
		{"uint16", wire.U16, true},
		{"int64", wire.I64, true},
		{"[6]byte", wire.Bytes(6), true},
		{"[0]uint8", wire.Bytes(0), true},
		{"[]byte", wire.Scalar{}, false},
		{"[4]int16", wire.Scalar{}, false},
		{"int", wire.Scalar{}, false},
		{"string", wire.Scalar{}, false},
		{"float32", wire.Scalar{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.goType, func(t *testing.T) {
			got, ok := wire.LookupScalar(tc.goType)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScalarOrderRequirement(t *testing.T) {
	assert.False(t, wire.U8.OrderRequired())
	assert.False(t, wire.I8.OrderRequired())
	assert.False(t, wire.Bytes(8).OrderRequired())
	assert.True(t, wire.U16.OrderRequired())
	assert.True(t, wire.I32.OrderRequired())
	assert.True(t, wire.U64.OrderRequired())
}

func TestScalarWidthAndNames(t *testing.T) {
	assert.Equal(t, 1, wire.I8.Width())
	assert.Equal(t, 4, wire.U32.Width())
	assert.Equal(t, 8, wire.I64.Width())
	assert.Equal(t, 0, wire.Bytes(0).Width())
	assert.Equal(t, 0, wire.Scalar{}.Width())

	assert.True(t, wire.I16.Signed())
	assert.False(t, wire.U16.Signed())

	assert.Equal(t, "uint32", wire.U32.GoType())
	assert.Equal(t, "[6]byte", wire.Bytes(6).GoType())
	assert.Equal(t, "i16", wire.I16.String())
	assert.Equal(t, "u8*6", wire.Bytes(6).String())
}

func TestParseOrder(t *testing.T) {
	o, ok := wire.ParseOrder("LE")
	assert.True(t, ok)
	assert.Equal(t, wire.LittleEndian, o)

	o, ok = wire.ParseOrder("big")
	assert.True(t, ok)
	assert.Equal(t, wire.BigEndian, o)

	_, ok = wire.ParseOrder("middle")
	assert.False(t, ok)

	assert.NotEqual(t, wire.OrderNone, wire.NativeOrder())
}
