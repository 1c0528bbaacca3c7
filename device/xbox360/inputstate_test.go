package xbox360_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/wirestruct/device/xbox360"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/wire"
)

func TestGeneratedLayoutsMatchDeclarations(t *testing.T) {
	pkg, err := scanner.ScanPackage(".")
	require.NoError(t, err)

	want := map[string][2]any{
		"InputState":                {xbox360.InputStateByteLen, xbox360.InputStateLayoutDigest},
		"GuitarHeroDrumsInputState": {xbox360.GuitarHeroDrumsInputStateByteLen, xbox360.GuitarHeroDrumsInputStateLayoutDigest},
		"XRumbleState":              {xbox360.XRumbleStateByteLen, xbox360.XRumbleStateLayoutDigest},
		"Report":                    {xbox360.ReportByteLen, xbox360.ReportLayoutDigest},
	}
	require.Len(t, pkg.Records, len(want))
	for _, rec := range pkg.Records {
		w, ok := want[rec.Name]
		require.True(t, ok, rec.Name)
		assert.Equal(t, w[0], rec.Schema.Len(), rec.Name)
		assert.Equal(t, w[1], rec.Schema.Digest(), rec.Name)
	}
}

func TestInputReports(t *testing.T) {
	type testCase struct {
		name           string
		inputState     xbox360.InputState
		expectedReport []byte
	}

	cases := []testCase{
		{
			name:       "neutral defaults",
			inputState: xbox360.InputState{},
			expectedReport: []byte{
				0x00, 0x14,
				0x00, 0x00,
				0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "buttons, triggers and sticks",
			inputState: xbox360.InputState{
				Buttons:  xbox360.ButtonA | xbox360.ButtonStart | 0x10000,
				LT:       0xff,
				RT:       0x80,
				LX:       -32768,
				LY:       32767,
				RX:       1,
				RY:       -1,
				Reserved: [6]byte{1, 2, 3, 4, 5, 6},
			},
			expectedReport: []byte{
				0x00, 0x14,
				0x10, 0x10,
				0xff, 0x80,
				0x00, 0x80, 0xff, 0x7f, 0x01, 0x00, 0xff, 0xff,
				0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedReport, tc.inputState.BuildReport())
		})
	}
}

func TestInputStateWire(t *testing.T) {
	in := xbox360.InputState{
		Buttons:  0xdeadbeef,
		LT:       1,
		RT:       2,
		LX:       -2,
		LY:       3,
		RX:       -4,
		RY:       5,
		Reserved: [6]byte{9, 9, 9, 9, 9, 9},
	}
	b, err := in.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 20)
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde, 0x01, 0x02, 0xfe, 0xff}, b[:8])
	assert.Equal(t, []byte{9, 9, 9, 9, 9, 9}, b[14:])

	var out xbox360.InputState
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)

	assert.ErrorIs(t, out.UnmarshalBinary(b[:19]), wire.ErrLengthMismatch)
}

func TestGuitarHeroDrumsSkipsPadding(t *testing.T) {
	b := make([]byte, xbox360.GuitarHeroDrumsInputStateByteLen)
	b[4], b[5] = 0xaa, 0xbb
	b[6] = 100
	b[11] = 127
	copy(b[12:], []byte{0x90, 0x26, 0x40, 0, 0, 0})

	var s xbox360.GuitarHeroDrumsInputState
	require.NoError(t, s.UnmarshalBinary(b))
	assert.Equal(t, uint8(100), s.GreenVelocity)
	assert.Equal(t, uint8(127), s.KickVelocity)
	assert.Equal(t, [6]byte{0x90, 0x26, 0x40}, s.MidiPacket)

	out, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, out[4:6])
	assert.Equal(t, b[6:], out[6:])
}

func TestRumbleState(t *testing.T) {
	var r xbox360.XRumbleState
	require.NoError(t, wire.Read(bytes.NewReader([]byte{0x40, 0xc0}), &r))
	assert.Equal(t, xbox360.XRumbleState{LeftMotor: 0x40, RightMotor: 0xc0}, r)
}
