package steamdeck_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/wirestruct/device/steamdeck"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/wire"
)

func TestGeneratedLayoutsMatchDeclarations(t *testing.T) {
	pkg, err := scanner.ScanPackage(".")
	require.NoError(t, err)

	want := map[string][2]any{
		"InputState":  {steamdeck.InputStateByteLen, steamdeck.InputStateLayoutDigest},
		"HapticState": {steamdeck.HapticStateByteLen, steamdeck.HapticStateLayoutDigest},
		"InReport":    {steamdeck.InReportByteLen, steamdeck.InReportLayoutDigest},
	}
	require.Len(t, pkg.Records, len(want))
	for _, rec := range pkg.Records {
		w, ok := want[rec.Name]
		require.True(t, ok, rec.Name)
		assert.Equal(t, w[0], rec.Schema.Len(), rec.Name)
		assert.Equal(t, w[1], rec.Schema.Digest(), rec.Name)
	}
}

func TestInputStateWire(t *testing.T) {
	st := steamdeck.InputState{
		Buttons:          steamdeck.ButtonA | steamdeck.ButtonQAM,
		LeftPadX:         -1,
		GyroQuatW:        0x1234,
		TriggerRawL:      0x7fff,
		RightStickY:      -32768,
		PressurePadRight: 0xbeef,
	}
	b, err := st.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 52)

	assert.Equal(t, uint32(steamdeck.ButtonA), binary.LittleEndian.Uint32(b[0:4]))
	assert.Equal(t, uint32(0x00040000), binary.LittleEndian.Uint32(b[4:8]), "ulButtonsH")
	assert.Equal(t, []byte{0xff, 0xff}, b[8:10])
	assert.Equal(t, []byte{0x34, 0x12}, b[28:30])
	assert.Equal(t, []byte{0xff, 0x7f}, b[36:38])
	assert.Equal(t, []byte{0x00, 0x80}, b[46:48])
	assert.Equal(t, []byte{0xef, 0xbe}, b[50:52])

	var out steamdeck.InputState
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, st, out)
}

func TestBuildInReport(t *testing.T) {
	st := steamdeck.InputState{Buttons: steamdeck.ButtonSteam, LeftStickX: 100}
	b := steamdeck.BuildInReport(42, st)
	require.Len(t, b, 64)

	assert.Equal(t, []byte{0x01, 0x00, 0x09, 0x40}, b[0:4])
	assert.Equal(t, uint32(42), binary.LittleEndian.Uint32(b[4:8]))
	payload, err := st.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, payload, b[8:60])
	assert.Equal(t, make([]byte, 4), b[60:])

	var r steamdeck.InReport
	require.NoError(t, r.UnmarshalBinary(b))
	assert.Equal(t, steamdeck.ValveInReportTypeControllerDeckState, r.Type)
	assert.Equal(t, (&r).Identifier(), r.Type)
	assert.Equal(t, st, r.State)
}

func TestHapticState(t *testing.T) {
	var h steamdeck.HapticState
	err := h.UnmarshalBinary([]byte{1, 2, 3})
	assert.ErrorIs(t, err, wire.ErrLengthMismatch)

	require.NoError(t, h.UnmarshalBinary([]byte{0x00, 0x01, 0xff, 0xff}))
	assert.Equal(t, steamdeck.HapticState{LeftMotor: 0x0100, RightMotor: 0xffff}, h)
}
