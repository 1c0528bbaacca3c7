package usbip_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/usbip"
	"github.com/Alia5/wirestruct/wire"
)

func TestGeneratedLayoutsMatchDeclarations(t *testing.T) {
	pkg, err := scanner.ScanPackage(".")
	require.NoError(t, err)

	want := map[string]struct {
		len    int
		digest string
	}{
		"MgmtHeader":         {usbip.MgmtHeaderByteLen, usbip.MgmtHeaderLayoutDigest},
		"DevListReplyHeader": {usbip.DevListReplyHeaderByteLen, usbip.DevListReplyHeaderLayoutDigest},
		"ExportedDevice":     {usbip.ExportedDeviceByteLen, usbip.ExportedDeviceLayoutDigest},
		"InterfaceDesc":      {usbip.InterfaceDescByteLen, usbip.InterfaceDescLayoutDigest},
		"HeaderBasic":        {usbip.HeaderBasicByteLen, usbip.HeaderBasicLayoutDigest},
		"CmdSubmit":          {usbip.CmdSubmitByteLen, usbip.CmdSubmitLayoutDigest},
		"RetSubmit":          {usbip.RetSubmitByteLen, usbip.RetSubmitLayoutDigest},
		"CmdUnlink":          {usbip.CmdUnlinkByteLen, usbip.CmdUnlinkLayoutDigest},
		"RetUnlink":          {usbip.RetUnlinkByteLen, usbip.RetUnlinkLayoutDigest},
	}
	require.Len(t, pkg.Records, len(want))
	for _, rec := range pkg.Records {
		w, ok := want[rec.Name]
		require.True(t, ok, rec.Name)
		assert.Equal(t, w.len, rec.Schema.Len(), rec.Name)
		assert.Equal(t, w.digest, rec.Schema.Digest(), rec.Name)
	}
}

func TestHeaderSizes(t *testing.T) {
	assert.Equal(t, 8, usbip.MgmtHeaderByteLen)
	assert.Equal(t, 312, usbip.ExportedDeviceByteLen)
	assert.Equal(t, 20, usbip.HeaderBasicByteLen)
	for _, n := range []int{usbip.CmdSubmitByteLen, usbip.RetSubmitByteLen, usbip.CmdUnlinkByteLen, usbip.RetUnlinkByteLen} {
		assert.Equal(t, usbip.URBHeaderLen, n)
	}
}

func TestMgmtHeaderBigEndian(t *testing.T) {
	h := usbip.MgmtHeader{Version: usbip.Version, Command: usbip.OpRepImport, Status: 1}
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x11, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01}, b)

	var got usbip.MgmtHeader
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, h, got)
}

func TestWriteDevlist(t *testing.T) {
	d := usbip.ExportedDevice{
		BusNum:         1,
		DevNum:         2,
		Speed:          2,
		IDVendor:       0x045e,
		IDProduct:      0x028e,
		BNumInterfaces: 1,
	}
	d.SetPath("/sys/devices/pci0000:00/usb1/1-1")
	d.SetBusID("1-1")

	var buf bytes.Buffer
	require.NoError(t, d.WriteDevlist(&buf, []usbip.InterfaceDesc{{Class: 0xff, SubClass: 0x5d, Protocol: 0x01}}))

	b := buf.Bytes()
	require.Len(t, b, usbip.ExportedDeviceByteLen+usbip.InterfaceDescByteLen)
	assert.True(t, bytes.HasPrefix(b, []byte("/sys/devices/pci0000:00/usb1/1-1\x00")))
	assert.Equal(t, []byte("1-1\x00"), b[256:260])
	assert.Equal(t, uint32(1), binary.BigEndian.Uint32(b[288:292]))
	assert.Equal(t, uint32(2), binary.BigEndian.Uint32(b[292:296]))
	assert.Equal(t, uint16(0x045e), binary.BigEndian.Uint16(b[300:302]))
	assert.Equal(t, byte(1), b[311])
	assert.Equal(t, []byte{0xff, 0x5d, 0x01, 0x00}, b[312:])
}

func TestWriteDevlistInterfaceCount(t *testing.T) {
	d := usbip.ExportedDevice{BNumInterfaces: 2}
	var buf bytes.Buffer
	err := d.WriteDevlist(&buf, []usbip.InterfaceDesc{{}})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestSetPathTruncatesAndClears(t *testing.T) {
	var d usbip.ExportedDevice
	d.SetPath(strings.Repeat("a", 300))
	assert.Equal(t, strings.Repeat("a", usbip.PathLen), string(d.Path[:]))

	d.SetPath("b")
	assert.Equal(t, byte('b'), d.Path[0])
	assert.Equal(t, make([]byte, usbip.PathLen-1), d.Path[1:])
}

func TestReadURB(t *testing.T) {
	type testCase struct {
		name string
		rec  wire.Record
	}

	cases := []testCase{
		{
			name: "submit",
			rec: &usbip.CmdSubmit{
				Basic:             usbip.HeaderBasic{Command: usbip.CmdSubmitIdentifier, Seqnum: 7, Devid: 0x10002, Dir: usbip.DirIn, Ep: 1},
				TransferBufferLen: 20,
				Setup:             [8]byte{0x80, 0x06, 0x00, 0x01, 0x00, 0x00, 0x12, 0x00},
			},
		},
		{
			name: "submit reply",
			rec: &usbip.RetSubmit{
				Basic:        usbip.HeaderBasic{Command: usbip.RetSubmitIdentifier, Seqnum: 7},
				Status:       0,
				ActualLength: 20,
			},
		},
		{
			name: "unlink",
			rec: &usbip.CmdUnlink{
				Basic:        usbip.HeaderBasic{Command: usbip.CmdUnlinkIdentifier, Seqnum: 8},
				UnlinkSeqnum: 7,
			},
		},
		{
			name: "unlink reply",
			rec: &usbip.RetUnlink{
				Basic:  usbip.HeaderBasic{Command: usbip.RetUnlinkIdentifier, Seqnum: 8},
				Status: -104,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, wire.Write(&buf, tc.rec))
			require.Equal(t, usbip.URBHeaderLen, buf.Len())

			got, err := usbip.ReadURB(&buf)
			require.NoError(t, err)
			assert.Equal(t, tc.rec, got)
		})
	}
}

func TestRetUnlinkNegativeStatus(t *testing.T) {
	r := usbip.RetUnlink{Basic: usbip.HeaderBasic{Command: usbip.RetUnlinkIdentifier}, Status: -104}
	b, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x04}, b[0:4])
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0x98}, b[20:24])
}

func TestPaddingIsZeroed(t *testing.T) {
	b := bytes.Repeat([]byte{0xff}, usbip.RetSubmitByteLen)
	r := usbip.RetSubmit{}
	require.NoError(t, r.PutBinary(b))
	assert.Equal(t, make([]byte, usbip.RetSubmitByteLen), b)
}

func TestReadURBErrors(t *testing.T) {
	unknown := make([]byte, usbip.URBHeaderLen)
	binary.BigEndian.PutUint32(unknown[0:4], 0x99)
	_, err := usbip.ReadURB(bytes.NewReader(unknown))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown URB command 0x00000099")

	_, err = usbip.ReadURB(bytes.NewReader(unknown[:20]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestLengthMismatch(t *testing.T) {
	var s usbip.CmdSubmit
	err := s.UnmarshalBinary(make([]byte, usbip.CmdSubmitByteLen-1))
	require.ErrorIs(t, err, wire.ErrLengthMismatch)

	var le *wire.LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "CmdSubmit", le.Record)
	assert.Equal(t, 48, le.Want)
	assert.Equal(t, 47, le.Got)
}

func TestIdentifiers(t *testing.T) {
	assert.Equal(t, uint32(1), (&usbip.CmdSubmit{}).Identifier())
	assert.Equal(t, uint32(2), (&usbip.CmdUnlink{}).Identifier())
	assert.Equal(t, uint32(3), (&usbip.RetSubmit{}).Identifier())
	assert.Equal(t, uint32(4), (&usbip.RetUnlink{}).Identifier())

	var _ wire.Identified[uint32] = (*usbip.CmdSubmit)(nil)
}
