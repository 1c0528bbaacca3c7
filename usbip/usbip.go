// Package usbip declares the fixed-size USB/IP protocol headers as wirestruct
// records. Every multi-byte field travels in network byte order.
//
// The encoders and decoders live in usbip_wire.go, which is generated:
//
//go:generate go run github.com/Alia5/wirestruct/cmd/wirestruct generate .
package usbip

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Alia5/wirestruct/wire"
)

const (
	Version = 0x0111

	// Management commands
	OpReqDevlist = 0x8005
	OpRepDevlist = 0x0005
	OpReqImport  = 0x8003
	OpRepImport  = 0x0003

	// Directions used in HeaderBasic.Dir
	DirOut = 0x00000000
	DirIn  = 0x00000001
)

const (
	PathLen  = 256
	BusIDLen = 32

	// URBHeaderLen is the size of every URB command and reply header.
	URBHeaderLen = 0x30
)

// MgmtHeader is the 8-byte header for management ops (devlist/import).
//
//wirestruct:record
type MgmtHeader struct {
	Version uint16 `wire:"be"`
	Command uint16 `wire:"be"`
	Status  uint32 `wire:"be"`
}

// DevListReplyHeader follows MgmtHeader in OP_REP_DEVLIST.
//
//wirestruct:record
type DevListReplyHeader struct {
	NDevices uint32 `wire:"be"`
}

// ExportedDevice is the fixed part of a device entry in devlist and import
// replies. Strings are NUL padded.
//
//wirestruct:record
type ExportedDevice struct {
	Path   [PathLen]byte
	BusID  [BusIDLen]byte
	BusNum uint32 `wire:"be"`
	DevNum uint32 `wire:"be"`
	Speed  uint32 `wire:"be"`

	IDVendor            uint16 `wire:"be"`
	IDProduct           uint16 `wire:"be"`
	BcdDevice           uint16 `wire:"be"`
	BDeviceClass        uint8
	BDeviceSubClass     uint8
	BDeviceProtocol     uint8
	BConfigurationValue uint8
	BNumConfigurations  uint8
	BNumInterfaces      uint8
}

// InterfaceDesc follows an ExportedDevice in devlist replies, once per
// interface.
//
//wirestruct:record
type InterfaceDesc struct {
	Class    uint8
	SubClass uint8
	Protocol uint8
	_        uint8
}

// HeaderBasic is common to all URB cmds and replies.
//
//wirestruct:record
type HeaderBasic struct {
	Command uint32 `wire:"be"`
	Seqnum  uint32 `wire:"be"`
	Devid   uint32 `wire:"be"`
	Dir     uint32 `wire:"be"`
	Ep      uint32 `wire:"be"`
}

//wirestruct:record identifier=0x00000001 identifier_type=uint32
type CmdSubmit struct {
	Basic             HeaderBasic
	TransferFlags     uint32 `wire:"be"`
	TransferBufferLen uint32 `wire:"be"`
	StartFrame        uint32 `wire:"be"`
	NumberOfPackets   uint32 `wire:"be"`
	Interval          uint32 `wire:"be"`
	Setup             [8]byte
}

//wirestruct:record identifier=0x00000003 identifier_type=uint32
type RetSubmit struct {
	Basic           HeaderBasic
	Status          int32  `wire:"be"`
	ActualLength    uint32 `wire:"be"`
	StartFrame      uint32 `wire:"be"`
	NumberOfPackets uint32 `wire:"be"`
	ErrorCount      uint32 `wire:"be"`
	_               [8]byte
}

//wirestruct:record identifier=0x00000002 identifier_type=uint32
type CmdUnlink struct {
	Basic        HeaderBasic
	UnlinkSeqnum uint32 `wire:"be"`
	_            [24]byte
}

//wirestruct:record identifier=0x00000004 identifier_type=uint32
type RetUnlink struct {
	Basic  HeaderBasic
	Status int32 `wire:"be"`
	_      [24]byte
}

// SetPath stores s NUL padded, truncating at PathLen.
func (d *ExportedDevice) SetPath(s string) { putFixedString(d.Path[:], s) }

// SetBusID stores s NUL padded, truncating at BusIDLen.
func (d *ExportedDevice) SetBusID(s string) { putFixedString(d.BusID[:], s) }

func putFixedString(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}

// WriteDevlist writes the device entry for OP_REP_DEVLIST followed by one
// InterfaceDesc per interface.
func (d *ExportedDevice) WriteDevlist(w io.Writer, ifaces []InterfaceDesc) error {
	if int(d.BNumInterfaces) != len(ifaces) {
		return fmt.Errorf("device declares %d interfaces, got %d", d.BNumInterfaces, len(ifaces))
	}
	buf := make([]byte, ExportedDeviceByteLen+len(ifaces)*InterfaceDescByteLen)
	d.putWire(buf[:ExportedDeviceByteLen])
	for i := range ifaces {
		off := ExportedDeviceByteLen + i*InterfaceDescByteLen
		ifaces[i].putWire(buf[off : off+InterfaceDescByteLen])
	}
	_, err := w.Write(buf)
	return err
}

// ReadURB reads one URB header and decodes it into the record selected by
// its command code.
func ReadURB(r io.Reader) (wire.Record, error) {
	var buf [URBHeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}

	var rec wire.Record
	switch code := binary.BigEndian.Uint32(buf[0:4]); code {
	case CmdSubmitIdentifier:
		rec = &CmdSubmit{}
	case RetSubmitIdentifier:
		rec = &RetSubmit{}
	case CmdUnlinkIdentifier:
		rec = &CmdUnlink{}
	case RetUnlinkIdentifier:
		rec = &RetUnlink{}
	default:
		return nil, fmt.Errorf("unknown URB command 0x%08x", code)
	}
	if err := rec.UnmarshalBinary(buf[:]); err != nil {
		return nil, err
	}
	return rec, nil
}
