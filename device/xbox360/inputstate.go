// Package xbox360 declares the Xbox 360 pad wire formats. Codecs are in
// xbox360_wire.go.
//
//go:generate go run github.com/Alia5/wirestruct/cmd/wirestruct generate .
package xbox360

// InputState represents the controller state used to build a report.
// Values are more or less XInput's C API.
//
//wirestruct:record
type InputState struct {
	// Button bitfield (lower 16 bits used typically), higher bits reserved
	Buttons uint32 `wire:"le"`
	// Triggers: 0-255
	LT, RT uint8
	// Sticks: signed 16-bit little endian values
	LX, LY   int16 `wire:"le"`
	RX, RY   int16 `wire:"le"`
	Reserved [6]byte
}

//wirestruct:record
type GuitarHeroDrumsInputState struct {
	// Button bitfield (lower 16 bits used typically), higher bits reserved
	Buttons uint32 `wire:"le"`
	_, _    uint8

	// Drum pad velocities, unsigned 7 bit, based on MIDI
	GreenVelocity  uint8
	RedVelocity    uint8
	YellowVelocity uint8
	BlueVelocity   uint8
	OrangeVelocity uint8
	KickVelocity   uint8
	// MIDI packet, used for unrecognised midi notes received by the drums
	MidiPacket [6]byte
}

// XRumbleState is the rumble/motor command sent from device to client.
//
//wirestruct:record
type XRumbleState struct {
	LeftMotor  uint8
	RightMotor uint8
}

// Report is the 20-byte Xbox 360 wired USB input report.
//
//wirestruct:record
type Report struct {
	ReportID uint8
	// Payload size, always ReportByteLen
	Size     uint8
	Buttons  uint16 `wire:"le"`
	LT, RT   uint8
	LX, LY   int16 `wire:"le"`
	RX, RY   int16 `wire:"le"`
	Reserved [6]byte
}

// Report converts the input state into a USB input report. The upper 16
// button bits are not representable and are dropped. Reserved is passed
// through unchanged.
func (x *InputState) Report() Report {
	return Report{
		Size:     ReportByteLen,
		Buttons:  uint16(x.Buttons & 0xffff),
		LT:       x.LT,
		RT:       x.RT,
		LX:       x.LX,
		LY:       x.LY,
		RX:       x.RX,
		RY:       x.RY,
		Reserved: x.Reserved,
	}
}

// BuildReport encodes an InputState into the 20-byte Xbox 360 wired USB
// input report.
func (x *InputState) BuildReport() []byte {
	r := x.Report()
	b := make([]byte, ReportByteLen)
	r.putWire(b)
	return b
}
