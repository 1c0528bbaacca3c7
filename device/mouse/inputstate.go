// Package mouse declares the 5-button HID mouse report.
//
//go:generate go run github.com/Alia5/wirestruct/cmd/wirestruct generate .
package mouse

// Button bits of InputState.Buttons.
const (
	ButtonLeft    = 0x01
	ButtonRight   = 0x02
	ButtonMiddle  = 0x04
	ButtonBack    = 0x08
	ButtonForward = 0x10

	buttonMask = 0x1f
)

// InputState represents the mouse state used to build a report.
//
//wirestruct:record
type InputState struct {
	// Button bitfield: bit 0=Left, 1=Right, 2=Middle, 3=Back, 4=Forward
	Buttons uint8
	// Delta X/Y: signed 16-bit relative movement
	DX, DY int16 `wire:"le"`
	// Wheel: signed 16-bit vertical scroll
	Wheel int16 `wire:"le"`
	// Pan: signed 16-bit horizontal scroll
	Pan int16 `wire:"le"`
}

// BuildReport encodes an InputState into the 9-byte HID mouse report. Bits
// 5-7 of the button byte are padding and always zero.
func (m *InputState) BuildReport() []byte {
	r := *m
	r.Buttons &= buttonMask
	b := make([]byte, InputStateByteLen)
	r.putWire(b)
	return b
}
