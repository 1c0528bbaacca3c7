// Package steamdeck declares the Steam Deck (Jupiter/LCD) controller wire
// formats. Codecs are generated into steamdeck_wire.go.
//
//go:generate go run github.com/Alia5/wirestruct/cmd/wirestruct generate .
package steamdeck

// InputState is the client-facing input state for a Steam Deck (Jupiter/LCD)
// controller.
//
// This struct mirrors SDL's `SteamDeckStatePacket_t` fields (minus unPacketNum).
// Buttons holds ulButtonsL in the low and ulButtonsH in the high 32 bits, which
// is the same byte sequence in little endian.
//
//wirestruct:record
type InputState struct {
	Buttons uint64 `wire:"le"`

	LeftPadX  int16 `wire:"le"`
	LeftPadY  int16 `wire:"le"`
	RightPadX int16 `wire:"le"`
	RightPadY int16 `wire:"le"`

	AccelX int16 `wire:"le"`
	AccelY int16 `wire:"le"`
	AccelZ int16 `wire:"le"`

	GyroX int16 `wire:"le"`
	GyroY int16 `wire:"le"`
	GyroZ int16 `wire:"le"`

	GyroQuatW int16 `wire:"le"`
	GyroQuatX int16 `wire:"le"`
	GyroQuatY int16 `wire:"le"`
	GyroQuatZ int16 `wire:"le"`

	TriggerRawL uint16 `wire:"le"`
	TriggerRawR uint16 `wire:"le"`

	LeftStickX int16 `wire:"le"`
	LeftStickY int16 `wire:"le"`

	RightStickX int16 `wire:"le"`
	RightStickY int16 `wire:"le"`

	PressurePadLeft  uint16 `wire:"le"`
	PressurePadRight uint16 `wire:"le"`
}

// HapticState is the client-facing representation of Steam Deck haptic feedback.
// Values are 16-bit "motor" speeds as used by SDL's Steam Deck HID driver.
//
//wirestruct:record
type HapticState struct {
	LeftMotor  uint16 `wire:"le"`
	RightMotor uint16 `wire:"le"`
}

// InReport is the 64-byte interrupt IN report: ValveInReportHeader_t,
// the packet number and the deck state.
//
//wirestruct:record identifier=0x09 identifier_type=uint8
type InReport struct {
	ReportVersion uint16 `wire:"le"`
	Type          uint8
	Length        uint8
	PacketNum     uint32 `wire:"le"`
	State         InputState
	_             [4]byte
}

// BuildInReport encodes st as the packetNum'th deck state report.
func BuildInReport(packetNum uint32, st InputState) []byte {
	r := InReport{
		ReportVersion: ValveInReportMsgVersion,
		Type:          InReportIdentifier,
		Length:        ValveInReportLength,
		PacketNum:     packetNum,
		State:         st,
	}
	b, _ := r.MarshalBinary() // fixed size, cannot fail
	return b
}
