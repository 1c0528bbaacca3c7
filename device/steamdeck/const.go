package steamdeck

const (
	ValveUSBVID = 0x28DE
	JupiterPID  = 0x1205
)

// Valve/Steam Deck input report (interrupt IN) constants.
//
// SDL`controller_structs.h`.
const (
	ValveInReportMsgVersion uint16 = 0x0001

	ValveInReportTypeControllerDeckState uint8 = 0x09
	ValveInReportLength                  uint8 = 64
)

// Steam Deck button bitmasks.
//
// Values from SDL's `SDL_hidapi_steamdeck.c`.
const (
	ButtonR2 uint64 = 0x00000001
	ButtonL2 uint64 = 0x00000002
	ButtonRB uint64 = 0x00000004
	ButtonLB uint64 = 0x00000008

	ButtonY uint64 = 0x00000010
	ButtonB uint64 = 0x00000020
	ButtonX uint64 = 0x00000040
	ButtonA uint64 = 0x00000080

	ButtonDPadUp    uint64 = 0x00000100
	ButtonDPadRight uint64 = 0x00000200
	ButtonDPadLeft  uint64 = 0x00000400
	ButtonDPadDown  uint64 = 0x00000800

	ButtonView  uint64 = 0x00001000
	ButtonSteam uint64 = 0x00002000
	ButtonMenu  uint64 = 0x00004000

	ButtonL5 uint64 = 0x00008000
	ButtonR5 uint64 = 0x00010000

	ButtonLeftPadClick  uint64 = 0x00020000
	ButtonRightPadClick uint64 = 0x00040000

	ButtonL3 uint64 = 0x00400000
	ButtonR3 uint64 = 0x04000000

	// High 32-bit button flags (ulButtonsH) shifted into the uint64.
	ButtonL4  uint64 = 0x00000200 << 32
	ButtonR4  uint64 = 0x00000400 << 32
	ButtonQAM uint64 = 0x00040000 << 32
)
