package wire

import (
	"encoding/binary"
	"strings"

	"golang.org/x/sys/cpu"
)

// Order is the byte-order directive attached to a field.
type Order uint8

const (
	OrderNone Order = iota
	LittleEndian
	BigEndian
)

func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	default:
		return "none"
	}
}

// ByteOrder returns the encoding/binary order for o, or nil for OrderNone.
func (o Order) ByteOrder() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	default:
		return nil
	}
}

// ParseOrder accepts "le"/"little" and "be"/"big" (case-insensitive).
func ParseOrder(s string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "le", "little":
		return LittleEndian, true
	case "be", "big":
		return BigEndian, true
	default:
		return OrderNone, false
	}
}

// NativeOrder reports the byte order of the host CPU.
func NativeOrder() Order {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}
