package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a primitive wire type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindU8
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindBytes
)

type kindInfo struct {
	token  string // wire token, e.g. "u16"
	goType string
	width  int
	signed bool
}

var kinds = [...]kindInfo{
	KindU8:    {"u8", "uint8", 1, false},
	KindI8:    {"i8", "int8", 1, true},
	KindU16:   {"u16", "uint16", 2, false},
	KindI16:   {"i16", "int16", 2, true},
	KindU32:   {"u32", "uint32", 4, false},
	KindI32:   {"i32", "int32", 4, true},
	KindU64:   {"u64", "uint64", 8, false},
	KindI64:   {"i64", "int64", 8, true},
	KindBytes: {"bytes", "byte", 0, false},
}

func (k Kind) String() string {
	if k == KindInvalid || int(k) >= len(kinds) {
		return "invalid"
	}
	return kinds[k].token
}

// Scalar describes a fixed-width primitive: an integer or an opaque byte block.
type Scalar struct {
	Kind Kind
	// Size is the block length for KindBytes and unused otherwise.
	Size int
}

var (
	U8  = Scalar{Kind: KindU8}
	I8  = Scalar{Kind: KindI8}
	U16 = Scalar{Kind: KindU16}
	I16 = Scalar{Kind: KindI16}
	U32 = Scalar{Kind: KindU32}
	I32 = Scalar{Kind: KindI32}
	U64 = Scalar{Kind: KindU64}
	I64 = Scalar{Kind: KindI64}
)

// Bytes returns the descriptor of an n-byte opaque block.
func Bytes(n int) Scalar {
	return Scalar{Kind: KindBytes, Size: n}
}

// Valid reports whether s names a supported primitive.
func (s Scalar) Valid() bool {
	if s.Kind == KindBytes {
		return s.Size >= 0
	}
	return s.Kind > KindInvalid && s.Kind < KindBytes
}

// Width is the number of bytes s occupies on the wire.
func (s Scalar) Width() int {
	if s.Kind == KindBytes {
		return s.Size
	}
	if !s.Valid() {
		return 0
	}
	return kinds[s.Kind].width
}

func (s Scalar) Signed() bool {
	return s.Valid() && kinds[s.Kind].signed
}

// IsInteger is false for byte blocks.
func (s Scalar) IsInteger() bool {
	return s.Valid() && s.Kind != KindBytes
}

// OrderRequired reports whether a field of this type needs an explicit
// byte-order directive. Only multi-byte integers do.
func (s Scalar) OrderRequired() bool {
	return s.IsInteger() && s.Width() > 1
}

// GoType is the Go spelling of the type, e.g. "uint16" or "[6]byte".
func (s Scalar) GoType() string {
	if s.Kind == KindBytes {
		return fmt.Sprintf("[%d]byte", s.Size)
	}
	if !s.Valid() {
		return "invalid"
	}
	return kinds[s.Kind].goType
}

// String is the wire token, e.g. "u16" or "u8*6".
func (s Scalar) String() string {
	if s.Kind == KindBytes {
		return fmt.Sprintf("u8*%d", s.Size)
	}
	return s.Kind.String()
}

// LookupScalar maps a Go type spelling to its descriptor. Accepted spellings
// are the sized integer types, byte, and fixed arrays [N]byte / [N]uint8.
func LookupScalar(goType string) (Scalar, bool) {
	goType = strings.TrimSpace(goType)
	switch goType {
	case "byte", "uint8":
		return U8, true
	case "int8":
		return I8, true
	case "uint16":
		return U16, true
	case "int16":
		return I16, true
	case "uint32":
		return U32, true
	case "int32":
		return I32, true
	case "uint64":
		return U64, true
	case "int64":
		return I64, true
	}

	if !strings.HasPrefix(goType, "[") {
		return Scalar{}, false
	}
	end := strings.IndexByte(goType, ']')
	if end < 0 {
		return Scalar{}, false
	}
	elem := goType[end+1:]
	if elem != "byte" && elem != "uint8" {
		return Scalar{}, false
	}
	n, err := strconv.ParseUint(goType[1:end], 0, 31)
	if err != nil {
		return Scalar{}, false
	}
	return Bytes(int(n)), true
}
