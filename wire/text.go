package wire

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseValue parses the text form of a scalar value into the Go type its
// codec expects. Integers accept any strconv base prefix (0x, 0o, 0b);
// byte blocks take hex digits, optionally separated by spaces or colons,
// and must be exactly the block length.
func ParseValue(s Scalar, text string) (any, error) {
	text = strings.TrimSpace(text)
	if s.Kind == KindBytes {
		b, err := ParseHex(text)
		if err != nil {
			return nil, err
		}
		if len(b) != s.Size {
			return nil, fmt.Errorf("%s needs %d bytes, got %d", s, s.Size, len(b))
		}
		return b, nil
	}

	bits := s.Width() * 8
	if s.Signed() {
		v, err := strconv.ParseInt(text, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", s, err)
		}
		switch s.Kind {
		case KindI8:
			return int8(v), nil
		case KindI16:
			return int16(v), nil
		case KindI32:
			return int32(v), nil
		default:
			return v, nil
		}
	}

	v, err := strconv.ParseUint(text, 0, bits)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s, err)
	}
	switch s.Kind {
	case KindU8:
		return uint8(v), nil
	case KindU16:
		return uint16(v), nil
	case KindU32:
		return uint32(v), nil
	case KindU64:
		return v, nil
	}
	return nil, fmt.Errorf("cannot parse a value of type %s", s)
}

// FormatValue renders a decoded scalar: decimal for integers, spaced hex
// for byte blocks.
func FormatValue(v any) string {
	if b, ok := v.([]byte); ok {
		return FormatHex(b)
	}
	return fmt.Sprint(v)
}

// ParseHex decodes hex digits, ignoring spaces, colons and an optional 0x
// prefix.
func ParseHex(text string) ([]byte, error) {
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', ':':
			return -1
		}
		return r
	}, text)
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return b, nil
}

// FormatHex renders b as space-separated lowercase hex pairs.
func FormatHex(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	return sb.String()
}
