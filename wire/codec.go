package wire

import (
	"encoding/binary"
	"fmt"
)

// FixedCodec reads and writes one field whose byte order is fixed, either
// because the type is order-free or because an OrderedCodec was bound.
// Get and Put expect a slice of exactly Width bytes.
type FixedCodec struct {
	Width int
	Get   func(b []byte) any
	Put   func(v any, b []byte) error
}

// OrderedCodec is the order-parameterized codec of a multi-byte integer.
type OrderedCodec struct {
	Width int
	GetLE func(b []byte) any
	GetBE func(b []byte) any
	PutLE func(v any, b []byte) error
	PutBE func(v any, b []byte) error
}

// Bind selects the LE or BE pair once. OrderNone yields false.
func (c *OrderedCodec) Bind(o Order) (FixedCodec, bool) {
	switch o {
	case LittleEndian:
		return FixedCodec{Width: c.Width, Get: c.GetLE, Put: c.PutLE}, true
	case BigEndian:
		return FixedCodec{Width: c.Width, Get: c.GetBE, Put: c.PutBE}, true
	default:
		return FixedCodec{}, false
	}
}

var (
	u8Codec = FixedCodec{
		Width: 1,
		Get:   func(b []byte) any { return b[0] },
		Put: func(v any, b []byte) error {
			x, ok := v.(uint8)
			if !ok {
				return valueTypeError(x, v)
			}
			b[0] = x
			return nil
		},
	}
	i8Codec = FixedCodec{
		Width: 1,
		Get:   func(b []byte) any { return int8(b[0]) },
		Put: func(v any, b []byte) error {
			x, ok := v.(int8)
			if !ok {
				return valueTypeError(x, v)
			}
			b[0] = byte(x)
			return nil
		},
	}

	u16Codec = newOrdered(2,
		func(bo binary.ByteOrder, b []byte) uint16 { return bo.Uint16(b) },
		func(bo binary.ByteOrder, b []byte, v uint16) { bo.PutUint16(b, v) })
	i16Codec = newOrdered(2,
		func(bo binary.ByteOrder, b []byte) int16 { return int16(bo.Uint16(b)) },
		func(bo binary.ByteOrder, b []byte, v int16) { bo.PutUint16(b, uint16(v)) })
	u32Codec = newOrdered(4,
		func(bo binary.ByteOrder, b []byte) uint32 { return bo.Uint32(b) },
		func(bo binary.ByteOrder, b []byte, v uint32) { bo.PutUint32(b, v) })
	i32Codec = newOrdered(4,
		func(bo binary.ByteOrder, b []byte) int32 { return int32(bo.Uint32(b)) },
		func(bo binary.ByteOrder, b []byte, v int32) { bo.PutUint32(b, uint32(v)) })
	u64Codec = newOrdered(8,
		func(bo binary.ByteOrder, b []byte) uint64 { return bo.Uint64(b) },
		func(bo binary.ByteOrder, b []byte, v uint64) { bo.PutUint64(b, v) })
	i64Codec = newOrdered(8,
		func(bo binary.ByteOrder, b []byte) int64 { return int64(bo.Uint64(b)) },
		func(bo binary.ByteOrder, b []byte, v int64) { bo.PutUint64(b, uint64(v)) })
)

func newOrdered[T any](width int, get func(binary.ByteOrder, []byte) T, put func(binary.ByteOrder, []byte, T)) *OrderedCodec {
	getter := func(bo binary.ByteOrder) func([]byte) any {
		return func(b []byte) any { return get(bo, b) }
	}
	putter := func(bo binary.ByteOrder) func(any, []byte) error {
		return func(v any, b []byte) error {
			x, ok := v.(T)
			if !ok {
				return valueTypeError(x, v)
			}
			put(bo, b, x)
			return nil
		}
	}
	return &OrderedCodec{
		Width: width,
		GetLE: getter(LittleEndian.ByteOrder()),
		GetBE: getter(BigEndian.ByteOrder()),
		PutLE: putter(LittleEndian.ByteOrder()),
		PutBE: putter(BigEndian.ByteOrder()),
	}
}

func bytesCodec(n int) FixedCodec {
	return FixedCodec{
		Width: n,
		Get: func(b []byte) any {
			out := make([]byte, n)
			copy(out, b)
			return out
		},
		Put: func(v any, b []byte) error {
			x, ok := v.([]byte)
			if !ok {
				return valueTypeError(x, v)
			}
			if len(x) != n {
				return fmt.Errorf("%w: want %d-byte block, got %d bytes", ErrValueType, n, len(x))
			}
			copy(b, x)
			return nil
		},
	}
}

// CodecFor looks up the codec of s. Exactly one of the results is usable:
// order-free types return a FixedCodec and a nil OrderedCodec, multi-byte
// integers return a zero FixedCodec and their OrderedCodec.
func CodecFor(s Scalar) (FixedCodec, *OrderedCodec) {
	switch s.Kind {
	case KindU8:
		return u8Codec, nil
	case KindI8:
		return i8Codec, nil
	case KindU16:
		return FixedCodec{}, u16Codec
	case KindI16:
		return FixedCodec{}, i16Codec
	case KindU32:
		return FixedCodec{}, u32Codec
	case KindI32:
		return FixedCodec{}, i32Codec
	case KindU64:
		return FixedCodec{}, u64Codec
	case KindI64:
		return FixedCodec{}, i64Codec
	case KindBytes:
		return bytesCodec(s.Size), nil
	default:
		return FixedCodec{}, nil
	}
}

// Zero returns the zero value the codec of s produces and accepts.
func Zero(s Scalar) any {
	switch s.Kind {
	case KindU8:
		return uint8(0)
	case KindI8:
		return int8(0)
	case KindU16:
		return uint16(0)
	case KindI16:
		return int16(0)
	case KindU32:
		return uint32(0)
	case KindI32:
		return int32(0)
	case KindU64:
		return uint64(0)
	case KindI64:
		return int64(0)
	case KindBytes:
		return make([]byte, s.Size)
	default:
		return nil
	}
}
