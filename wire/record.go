package wire

import (
	"encoding"
	"io"
)

// Encoder is implemented by generated record types.
type Encoder interface {
	ByteLen() int
	// PutBinary encodes into b, which must be exactly ByteLen bytes.
	PutBinary(b []byte) error
}

// Decoder is implemented by generated record types.
type Decoder interface {
	ByteLen() int
	encoding.BinaryUnmarshaler
}

// Record is the full contract of a generated record type.
type Record interface {
	Encoder
	Decoder
	encoding.BinaryMarshaler
}

// Identified is implemented by records carrying an identifier binding.
type Identified[T any] interface {
	Identifier() T
}

// Write encodes r and writes exactly ByteLen bytes to w.
func Write(w io.Writer, r Encoder) error {
	buf := make([]byte, r.ByteLen())
	if err := r.PutBinary(buf); err != nil {
		return err
	}
	_, err := w.Write(buf)
	return err
}

// Read reads exactly ByteLen bytes from rd and decodes them into r.
func Read(rd io.Reader, r Decoder) error {
	buf := make([]byte, r.ByteLen())
	if _, err := io.ReadFull(rd, buf); err != nil {
		return err
	}
	return r.UnmarshalBinary(buf)
}
