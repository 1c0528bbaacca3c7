package schema

import (
	"fmt"

	"github.com/Alia5/wirestruct/wire"
)

// Record is a record value for the interpreted codec: one entry per field in
// declaration order. Scalars hold their exact Go type (uint8, int16, ...),
// byte blocks hold a []byte of the block length, nested records a Record.
type Record []any

// Decode reads a new Record from buf, which must be exactly Len bytes.
func (s *Schema) Decode(buf []byte) (Record, error) {
	if err := wire.CheckLen(s.name, s.length, len(buf)); err != nil {
		return nil, err
	}
	return s.decode(buf), nil
}

func (s *Schema) decode(buf []byte) Record {
	rec := make(Record, len(s.fields))
	for i, f := range s.fields {
		b := buf[f.Offset:f.End()]
		switch {
		case f.Record != nil:
			rec[i] = f.Record.decode(b)
		case f.Width == 0:
			rec[i] = []byte{}
		default:
			rec[i] = f.codec.Get(b)
		}
	}
	return rec
}

// Encode writes rec into buf, which must be exactly Len bytes. The length
// check and every value check happen before buf is touched, so a failed
// Encode leaves buf unchanged.
func (s *Schema) Encode(rec Record, buf []byte) error {
	if err := wire.CheckLen(s.name, s.length, len(buf)); err != nil {
		return err
	}
	tmp := make([]byte, s.length)
	if err := s.encode(rec, tmp); err != nil {
		return err
	}
	copy(buf, tmp)
	return nil
}

// Marshal encodes rec into a new buffer of Len bytes.
func (s *Schema) Marshal(rec Record) ([]byte, error) {
	buf := make([]byte, s.length)
	if err := s.encode(rec, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Schema) encode(rec Record, buf []byte) error {
	if len(rec) != len(s.fields) {
		return fmt.Errorf("%s: %w: record has %d values, schema has %d fields",
			s.name, wire.ErrValueType, len(rec), len(s.fields))
	}

	for i, f := range s.fields {
		b := buf[f.Offset:f.End()]
		switch {
		case f.Record != nil:
			inner, ok := asRecord(rec[i])
			if !ok {
				return fmt.Errorf("%s.%s: %w: want Record, got %T", s.name, f.Label(), wire.ErrValueType, rec[i])
			}
			if err := f.Record.encode(inner, b); err != nil {
				return fmt.Errorf("%s.%s: %w", s.name, f.Label(), err)
			}
		default:
			// Zero-width blocks still go through Put so the value type is checked.
			if err := f.codec.Put(rec[i], b); err != nil {
				return fmt.Errorf("%s.%s: %w", s.name, f.Label(), err)
			}
		}
	}
	return nil
}

func asRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, true
	case []any:
		return Record(r), true
	default:
		return nil, false
	}
}

// Zero returns a Record holding the zero value of every field.
func (s *Schema) Zero() Record {
	rec := make(Record, len(s.fields))
	for i, f := range s.fields {
		if f.Record != nil {
			rec[i] = f.Record.Zero()
			continue
		}
		rec[i] = wire.Zero(f.Scalar)
	}
	return rec
}
