package schema

import (
	"strings"

	"github.com/Alia5/wirestruct/wire"
)

// FieldDecl is a field as declared: a name (empty for positional fields), a
// type, and the raw attribute list. Exactly one of Scalar and Record is set.
type FieldDecl struct {
	Name   string
	Scalar wire.Scalar
	Record *Schema
	Attrs  []string
}

// ScalarField declares a primitive field.
func ScalarField(name string, s wire.Scalar, attrs ...string) FieldDecl {
	return FieldDecl{Name: name, Scalar: s, Attrs: attrs}
}

// RecordField declares a field whose type is another record.
func RecordField(name string, rec *Schema, attrs ...string) FieldDecl {
	return FieldDecl{Name: name, Record: rec, Attrs: attrs}
}

// Field is a resolved field with its place in the buffer.
type Field struct {
	Index  int
	Name   string
	Scalar wire.Scalar
	Record *Schema
	// Order is OrderNone for order-free types.
	Order wire.Order
	// IgnoredOrder holds a marker that was present on an order-free type.
	IgnoredOrder wire.Order
	Offset       int
	Width        int

	codec wire.FixedCodec
}

// End is the exclusive end offset of the field.
func (f Field) End() int {
	return f.Offset + f.Width
}

// Label is the field name, or "#<index>" for positional fields.
func (f Field) Label() string {
	return label(f.Index, f.Name)
}

// TypeName is the wire token of a scalar or the name of a nested record.
func (f Field) TypeName() string {
	if f.Record != nil {
		return f.Record.Name()
	}
	return f.Scalar.String()
}

// Resolve validates one declared field and binds its codec.
//
// Order markers are scanned first, so two different markers fail for every
// type. A marker on an order-free type (single byte, byte block, nested
// record) is accepted and ignored; it is kept in IgnoredOrder.
func Resolve(record string, index int, d FieldDecl) (Field, error) {
	order := wire.OrderNone
	for _, attr := range d.Attrs {
		attr = strings.TrimSpace(attr)
		if attr == "" {
			continue
		}
		o, ok := wire.ParseOrder(attr)
		if !ok {
			return Field{}, fieldError(KindUnknownAttribute, record, index, d.Name, "unknown attribute %q", attr)
		}
		if order != wire.OrderNone && order != o {
			return Field{}, fieldError(KindConflictingByteOrder, record, index, d.Name,
				"conflicting byte order: both little and big endian specified")
		}
		order = o
	}

	f := Field{Index: index, Name: d.Name}

	switch {
	case d.Record != nil && d.Scalar.Kind != wire.KindInvalid:
		return Field{}, fieldError(KindUnknownType, record, index, d.Name, "field declares both a scalar and a record type")
	case d.Record != nil:
		f.Record = d.Record
		f.Width = d.Record.Len()
		f.IgnoredOrder = order
		return f, nil
	case !d.Scalar.Valid():
		return Field{}, fieldError(KindUnknownType, record, index, d.Name, "unsupported field type")
	}

	f.Scalar = d.Scalar
	f.Width = d.Scalar.Width()

	fixed, ordered := wire.CodecFor(d.Scalar)
	if ordered == nil {
		f.codec = fixed
		f.IgnoredOrder = order
		return f, nil
	}

	codec, ok := ordered.Bind(order)
	if !ok {
		return Field{}, fieldError(KindMissingByteOrder, record, index, d.Name,
			"%s has multiple bytes and needs a byte order (le or be)", d.Scalar)
	}
	f.codec = codec
	f.Order = order
	return f, nil
}
