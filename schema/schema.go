package schema

import (
	"errors"
)

// Schema is a compiled record layout. It is immutable after Build and safe
// for concurrent use.
type Schema struct {
	name   string
	fields []Field
	length int
	ident  *Identifier
}

// Build resolves every declared field, then lays the fields out back to back
// in declaration order with no padding. All field errors are reported
// together; on error no schema is returned.
func Build(name string, decls []FieldDecl, opts ...Option) (*Schema, error) {
	if len(decls) == 0 {
		return nil, recordError(KindNoFields, name, "(de)serializing a record without fields makes no sense")
	}

	s := &Schema{name: name}

	var errs []error
	fields := make([]Field, 0, len(decls))
	for i, d := range decls {
		f, err := Resolve(name, i, d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields = append(fields, f)
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			errs = append(errs, err)
		}
	}

	switch len(errs) {
	case 0:
	case 1:
		return nil, errs[0]
	default:
		return nil, errors.Join(errs...)
	}

	offset := 0
	for i := range fields {
		fields[i].Offset = offset
		offset += fields[i].Width
	}

	s.fields = fields
	s.length = offset
	return s, nil
}

// MustBuild is Build for package-level schemas; it panics on error.
func MustBuild(name string, decls []FieldDecl, opts ...Option) *Schema {
	s, err := Build(name, decls, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Len is the total byte length: the sum of all field widths.
func (s *Schema) Len() int { return s.length }

// Field returns the i-th field in declaration order.
func (s *Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the resolved fields.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Range returns the half-open byte range [start, end) of field i.
func (s *Schema) Range(i int) (start, end int) {
	f := s.fields[i]
	return f.Offset, f.End()
}

// Identifier returns the identifier binding, if any.
func (s *Schema) Identifier() (Identifier, bool) {
	if s.ident == nil {
		return Identifier{}, false
	}
	return *s.ident, true
}
