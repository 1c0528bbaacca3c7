package golang

import (
	"fmt"
	"strings"

	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/schema"
	"github.com/Alia5/wirestruct/wire"
)

type recordView struct {
	Name       string
	Len        int
	Digest     string
	Layout     []string
	Identifier *schema.Identifier
	Put        []string
	Get        []string
}

func newRecordView(rec *scanner.Record) recordView {
	v := recordView{
		Name:   rec.Name,
		Len:    rec.Schema.Len(),
		Digest: rec.Schema.Digest(),
	}
	if ident, ok := rec.Schema.Identifier(); ok {
		v.Identifier = &ident
	}

	v.Layout = append(v.Layout, "off  len  field")
	for i, f := range rec.Schema.Fields() {
		src := rec.Fields[i]
		v.Layout = append(v.Layout, fmt.Sprintf("%3d  %3d  %s %s", f.Offset, f.Width, src.GoName, layoutType(f)))

		if f.Width == 0 {
			continue
		}
		if src.Blank() {
			// clear needs a slice even for a single byte.
			v.Put = append(v.Put, fmt.Sprintf("clear(b[%d:%d])", f.Offset, f.End()))
			continue
		}
		put, get := fieldStmts(f, src)
		v.Put = append(v.Put, put)
		v.Get = append(v.Get, get)
	}
	return v
}

func layoutType(f schema.Field) string {
	if f.Record != nil {
		return "(" + f.Record.Name() + ")"
	}
	if f.Order != wire.OrderNone {
		return f.Scalar.String() + "/" + f.Order.String()
	}
	return f.Scalar.String()
}

func span(f schema.Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("b[%d]", f.Offset)
	}
	return fmt.Sprintf("b[%d:%d]", f.Offset, f.End())
}

// natural reports whether a value of goType needs no conversion to or from
// the scalar's own Go type.
func natural(goType string, s wire.Scalar) bool {
	if goType == s.GoType() {
		return true
	}
	return goType == "byte" && s.Kind == wire.KindU8
}

func orderIdent(o wire.Order) string {
	if o == wire.BigEndian {
		return "binary.BigEndian"
	}
	return "binary.LittleEndian"
}

// fieldStmts returns the encode and decode statement for one field.
func fieldStmts(f schema.Field, src scanner.Field) (put, get string) {
	x := "x." + src.GoName

	if f.Record != nil {
		return fmt.Sprintf("%s.putWire(%s)", x, span(f)),
			fmt.Sprintf("%s.getWire(%s)", x, span(f))
	}

	s := f.Scalar
	conv := func(typ, expr string) string {
		return typ + "(" + expr + ")"
	}

	switch s.Kind {
	case wire.KindBytes:
		return fmt.Sprintf("copy(%s, %s[:])", span(f), x),
			fmt.Sprintf("copy(%s[:], %s)", x, span(f))

	case wire.KindU8:
		put = fmt.Sprintf("%s = %s", span(f), x)
		get = fmt.Sprintf("%s = %s", x, span(f))
		if !natural(src.GoType, s) {
			put = fmt.Sprintf("%s = %s", span(f), conv("byte", x))
			get = fmt.Sprintf("%s = %s", x, conv(src.GoType, span(f)))
		}
		return put, get

	case wire.KindI8:
		return fmt.Sprintf("%s = %s", span(f), conv("byte", x)),
			fmt.Sprintf("%s = %s", x, conv(src.GoType, span(f)))
	}

	bits := s.Width() * 8
	utype := fmt.Sprintf("uint%d", bits)
	order := orderIdent(f.Order)

	val := x
	if src.GoType != utype {
		val = conv(utype, x)
	}
	put = fmt.Sprintf("%s.PutUint%d(%s, %s)", order, bits, span(f), val)

	read := fmt.Sprintf("%s.Uint%d(%s)", order, bits, span(f))
	if src.GoType != utype {
		read = conv(src.GoType, read)
	}
	get = fmt.Sprintf("%s = %s", x, read)
	return put, get
}

func needsBinary(views []recordView) bool {
	for _, v := range views {
		for _, stmt := range v.Put {
			if strings.HasPrefix(stmt, "binary.") {
				return true
			}
		}
	}
	return false
}
