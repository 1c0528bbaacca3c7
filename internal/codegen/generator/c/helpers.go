package cgen

import (
	"fmt"
	"strings"

	"github.com/Alia5/wirestruct/internal/codegen/common"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/schema"
	"github.com/Alia5/wirestruct/wire"
)

// cType maps a scalar to its <stdint.h> spelling.
func cType(s wire.Scalar) string {
	switch s.Kind {
	case wire.KindU8, wire.KindBytes:
		return "uint8_t"
	case wire.KindI8:
		return "int8_t"
	case wire.KindU16:
		return "uint16_t"
	case wire.KindI16:
		return "int16_t"
	case wire.KindU32:
		return "uint32_t"
	case wire.KindI32:
		return "int32_t"
	case wire.KindU64:
		return "uint64_t"
	case wire.KindI64:
		return "int64_t"
	}
	return "void"
}

type names struct {
	pkg string
}

func (n names) typeName(record string) string {
	return fmt.Sprintf("%s_%s_t", n.pkg, common.ToSnakeCase(record))
}

func (n names) funcPrefix(record string) string {
	return fmt.Sprintf("%s_%s", n.pkg, common.ToSnakeCase(record))
}

func (n names) macro(record, suffix string) string {
	return strings.ToUpper(n.funcPrefix(record)) + "_" + suffix
}

type recordView struct {
	Name       string
	Type       string
	Func       string
	LenMacro   string
	Digest     string
	DigestName string
	Identifier string
	Members    []string
	Put        []string
	Get        []string
}

func newRecordView(n names, rec *scanner.Record) recordView {
	v := recordView{
		Name:       rec.Name,
		Type:       n.typeName(rec.Name),
		Func:       n.funcPrefix(rec.Name),
		LenMacro:   n.macro(rec.Name, "BYTE_LEN"),
		Digest:     rec.Schema.Digest(),
		DigestName: n.macro(rec.Name, "LAYOUT_DIGEST"),
	}
	if ident, ok := rec.Schema.Identifier(); ok {
		if sc, ok := wire.LookupScalar(ident.Type); ok && sc.IsInteger() {
			v.Identifier = fmt.Sprintf("#define %s ((%s)%s)", n.macro(rec.Name, "IDENTIFIER"), cType(sc), ident.Value)
		} else {
			v.Identifier = fmt.Sprintf("/* identifier: %s (Go type %s) */", ident.Value, ident.Type)
		}
	}

	for i, f := range rec.Schema.Fields() {
		src := rec.Fields[i]
		if f.Width == 0 {
			continue
		}
		if src.Blank() {
			v.Put = append(v.Put, fmt.Sprintf("memset(b + %d, 0, %d);", f.Offset, f.Width))
			continue
		}

		member := common.CIdent(src.GoName)
		v.Members = append(v.Members, memberDecl(n, f, member))
		put, get := fieldStmts(n, f, "x->"+member)
		v.Put = append(v.Put, put...)
		v.Get = append(v.Get, get...)
	}
	if len(v.Members) == 0 {
		// C forbids empty structs.
		v.Members = append(v.Members, "uint8_t unused_;")
	}
	return v
}

func memberDecl(n names, f schema.Field, member string) string {
	switch {
	case f.Record != nil:
		return fmt.Sprintf("%s %s;", n.typeName(f.Record.Name()), member)
	case f.Scalar.Kind == wire.KindBytes:
		return fmt.Sprintf("uint8_t %s[%d];", member, f.Width)
	}
	return fmt.Sprintf("%s %s;", cType(f.Scalar), member)
}

// fieldStmts emits explicit shifts so the output is independent of the
// host byte order.
func fieldStmts(n names, f schema.Field, x string) (put, get []string) {
	if f.Record != nil {
		fn := n.funcPrefix(f.Record.Name())
		return []string{fmt.Sprintf("%s_put(&%s, b + %d);", fn, x, f.Offset)},
			[]string{fmt.Sprintf("%s_get(&%s, b + %d);", fn, x, f.Offset)}
	}

	s := f.Scalar
	switch s.Kind {
	case wire.KindBytes:
		return []string{fmt.Sprintf("memcpy(b + %d, %s, %d);", f.Offset, x, f.Width)},
			[]string{fmt.Sprintf("memcpy(%s, b + %d, %d);", x, f.Offset, f.Width)}
	case wire.KindU8:
		return []string{fmt.Sprintf("b[%d] = %s;", f.Offset, x)},
			[]string{fmt.Sprintf("%s = b[%d];", x, f.Offset)}
	case wire.KindI8:
		return []string{fmt.Sprintf("b[%d] = (uint8_t)%s;", f.Offset, x)},
			[]string{fmt.Sprintf("%s = (int8_t)b[%d];", x, f.Offset)}
	}

	w := s.Width()
	utype := fmt.Sprintf("uint%d_t", w*8)
	shift := func(i int) int {
		if f.Order == wire.BigEndian {
			return 8 * (w - 1 - i)
		}
		return 8 * i
	}

	for i := 0; i < w; i++ {
		sh := shift(i)
		if sh == 0 {
			put = append(put, fmt.Sprintf("b[%d] = (uint8_t)((%s)%s);", f.Offset+i, utype, x))
		} else {
			put = append(put, fmt.Sprintf("b[%d] = (uint8_t)((%s)%s >> %d);", f.Offset+i, utype, x, sh))
		}
	}

	terms := make([]string, w)
	for i := 0; i < w; i++ {
		sh := shift(i)
		if sh == 0 {
			terms[i] = fmt.Sprintf("(%s)b[%d]", utype, f.Offset+i)
		} else {
			terms[i] = fmt.Sprintf("((%s)b[%d] << %d)", utype, f.Offset+i, sh)
		}
	}
	get = []string{fmt.Sprintf("%s = (%s)(%s);", x, cType(s), strings.Join(terms, " | "))}
	return put, get
}
