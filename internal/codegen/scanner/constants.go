package scanner

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
)

// collectConstants gathers integer constants declared in the package so that
// array lengths written as [PathLen]byte can be resolved. Constants that
// refer to other constants are resolved by repeated passes.
func collectConstants(files []*ast.File) map[string]int64 {
	pending := map[string]ast.Expr{}
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.CONST {
				continue
			}
			for _, spec := range genDecl.Specs {
				valueSpec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, name := range valueSpec.Names {
					if i < len(valueSpec.Values) {
						pending[name.Name] = valueSpec.Values[i]
					}
				}
			}
		}
	}

	consts := map[string]int64{}
	for progress := true; progress && len(pending) > 0; {
		progress = false
		for name, expr := range pending {
			if v, ok := evalInt(expr, consts); ok {
				consts[name] = v
				delete(pending, name)
				progress = true
			}
		}
	}
	return consts
}

func evalInt(expr ast.Expr, consts map[string]int64) (int64, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return 0, false
		}
		v, err := strconv.ParseInt(e.Value, 0, 64)
		return v, err == nil
	case *ast.Ident:
		v, ok := consts[e.Name]
		return v, ok
	case *ast.ParenExpr:
		return evalInt(e.X, consts)
	case *ast.CallExpr:
		// Conversions like uint16(0x10).
		if len(e.Args) == 1 {
			return evalInt(e.Args[0], consts)
		}
	case *ast.UnaryExpr:
		v, ok := evalInt(e.X, consts)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case token.SUB:
			return -v, true
		case token.ADD:
			return v, true
		}
	case *ast.BinaryExpr:
		l, lok := evalInt(e.X, consts)
		r, rok := evalInt(e.Y, consts)
		if !lok || !rok {
			return 0, false
		}
		switch e.Op {
		case token.ADD:
			return l + r, true
		case token.SUB:
			return l - r, true
		case token.MUL:
			return l * r, true
		case token.QUO:
			if r != 0 {
				return l / r, true
			}
		case token.SHL:
			if r >= 0 && r < 63 {
				return l << r, true
			}
		case token.SHR:
			if r >= 0 && r < 63 {
				return l >> r, true
			}
		case token.OR:
			return l | r, true
		case token.AND:
			return l & r, true
		}
	}
	return 0, false
}

// exprToString renders a type expression the way it is written in source,
// with constant array lengths substituted.
func exprToString(expr ast.Expr, consts map[string]int64) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return exprToString(e.X, consts) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + exprToString(e.X, consts)
	case *ast.ParenExpr:
		return exprToString(e.X, consts)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + exprToString(e.Elt, consts)
		}
		if n, ok := evalInt(e.Len, consts); ok {
			return fmt.Sprintf("[%d]%s", n, exprToString(e.Elt, consts))
		}
		return "[?]" + exprToString(e.Elt, consts)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", exprToString(e.Key, consts), exprToString(e.Value, consts))
	case *ast.StructType:
		return "struct{...}"
	case *ast.InterfaceType:
		return "interface{...}"
	case *ast.FuncType:
		return "func(...)"
	case *ast.ChanType:
		return "chan " + exprToString(e.Value, consts)
	}
	return ""
}
