package scanner

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/Alia5/wirestruct/schema"
	"github.com/Alia5/wirestruct/wire"
)

// GeneratedSuffix marks files written by the Go generator. They are skipped
// when scanning so a stale output never feeds back into a run.
const GeneratedSuffix = "_wire.go"

// Package is the scan result for one Go package directory.
type Package struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
	// Records are ordered so that nested records precede their users.
	Records []*Record `json:"records"`
}

// Record is one struct carrying the record directive.
type Record struct {
	Name      string         `json:"name"`
	File      string         `json:"file"`
	Line      int            `json:"line"`
	Directive Directive      `json:"directive"`
	Fields    []Field        `json:"fields"`
	Schema    *schema.Schema `json:"-"`
}

// Field is a struct field as written in source.
type Field struct {
	// GoName is the field name, "_" for blank fields.
	GoName string `json:"goName"`
	// GoType is the type as written, with constant array lengths resolved.
	GoType string `json:"goType"`
	// Record names the nested record type, "" for scalars.
	Record string   `json:"record,omitempty"`
	Attrs  []string `json:"attrs,omitempty"`
}

// Blank reports whether the field is a positional "_" field.
func (f Field) Blank() bool { return f.GoName == "_" }

// Record returns the record with the given name, or nil.
func (p *Package) Record(name string) *Record {
	for _, r := range p.Records {
		if r.Name == name {
			return r
		}
	}
	return nil
}

type structDecl struct {
	name      string
	file      string
	pos       token.Position
	spec      *ast.StructType
	directive string
	marked    bool
}

const (
	unvisited = iota
	inProgress
	resolved
)

type pkgScan struct {
	fset    *token.FileSet
	consts  map[string]int64
	named   map[string]ast.Expr // non-struct named types
	structs map[string]*structDecl
	order   []string

	state   map[string]int
	done    map[string]*Record
	records []*Record
	errs    []error
}

// ScanPackage parses every non-test Go file in dir and compiles each struct
// marked with //wirestruct:record into a schema. Errors from all records are
// collected and returned together.
func ScanPackage(dir string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var (
		files   []*ast.File
		names   []string
		pkgName string
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, GeneratedSuffix) {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if pkgName == "" {
			pkgName = file.Name.Name
		} else if file.Name.Name != pkgName {
			return nil, fmt.Errorf("%s: found packages %s and %s", dir, pkgName, file.Name.Name)
		}
		files = append(files, file)
		names = append(names, name)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no Go source files", dir)
	}

	s := &pkgScan{
		fset:    fset,
		consts:  collectConstants(files),
		named:   map[string]ast.Expr{},
		structs: map[string]*structDecl{},
		state:   map[string]int{},
		done:    map[string]*Record{},
	}
	for i, file := range files {
		s.collectTypes(file, names[i])
	}

	for _, name := range s.order {
		if s.structs[name].marked {
			s.resolve(name)
		}
	}
	if len(s.errs) > 0 {
		return nil, errors.Join(s.errs...)
	}

	return &Package{Name: pkgName, Dir: dir, Records: s.records}, nil
}

func (s *pkgScan) collectTypes(file *ast.File, fileName string) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.TypeParams != nil {
				continue
			}
			st, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				if typeSpec.Assign == token.NoPos {
					s.named[typeSpec.Name.Name] = typeSpec.Type
				}
				continue
			}

			// The marker sits on the TypeSpec in grouped declarations and
			// on the GenDecl otherwise.
			docs := []*ast.CommentGroup{typeSpec.Doc}
			if len(genDecl.Specs) == 1 {
				docs = append(docs, genDecl.Doc)
			}
			args, marked := findDirective(docs...)

			s.structs[typeSpec.Name.Name] = &structDecl{
				name:      typeSpec.Name.Name,
				file:      fileName,
				pos:       s.fset.Position(typeSpec.Pos()),
				spec:      st,
				directive: args,
				marked:    marked,
			}
			s.order = append(s.order, typeSpec.Name.Name)
		}
	}
}

// resolve compiles a marked struct after its nested records, depth first.
// It returns nil if the record or one of its nested records failed; each
// failure is recorded once in s.errs.
func (s *pkgScan) resolve(name string) *Record {
	if s.state[name] != unvisited {
		return s.done[name]
	}
	s.state[name] = inProgress
	rec, err := s.compile(s.structs[name])
	s.state[name] = resolved
	if err != nil {
		if !errors.Is(err, errNestedFailed) {
			s.errs = append(s.errs, err)
		}
		return nil
	}
	s.done[name] = rec
	s.records = append(s.records, rec)
	return rec
}

// errNestedFailed stands in for a nested record whose own error was
// already reported.
var errNestedFailed = errors.New("nested record failed")

type pendingField struct {
	index int
	decl  schema.FieldDecl
}

func (s *pkgScan) compile(sd *structDecl) (*Record, error) {
	wrap := func(err error) error {
		return fmt.Errorf("%s:%d: %w", sd.file, sd.pos.Line, err)
	}

	directive, err := parseDirective(sd.directive)
	if err != nil {
		return nil, wrap(&schema.Error{
			Kind:   schema.KindUnknownAttribute,
			Record: sd.name,
			Index:  -1,
			Detail: err.Error(),
		})
	}

	rec := &Record{
		Name:      sd.name,
		File:      sd.file,
		Line:      sd.pos.Line,
		Directive: directive,
	}

	var (
		errs    []error
		decls   []pendingField
		nestErr bool
	)
	index := 0
	for _, astField := range sd.spec.Fields.List {
		var attrs []string
		if astField.Tag != nil {
			tag := strings.Trim(astField.Tag.Value, "`")
			if v, ok := reflect.StructTag(tag).Lookup("wire"); ok {
				for _, a := range strings.Split(v, ",") {
					if a = strings.TrimSpace(a); a != "" {
						attrs = append(attrs, a)
					}
				}
			}
		}

		goType := exprToString(astField.Type, s.consts)

		if len(astField.Names) == 0 {
			errs = append(errs, &schema.Error{
				Kind:   schema.KindUnknownType,
				Record: sd.name,
				Field:  fmt.Sprintf("#%d", index),
				Index:  index,
				Detail: fmt.Sprintf("embedded field %s is not supported", goType),
			})
			index++
			continue
		}

		for _, ident := range astField.Names {
			f := Field{GoName: ident.Name, GoType: goType, Attrs: attrs}
			declName := ident.Name
			if f.Blank() {
				declName = ""
			}

			decl, err := s.fieldDecl(sd.name, index, declName, astField.Type, attrs)
			switch {
			case errors.Is(err, errNestedFailed):
				nestErr = true
			case err != nil:
				errs = append(errs, err)
			default:
				if decl.Record != nil {
					f.Record = decl.Record.Name()
				}
				decls = append(decls, pendingField{index: index, decl: decl})
			}
			rec.Fields = append(rec.Fields, f)
			index++
		}
	}

	if nestErr && len(errs) == 0 {
		return nil, errNestedFailed
	}

	if len(errs) > 0 {
		// Type errors stop Build, but the remaining fields are still
		// checked so every problem surfaces in one run.
		for _, p := range decls {
			if _, err := schema.Resolve(sd.name, p.index, p.decl); err != nil {
				errs = append(errs, err)
			}
		}
		for i, err := range errs {
			errs[i] = wrap(err)
		}
		return nil, errors.Join(errs...)
	}

	fieldDecls := make([]schema.FieldDecl, len(decls))
	for i, p := range decls {
		fieldDecls[i] = p.decl
	}
	sch, err := schema.Build(sd.name, fieldDecls,
		schema.WithIdentifier(directive.Identifier, directive.IdentifierType))
	if err != nil {
		return nil, wrap(err)
	}
	rec.Schema = sch
	return rec, nil
}

func (s *pkgScan) fieldDecl(record string, index int, name string, expr ast.Expr, attrs []string) (schema.FieldDecl, error) {
	typeErr := func(format string, args ...any) error {
		return &schema.Error{
			Kind:   schema.KindUnknownType,
			Record: record,
			Field:  fieldLabel(index, name),
			Index:  index,
			Detail: fmt.Sprintf(format, args...),
		}
	}

	switch e := expr.(type) {
	case *ast.Ident:
		if sc, ok := wire.LookupScalar(e.Name); ok {
			return schema.ScalarField(name, sc, attrs...), nil
		}
		if sd, ok := s.structs[e.Name]; ok {
			if !sd.marked {
				return schema.FieldDecl{}, typeErr("%s is a struct without a %s directive", e.Name, directivePrefix)
			}
			if s.state[e.Name] == inProgress {
				return schema.FieldDecl{}, &schema.Error{
					Kind:   schema.KindRecursiveRecord,
					Record: record,
					Field:  fieldLabel(index, name),
					Index:  index,
					Detail: fmt.Sprintf("%s contains itself through this field", e.Name),
				}
			}
			nested := s.resolve(e.Name)
			if nested == nil {
				return schema.FieldDecl{}, errNestedFailed
			}
			return schema.RecordField(name, nested.Schema, attrs...), nil
		}
		if sc, ok := s.namedScalar(e.Name, 0); ok {
			return schema.ScalarField(name, sc, attrs...), nil
		}
		return schema.FieldDecl{}, typeErr("unsupported type %s", e.Name)
	case *ast.ArrayType:
		goType := exprToString(e, s.consts)
		if sc, ok := wire.LookupScalar(goType); ok {
			return schema.ScalarField(name, sc, attrs...), nil
		}
		if e.Len == nil {
			return schema.FieldDecl{}, typeErr("slice %s has no fixed width", goType)
		}
		return schema.FieldDecl{}, typeErr("unsupported array type %s (only byte arrays)", goType)
	case *ast.SelectorExpr:
		return schema.FieldDecl{}, typeErr("type %s is from another package", exprToString(e, s.consts))
	default:
		return schema.FieldDecl{}, typeErr("unsupported type %s", exprToString(expr, s.consts))
	}
}

// namedScalar follows `type X Y` chains down to a wire scalar.
func (s *pkgScan) namedScalar(name string, depth int) (wire.Scalar, bool) {
	if depth > 16 {
		return wire.Scalar{}, false
	}
	expr, ok := s.named[name]
	if !ok {
		return wire.Scalar{}, false
	}
	if ident, ok := expr.(*ast.Ident); ok {
		if sc, ok := wire.LookupScalar(ident.Name); ok {
			return sc, true
		}
		return s.namedScalar(ident.Name, depth+1)
	}
	return wire.LookupScalar(exprToString(expr, s.consts))
}

func fieldLabel(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("#%d", index)
	}
	return name
}
