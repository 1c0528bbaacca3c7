// Package golang renders typed encoders and decoders for scanned records as
// a single <package>_wire.go file placed next to the sources.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/Alia5/wirestruct/internal/codegen/common"
	"github.com/Alia5/wirestruct/internal/codegen/meta"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
)

const fileTmpl = `// {{.Header}}

package {{.Package}}

import (
{{- if .Binary}}
	"encoding/binary"
{{end}}
	"github.com/Alia5/wirestruct/wire"
)
{{range .Records}}
// {{.Name}} wire layout, {{.Len}} bytes:
//
{{- range .Layout}}
//	{{.}}
{{- end}}
const (
	{{.Name}}ByteLen      = {{.Len}}
	{{.Name}}LayoutDigest = "{{.Digest}}"
)
{{if .Identifier}}
const {{.Name}}Identifier {{.Identifier.Type}} = {{.Identifier.Value}}

// Identifier returns {{.Name}}Identifier.
func (*{{.Name}}) Identifier() {{.Identifier.Type}} { return {{.Name}}Identifier }
{{end}}
var _ wire.Record = (*{{.Name}})(nil)

// ByteLen returns {{.Name}}ByteLen.
func (*{{.Name}}) ByteLen() int { return {{.Name}}ByteLen }

// UnmarshalBinary decodes b, which must be exactly {{.Name}}ByteLen bytes.
func (x *{{.Name}}) UnmarshalBinary(b []byte) error {
	if err := wire.CheckLen("{{.Name}}", {{.Name}}ByteLen, len(b)); err != nil {
		return err
	}
	x.getWire(b)
	return nil
}

// PutBinary encodes x into b, which must be exactly {{.Name}}ByteLen bytes.
func (x *{{.Name}}) PutBinary(b []byte) error {
	if err := wire.CheckLen("{{.Name}}", {{.Name}}ByteLen, len(b)); err != nil {
		return err
	}
	x.putWire(b)
	return nil
}

// MarshalBinary encodes x into a new {{.Name}}ByteLen-byte slice.
func (x *{{.Name}}) MarshalBinary() ([]byte, error) {
	b := make([]byte, {{.Name}}ByteLen)
	x.putWire(b)
	return b, nil
}

func (x *{{.Name}}) putWire(b []byte) {
{{- range .Put}}
	{{.}}
{{- end}}
}

func (x *{{.Name}}) getWire(b []byte) {
{{- range .Get}}
	{{.}}
{{- end}}
}
{{end}}`

var tmpl = template.Must(template.New("wire.go").Parse(fileTmpl))

type fileData struct {
	Header  string
	Package string
	Binary  bool
	Records []recordView
}

// FileName is the generated file name for a package.
func FileName(pkg *scanner.Package) string {
	return pkg.Name + scanner.GeneratedSuffix
}

// Render produces the formatted Go source for all records of pkg.
func Render(pkg *scanner.Package, version string) ([]byte, error) {
	data := fileData{
		Header:  common.GeneratedHeader(version),
		Package: pkg.Name,
	}
	for _, rec := range pkg.Records {
		data.Records = append(data.Records, newRecordView(rec))
	}
	data.Binary = needsBinary(data.Records)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", FileName(pkg), err)
	}
	return src, nil
}

// Generate renders pkg into its _wire.go file.
func Generate(logger *slog.Logger, pkg *scanner.Package, md *meta.Metadata) ([]meta.File, error) {
	src, err := Render(pkg, md.Version)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(pkg.Dir, FileName(pkg))
	logger.Debug("Rendered Go codec", "package", pkg.Name, "records", len(pkg.Records), "path", path)
	return []meta.File{{Path: path, Content: src}}, nil
}
