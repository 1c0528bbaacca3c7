package cgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Alia5/wirestruct/internal/codegen/common"
	"github.com/Alia5/wirestruct/internal/codegen/meta"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
)

const headerTmpl = `/* {{.Header}} */
#ifndef {{.Guard}}
#define {{.Guard}}

#include <stddef.h>
#include <stdint.h>
#include <string.h>

#define {{.Prefix}}_WIRESTRUCT_VERSION_MAJOR {{.Major}}
#define {{.Prefix}}_WIRESTRUCT_VERSION_MINOR {{.Minor}}
#define {{.Prefix}}_WIRESTRUCT_VERSION_PATCH {{.Patch}}
{{range .Records}}
/* ========================================================================
 * {{.Name}}
 * ======================================================================== */
#define {{.LenMacro}} {{.Len}}
#define {{.DigestName}} "{{.Digest}}"
{{- if .Identifier}}
{{.Identifier}}
{{- end}}

typedef struct {
{{- range .Members}}
    {{.}}
{{- end}}
} {{.Type}};

static inline void {{.Func}}_put(const {{.Type}} *x, uint8_t *b)
{
{{- if not .Put}}
    (void)x;
    (void)b;
{{- end}}
{{- range .Put}}
    {{.}}
{{- end}}
}

static inline void {{.Func}}_get({{.Type}} *x, const uint8_t *b)
{
{{- if not .Get}}
    (void)x;
    (void)b;
{{- end}}
{{- range .Get}}
    {{.}}
{{- end}}
}

/* Returns 0 on success, -1 if len is not {{.LenMacro}}. */
static inline int {{.Func}}_encode(const {{.Type}} *x, uint8_t *buf, size_t len)
{
    if (len != {{.LenMacro}}) {
        return -1;
    }
    {{.Func}}_put(x, buf);
    return 0;
}

/* Returns 0 on success, -1 if len is not {{.LenMacro}}. */
static inline int {{.Func}}_decode({{.Type}} *x, const uint8_t *buf, size_t len)
{
    if (len != {{.LenMacro}}) {
        return -1;
    }
    {{.Func}}_get(x, buf);
    return 0;
}
{{end}}
#endif /* {{.Guard}} */
`

var tmpl = template.Must(template.New("wire.h").Parse(headerTmpl))

type headerData struct {
	Header              string
	Guard               string
	Prefix              string
	Major, Minor, Patch int
	Records             []headerRecord
}

type headerRecord struct {
	recordView
	Len int
}

// FileName is the header name for a package.
func FileName(pkg *scanner.Package) string {
	return common.ToSnakeCase(pkg.Name) + "_wire.h"
}

// Render produces a self-contained C header for all records of pkg.
func Render(pkg *scanner.Package, version string) ([]byte, error) {
	n := names{pkg: common.ToSnakeCase(pkg.Name)}
	major, minor, patch := common.ParseVersion(version)

	data := headerData{
		Header: common.GeneratedHeader(version),
		Guard:  strings.ToUpper(n.pkg) + "_WIRE_H",
		Prefix: strings.ToUpper(n.pkg),
		Major:  major,
		Minor:  minor,
		Patch:  patch,
	}
	for _, rec := range pkg.Records {
		data.Records = append(data.Records, headerRecord{
			recordView: newRecordView(n, rec),
			Len:        rec.Schema.Len(),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate renders pkg into <pkg>_wire.h, next to the package unless
// md.COutput names another directory.
func Generate(logger *slog.Logger, pkg *scanner.Package, md *meta.Metadata) ([]meta.File, error) {
	out, err := Render(pkg, md.Version)
	if err != nil {
		return nil, err
	}

	dir := pkg.Dir
	if md.COutput != "" {
		dir = md.COutput
	}
	path := filepath.Join(dir, FileName(pkg))
	logger.Debug("Rendered C header", "package", pkg.Name, "records", len(pkg.Records), "path", path)
	return []meta.File{{Path: path, Content: out}}, nil
}
