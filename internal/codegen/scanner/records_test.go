package scanner

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/wirestruct/schema"
	"github.com/Alia5/wirestruct/wire"
)

func writePkg(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

const packetSrc = `package packet

const NameLen = 2 * 4

type Opcode uint16

type Cmd Opcode

type MAC [6]byte

// Header precedes every command.
//
//wirestruct:record
type Header struct {
	Op   Opcode ` + "`wire:\"be\"`" + `
	Seq  uint32 ` + "`wire:\"be\"`" + `
	Flag uint8
	_    uint8
}

//wirestruct:record identifier=0x2a identifier_type=uint8
type Hello struct {
	Head   Header
	Name   [NameLen]byte
	Addr   MAC
	Cmd    Cmd ` + "`wire:\"le\"`" + `
	X, Y   int16 ` + "`wire:\"le\"`" + `
}

// Plain is not a record.
type Plain struct {
	Data []byte
}

type (
	//wirestruct:record identifier="Cmd(7)" identifier_type=Cmd
	Ack struct {
		Head Header
	}

	other struct{ a int }
)
`

func TestScanPackage(t *testing.T) {
	dir := writePkg(t, map[string]string{
		"packet.go":      packetSrc,
		"packet_wire.go": "package packet\n\nthis is not go",
		"x_test.go":      "package packet_test\n",
	})

	pkg, err := ScanPackage(dir)
	require.NoError(t, err)

	assert.Equal(t, "packet", pkg.Name)
	require.Len(t, pkg.Records, 3)
	assert.Equal(t, "Header", pkg.Records[0].Name, "nested records come first")
	assert.Equal(t, "Hello", pkg.Records[1].Name)
	assert.Equal(t, "Ack", pkg.Records[2].Name)
	assert.Nil(t, pkg.Record("Plain"))

	header := pkg.Record("Header")
	require.NotNil(t, header)
	assert.Equal(t, "packet.go", header.File)
	assert.Equal(t, 8, header.Schema.Len())
	require.Len(t, header.Fields, 4)
	assert.True(t, header.Fields[3].Blank())
	assert.Equal(t, "Opcode", header.Fields[0].GoType)
	assert.Equal(t, wire.U16, header.Schema.Field(0).Scalar)
	assert.Equal(t, wire.BigEndian, header.Schema.Field(0).Order)
	assert.Equal(t, "#3", header.Schema.Field(3).Label())

	hello := pkg.Record("Hello")
	require.NotNil(t, hello)
	// 8 header + 8 name + 6 mac + 2 cmd + 2 + 2
	assert.Equal(t, 28, hello.Schema.Len())
	require.Len(t, hello.Fields, 6)
	assert.Equal(t, "Header", hello.Fields[0].Record)
	assert.Equal(t, "[8]byte", hello.Fields[1].GoType)
	assert.Equal(t, wire.Bytes(6), hello.Schema.Field(2).Scalar)
	assert.Equal(t, wire.U16, hello.Schema.Field(3).Scalar)
	assert.Equal(t, "Y", hello.Fields[5].GoName)
	assert.Equal(t, []string{"le"}, hello.Fields[5].Attrs)

	ident, ok := hello.Schema.Identifier()
	require.True(t, ok)
	assert.Equal(t, schema.Identifier{Value: "0x2a", Type: "uint8"}, ident)

	ack := pkg.Record("Ack")
	require.NotNil(t, ack)
	ident, ok = ack.Schema.Identifier()
	require.True(t, ok)
	assert.Equal(t, "Cmd(7)", ident.Value)
	assert.Equal(t, "Cmd", ident.Type)
}

func TestScanPackageErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "missing byte order",
			src: `package p
//wirestruct:record
type R struct { A uint32 }
`,
			want: schema.ErrMissingByteOrder,
		},
		{
			name: "conflicting byte order",
			src: `package p
//wirestruct:record
type R struct { A uint8 ` + "`wire:\"le,be\"`" + ` }
`,
			want: schema.ErrConflictingByteOrder,
		},
		{
			name: "unknown attribute",
			src: `package p
//wirestruct:record
type R struct { A uint16 ` + "`wire:\"network\"`" + ` }
`,
			want: schema.ErrUnknownAttribute,
		},
		{
			name: "no fields",
			src: `package p
//wirestruct:record
type R struct {}
`,
			want: schema.ErrNoFields,
		},
		{
			name: "incomplete identifier",
			src: `package p
//wirestruct:record identifier=1
type R struct { A uint8 }
`,
			want: schema.ErrIncompleteIdentifier,
		},
		{
			name: "malformed identifier",
			src: `package p
//wirestruct:record identifier=300 identifier_type=uint8
type R struct { A uint8 }
`,
			want: schema.ErrMalformedIdentifier,
		},
		{
			name: "unknown directive argument",
			src: `package p
//wirestruct:record id=1
type R struct { A uint8 }
`,
			want: schema.ErrUnknownAttribute,
		},
		{
			name: "slice field",
			src: `package p
//wirestruct:record
type R struct { A []byte }
`,
			want: schema.ErrUnknownType,
		},
		{
			name: "int field",
			src: `package p
//wirestruct:record
type R struct { A int }
`,
			want: schema.ErrUnknownType,
		},
		{
			name: "uint16 array",
			src: `package p
//wirestruct:record
type R struct { A [2]uint16 ` + "`wire:\"le\"`" + ` }
`,
			want: schema.ErrUnknownType,
		},
		{
			name: "embedded field",
			src: `package p
type Inner struct { A uint8 }
//wirestruct:record
type R struct { Inner }
`,
			want: schema.ErrUnknownType,
		},
		{
			name: "unmarked nested struct",
			src: `package p
type Inner struct { A uint8 }
//wirestruct:record
type R struct { I Inner }
`,
			want: schema.ErrUnknownType,
		},
		{
			name: "recursive records",
			src: `package p
//wirestruct:record
type A struct { B B }
//wirestruct:record
type B struct { A A }
`,
			want: schema.ErrRecursiveRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writePkg(t, map[string]string{"p.go": tt.src})
			pkg, err := ScanPackage(dir)
			require.Error(t, err)
			assert.Nil(t, pkg)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "p.go:")
		})
	}
}

func TestScanPackageReportsEveryRecord(t *testing.T) {
	dir := writePkg(t, map[string]string{"p.go": `package p
//wirestruct:record
type A struct {
	X uint16
	Y []byte
	Z uint32 ` + "`wire:\"le,be\"`" + `
}
//wirestruct:record
type B struct {}
`})

	_, err := ScanPackage(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMissingByteOrder)
	assert.ErrorIs(t, err, schema.ErrUnknownType)
	assert.ErrorIs(t, err, schema.ErrConflictingByteOrder)
	assert.ErrorIs(t, err, schema.ErrNoFields)
}

func TestScanPackageNestedFailureReportedOnce(t *testing.T) {
	dir := writePkg(t, map[string]string{"p.go": `package p
//wirestruct:record
type Inner struct { X uint16 }
//wirestruct:record
type Outer struct { I Inner }
`})

	_, err := ScanPackage(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMissingByteOrder)
	assert.Contains(t, err.Error(), "Inner.X")
	assert.NotContains(t, err.Error(), "Outer")
}

func TestScanPackageIgnoresOrderOnByteFields(t *testing.T) {
	dir := writePkg(t, map[string]string{"p.go": `package p
//wirestruct:record
type R struct {
	A uint8   ` + "`wire:\"be\"`" + `
	B [4]byte ` + "`wire:\"le\"`" + `
}
`})

	pkg, err := ScanPackage(dir)
	require.NoError(t, err)
	rec := pkg.Record("R")
	require.NotNil(t, rec)
	assert.Equal(t, 5, rec.Schema.Len())
	assert.Equal(t, wire.BigEndian, rec.Schema.Field(0).IgnoredOrder)
	assert.Equal(t, wire.LittleEndian, rec.Schema.Field(1).IgnoredOrder)
}

func TestScanPackageNoSources(t *testing.T) {
	_, err := ScanPackage(t.TempDir())
	assert.Error(t, err)

	_, err = ScanPackage(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestParseDirective(t *testing.T) {
	d, err := parseDirective(`identifier="a b" identifier_type=string`)
	require.NoError(t, err)
	assert.Equal(t, Directive{Identifier: "a b", IdentifierType: "string"}, d)

	d, err = parseDirective("")
	require.NoError(t, err)
	assert.Equal(t, Directive{}, d)

	_, err = parseDirective("identifier")
	assert.Error(t, err)

	_, err = parseDirective("identifier=1 identifier=2")
	assert.Error(t, err)
}

func TestCollectConstants(t *testing.T) {
	src := `package c
const (
	A = B * 2
	B = 1 << 3
	C = uint16(0x10)
	D = (A + C) / 4
	S = "text"
	N = -B
)
`
	file, err := parser.ParseFile(token.NewFileSet(), "c.go", src, 0)
	require.NoError(t, err)

	consts := collectConstants([]*ast.File{file})
	assert.Equal(t, map[string]int64{"A": 16, "B": 8, "C": 16, "D": 8, "N": -8}, consts)
}
