package golang

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/wirestruct/internal/codegen/meta"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/internal/log"
)

const src = "package demo\n\n" +
	"type Kind int8\n\n" +
	"type Port uint16\n\n" +
	"//wirestruct:record\n" +
	"type Head struct {\n" +
	"\tOp  uint16 `wire:\"be\"`\n" +
	"\tLen uint32 `wire:\"le\"`\n" +
	"}\n\n" +
	"//wirestruct:record identifier=7 identifier_type=uint16\n" +
	"type Msg struct {\n" +
	"\tHead  Head\n" +
	"\tFlags byte\n" +
	"\tKind  Kind\n" +
	"\t_     [2]byte\n" +
	"\tPort  Port `wire:\"be\"`\n" +
	"\tDelta int32 `wire:\"le\"`\n" +
	"\tMAC   [6]byte\n" +
	"\tNone  [0]byte\n" +
	"}\n"

func scanDemo(t *testing.T) *scanner.Package {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.go"), []byte(src), 0o644))
	pkg, err := scanner.ScanPackage(dir)
	require.NoError(t, err)
	return pkg
}

func TestRender(t *testing.T) {
	pkg := scanDemo(t)

	out, err := Render(pkg, "1.2.3")
	require.NoError(t, err)
	code := string(out)

	_, err = parser.ParseFile(token.NewFileSet(), "demo_wire.go", out, parser.ParseComments)
	require.NoError(t, err, code)

	for _, want := range []string{
		"// Code generated by wirestruct 1.2.3. DO NOT EDIT.",
		`"encoding/binary"`,
		"HeadByteLen      = 6",
		"MsgByteLen      = 22",
		"const MsgIdentifier uint16 = 7",
		"func (*Msg) Identifier() uint16 { return MsgIdentifier }",
		"var _ wire.Record = (*Msg)(nil)",
		`wire.CheckLen("Msg", MsgByteLen, len(b))`,
		"binary.BigEndian.PutUint16(b[0:2], x.Op)",
		"x.Op = binary.BigEndian.Uint16(b[0:2])",
		"binary.LittleEndian.PutUint32(b[2:6], x.Len)",
		"x.Head.putWire(b[0:6])",
		"x.Head.getWire(b[0:6])",
		"b[6] = x.Flags",
		"x.Flags = b[6]",
		"b[7] = byte(x.Kind)",
		"x.Kind = Kind(b[7])",
		"clear(b[8:10])",
		"binary.BigEndian.PutUint16(b[10:12], uint16(x.Port))",
		"x.Port = Port(binary.BigEndian.Uint16(b[10:12]))",
		"binary.LittleEndian.PutUint32(b[12:16], uint32(x.Delta))",
		"x.Delta = int32(binary.LittleEndian.Uint32(b[12:16]))",
		"copy(b[16:22], x.MAC[:])",
		"copy(x.MAC[:], b[16:22])",
	} {
		assert.Contains(t, code, want)
	}

	assert.NotContains(t, code, "x.None", "zero-width fields produce no code")
	assert.NotContains(t, code, "x._")
	assert.NotContains(t, code, "HeadIdentifier")
}

func TestRenderWithoutOrderedFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package b\n\n//wirestruct:record\ntype B struct {\n\tA uint8\n\t_ uint8\n\tC [3]byte\n}\n"), 0o644))
	pkg, err := scanner.ScanPackage(dir)
	require.NoError(t, err)

	out, err := Render(pkg, "dev")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "encoding/binary")
	assert.Contains(t, string(out), "BByteLen      = 5")
	assert.Contains(t, string(out), "clear(b[1:2])")
}

func TestGenerate(t *testing.T) {
	pkg := scanDemo(t)

	files, err := Generate(log.Discard(), pkg, &meta.Metadata{Version: "1.0.0"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(pkg.Dir, "demo_wire.go"), files[0].Path)
	assert.NotEmpty(t, files[0].Content)
}
