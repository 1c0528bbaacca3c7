package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"Seq":            "seq",
		"DevID":          "dev_id",
		"XMLParser":      "xml_parser",
		"TransferFlags":  "transfer_flags",
		"CmdSubmit":      "cmd_submit",
		"Usbip2Header":   "usbip2_header",
		"already_snake":  "already_snake",
		"NumberOfPacket": "number_of_packet",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestCIdent(t *testing.T) {
	assert.Equal(t, "int_", CIdent("Int"))
	assert.Equal(t, "status", CIdent("Status"))
	assert.Equal(t, "left_x", CIdent("LeftX"))
	assert.Equal(t, "HEADER_BASIC", ToScreamingSnakeCase("HeaderBasic"))
}

func TestVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = ""
	v, err := GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.4.2-dirty"
	v, err = GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "1.4.2-dirty", v)
	major, minor, patch := ParseVersion(v)
	assert.Equal(t, []int{1, 4, 2}, []int{major, minor, patch})

	Version = "nightly"
	_, err = GetVersion()
	assert.Error(t, err)

	assert.Equal(t, "Code generated by wirestruct 1.0.0. DO NOT EDIT.", GeneratedHeader("1.0.0"))
}
