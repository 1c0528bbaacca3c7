package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("/tmp/custom.yml")

	require.NotEmpty(t, yamlPaths)
	assert.Equal(t, "/tmp/custom.yml", yamlPaths[0])
	assert.Contains(t, jsonPaths, filepath.Join(xdg, "wirestruct", "wirestruct.json"))
	assert.Contains(t, tomlPaths, "/etc/wirestruct/wirestruct.toml")
	assert.Contains(t, yamlPaths, "/etc/wirestruct/wirestruct.yml")

	jsonPaths, _, _ = ConfigCandidatePaths("/tmp/noext")
	assert.Equal(t, "/tmp/noext", jsonPaths[0])
}

func TestDefaultConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	p, err := DefaultConfigPath("yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "wirestruct", "wirestruct.yaml"), p)

	assert.Equal(t, "json", Ext("xml"))
	assert.Equal(t, "toml", Ext("toml"))
}
