package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phroun/retropda"
)

func runCtl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	path := filepath.Join(dir, "pda.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: "+dataDir+"\n"), 0644))
	return path, dataDir
}

func TestInstallAndList(t *testing.T) {
	cfgPath, dataDir := writeConfig(t)

	out, err := runCtl(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	target := filepath.Join(t.TempDir(), "clock.py")
	out, err = runCtl(t, "--config", cfgPath, "install", target)
	require.NoError(t, err)
	assert.Contains(t, out, "installed clock.py")

	_, err = runCtl(t, "--config", cfgPath, "install", "--name", "Weather", target)
	require.NoError(t, err)

	out, err = runCtl(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "clock.py\t"+target+"\nWeather\t"+target+"\n", out)

	out, err = runCtl(t, "--config", cfgPath, "--json", "list")
	require.NoError(t, err)
	var entries []retropda.ManifestEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []retropda.ManifestEntry{
		{Name: "clock.py", Path: target},
		{Name: "Weather", Path: target},
	}, entries)

	out, err = runCtl(t, "--config", cfgPath, "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, retropda.DefaultManifestName)+"\n", out)
}

func TestListMalformedManifest(t *testing.T) {
	cfgPath, dataDir := writeConfig(t)
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, retropda.DefaultManifestName), []byte("nope"), 0644))

	_, err := runCtl(t, "--config", cfgPath, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "pda.yaml")
	out, err := runCtl(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wrote "))

	_, err = runCtl(t, "--config", path, "config", "init")
	assert.Error(t, err)

	_, err = runCtl(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 10))
	assert.Equal(t, "...89", shorten("0123456789", 5))
	assert.Equal(t, "0123456789", shorten("0123456789", 2))
}
