package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "pwmeter.yaml", "mount: main > .app\ntrace: debug\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "main > .app", cfg.Mount)
	assert.Equal(t, "debug", cfg.Trace)
	assert.Equal(t, "Password Strength", cfg.Title, "missing keys keep their defaults")
	assert.Equal(t, "auto", cfg.Output)
}

func TestInvalidConfig(t *testing.T) {
	for name, content := range map[string]string{
		"selector": "mount: '#['\n",
		"trace":    "trace: verbose\n",
		"output":   "output: xml\n",
		"page":     "page: /does/not/exist.html\n",
		"yaml":     "mount: [\n",
	} {
		_, err := LoadConfig(writeFile(t, name+".yaml", content))
		assert.Error(t, err, "config with invalid %s must be rejected", name)
	}
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHostPage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = "<Login>"
	page, err := hostPage(cfg)
	require.NoError(t, err)
	assert.Contains(t, page, "<title>&lt;Login&gt;</title>")
	assert.Contains(t, page, `<div id="app">`)
	cfg.Page = writeFile(t, "host.html", `<html><body><main class="app"></main></body></html>`)
	page, err = hostPage(cfg)
	require.NoError(t, err)
	assert.Contains(t, page, `<main class="app">`)
}

func TestLoadTOMLConfig(t *testing.T) {
	path := writeFile(t, "pwmeter.toml", "title = \"Sign up\"\noutput = \"json\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Sign up", cfg.Title)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "#app", cfg.Mount)
}

func TestUnknownSettings(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "a.yaml", "mount: '#app'\ncolour: red\n"))
	assert.Error(t, err)
	_, err = LoadConfig(writeFile(t, "a.toml", "colour = \"red\"\n"))
	assert.Error(t, err)
}

func TestEmptyYAMLConfig(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
