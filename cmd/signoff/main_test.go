package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/site-signoff/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvOutputDir, config.EnvWorkDir, config.EnvLogoPath,
		config.EnvCatalogPath, config.EnvCollision,
	} {
		t.Setenv(key, "")
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{
		"output_dir": "/from/file",
		"logo_path": "file-logo.png",
		"collision": "overwrite"
	}`), 0644))

	t.Setenv(config.EnvOutputDir, "/from/env")
	t.Setenv(config.EnvLogoPath, "env-logo.png")

	configPath, outputDir, verbose = cfgFile, "/from/flag", false
	t.Cleanup(func() { configPath, outputDir = "", "" })

	got, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", got.OutputDir)
	assert.Equal(t, "env-logo.png", got.LogoPath)
	assert.Equal(t, "overwrite", got.Collision)
	assert.Equal(t, config.Defaults().WorkDir, got.WorkDir)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.json")
	t.Cleanup(func() { configPath = "" })

	_, err := resolveConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), logFileName)

	l, err := newLogger(true, path)
	require.NoError(t, err)
	l.Debug("debug line")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
}
