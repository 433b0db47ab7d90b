package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"output_dir": "/srv/signoff",
		"work_dir": "/tmp/work",
		"logo_path": "assets/logo.png",
		"collision": "overwrite",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/srv/signoff", cfg.OutputDir)
	assert.Equal(t, "/tmp/work", cfg.WorkDir)
	assert.Equal(t, "assets/logo.png", cfg.LogoPath)
	assert.Equal(t, "overwrite", cfg.Collision)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvOutputDir, "/env/out")
	t.Setenv(EnvCollision, "overwrite")

	cfg := FromEnv()
	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.Equal(t, "overwrite", cfg.Collision)
	assert.Empty(t, cfg.WorkDir)
}

func TestValidate_MissingOutputDir(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OutputDir")
}

func TestValidate_BadCollision(t *testing.T) {
	cfg := &Config{OutputDir: "out", Collision: "rename"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Collision")
}

func TestValidate_MissingCatalog(t *testing.T) {
	cfg := &Config{OutputDir: "out", CatalogPath: "/nonexistent/catalog.yaml"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	cfg.OutputDir = t.TempDir()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	file := Config{
		OutputDir: "/file/out",
		LogoPath:  "file-logo.png",
		Collision: "overwrite",
	}
	env := Config{OutputDir: "/env/out"}
	flags := Config{Verbose: true}

	merged := flags.MergeWithDefaults(env)
	merged = merged.MergeWithDefaults(file)
	merged = merged.MergeWithDefaults(Defaults())

	assert.Equal(t, "/env/out", merged.OutputDir)
	assert.Equal(t, "file-logo.png", merged.LogoPath)
	assert.Equal(t, "overwrite", merged.Collision)
	assert.Equal(t, Defaults().WorkDir, merged.WorkDir)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{OutputDir: "out"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "out", merged.OutputDir)
	assert.Empty(t, merged.Collision)
}

func TestPrepareOutputDir_CreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	cfg := &Config{OutputDir: dir}

	require.NoError(t, cfg.PrepareOutputDir())
	assert.DirExists(t, dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file must be removed")
}

func TestPrepareOutputDir_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	cfg := &Config{OutputDir: file}
	err := cfg.PrepareOutputDir()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestPrepareOutputDir_Unset(t *testing.T) {
	cfg := &Config{}
	err := cfg.PrepareOutputDir()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvOutputDir)
}

func TestPrepareOutputDir_ReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	cfg := &Config{OutputDir: dir}
	err := cfg.PrepareOutputDir()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not writable")
}
