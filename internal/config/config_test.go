package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// TestLoad_MissingFileIsNotAnError verifies the zero-value fallback.
func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

// TestLoad_YAML verifies YAML parsing and relative path resolution
// against the project directory.
func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	content := "workbook: Book1.xlsm\ndir: src/vba\napp: word\nclean: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vba-sync.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Book1.xlsm"), cfg.Workbook)
	assert.Equal(t, filepath.Join(dir, "src", "vba"), cfg.Dir)
	assert.Equal(t, "word", cfg.App)
	assert.True(t, cfg.Clean)
}

// TestLoad_JSONC verifies that JSON project files may carry comments and
// trailing commas, matching the dialect VS Code users expect.
func TestLoad_JSONC(t *testing.T) {
	dir := t.TempDir()
	content := `{
	// The add-in under version control.
	"workbook": "Addin.xlam",
	"dir": "vba",
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vba-sync.jsonc"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Addin.xlam"), cfg.Workbook)
	assert.Equal(t, filepath.Join(dir, "vba"), cfg.Dir)
}

// TestLoad_PrefersYAMLOverJSON verifies the lookup order when multiple
// project files exist.
func TestLoad_PrefersYAMLOverJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vba-sync.yml"), []byte("workbook: FromYAML.xlsm\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vba-sync.json"), []byte(`{"workbook": "FromJSON.xlsm"}`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "FromYAML.xlsm"), cfg.Workbook)
}

// TestLoad_AbsolutePathsAreKept verifies that absolute workbook/dir
// values are not re-anchored.
func TestLoad_AbsolutePathsAreKept(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "Book1.xlsm")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vba-sync.yml"), []byte("workbook: "+abs+"\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Workbook)
}

// TestLoad_MalformedFile verifies that a present but unparseable project
// file is an error rather than a silent fallback.
func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vba-sync.yml"), []byte("workbook: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

// TestConfig_HostApp verifies the Excel default and validation of the
// configured value.
func TestConfig_HostApp(t *testing.T) {
	app, err := (&Config{}).HostApp()
	require.NoError(t, err)
	assert.Equal(t, model.AppExcel, app)

	app, err = (&Config{App: "word"}).HostApp()
	require.NoError(t, err)
	assert.Equal(t, model.AppWord, app)

	_, err = (&Config{App: "access"}).HostApp()
	assert.Error(t, err)
}
