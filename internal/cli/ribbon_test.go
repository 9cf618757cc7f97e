// Package cli — ribbon_test.go exercises the ribbon command group
// through the cobra command surface, end to end on temporary files.
// The ribbon commands never touch the Office host, so these tests run
// everywhere.
package cli

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// runCommand executes the root command with the given arguments and
// returns the resulting error (nil on success).
func runCommand(args ...string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// writePackage creates a ZIP document package at path with the given
// entries.
func writePackage(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	out, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(out)
	for name, body := range entries {
		entry, err := zw.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())
}

// readEntry returns the content of one entry in the package at path.
func readEntry(t *testing.T, path, name string) string {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	for _, entry := range reader.File {
		if entry.Name == name {
			src, err := entry.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(src)
			_ = src.Close()
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("entry %s not found in %s", name, path)
	return ""
}

// TestRibbonPullAndPushRoundTrip drives the full command surface: pull
// the ribbon XML out of a package, push replacement XML into a new
// package, and verify both the ribbon entry and an unrelated entry.
func TestRibbonPullAndPushRoundTrip(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "Sample.xlam")
	ribbonXML := "<customUI xmlns='http://schemas.microsoft.com/office/2009/07/customui' />"
	writePackage(t, workbook, map[string]string{
		"customUI/customUI14.xml": ribbonXML,
		"[Content_Types].xml":     "<Types />",
	})

	outXML := filepath.Join(dir, "ribbon", "customUI14.xml")
	require.NoError(t, runCommand("ribbon", "pull", "--workbook", workbook, "--out", outXML))

	data, err := os.ReadFile(outXML)
	require.NoError(t, err)
	assert.Equal(t, ribbonXML, string(data))

	updatedXML := filepath.Join(dir, "updated.xml")
	require.NoError(t, os.WriteFile(updatedXML, []byte("<customUI/>"), 0o644))

	outWorkbook := filepath.Join(dir, "Updated.xlam")
	require.NoError(t, runCommand(
		"ribbon", "push",
		"--workbook", workbook,
		"--xml", updatedXML,
		"--out-workbook", outWorkbook,
		"--target", "customUI14.xml",
	))

	assert.Equal(t, "<customUI/>", readEntry(t, outWorkbook, "customUI/customUI14.xml"))
	assert.Equal(t, "<Types />", readEntry(t, outWorkbook, "[Content_Types].xml"))
}

// TestRibbonPush_RejectsInvalidTarget verifies the --target validation
// surfaces through the command layer with the right exit code mapping.
func TestRibbonPush_RejectsInvalidTarget(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "Sample.xlam")
	writePackage(t, workbook, map[string]string{
		"customUI/customUI14.xml": "<customUI/>",
	})

	xml := filepath.Join(dir, "ui.xml")
	require.NoError(t, os.WriteFile(xml, []byte("<customUI/>"), 0o644))

	err := runCommand("ribbon", "push", "--workbook", workbook, "--xml", xml, "--target", "evil.xml")
	assert.Equal(t, model.ExitInvalidTarget, model.CodeOf(err))
}

// TestRibbonPull_RequiresFlags verifies that pull refuses to run
// without its required flags.
func TestRibbonPull_RequiresFlags(t *testing.T) {
	assert.Error(t, runCommand("ribbon", "pull"))
}

// TestRibbonPull_MissingWorkbookCode verifies the NotFound exit code for
// a nonexistent package.
func TestRibbonPull_MissingWorkbookCode(t *testing.T) {
	dir := t.TempDir()
	err := runCommand(
		"ribbon", "pull",
		"--workbook", filepath.Join(dir, "missing.xlam"),
		"--out", filepath.Join(dir, "out.xml"),
	)
	assert.Equal(t, model.ExitNotFound, model.CodeOf(err))
}
