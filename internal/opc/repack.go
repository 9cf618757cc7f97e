package opc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// tmpSuffix is appended to an archive path while Rebuild writes the new
// archive. The finished file is renamed over the destination in one step.
const tmpSuffix = ".tmp"

// Extract unpacks the package at packagePath into destDir.
//
// If destDir already exists it is removed first: extraction is a full
// replace, never a merge. Only file entries are written; directory entries
// carry no content and are recreated implicitly as parents.
//
// Returns a model.CLIError with ExitNotFound if the package does not
// exist, or ExitCorruptArchive if it is not a valid ZIP archive.
func Extract(packagePath, destDir string) error {
	if _, err := os.Stat(packagePath); err != nil {
		return model.WrapCLIError(model.ExitNotFound, fmt.Sprintf("package not found: %s", packagePath), err)
	}

	reader, err := zip.OpenReader(packagePath)
	if err != nil {
		return model.WrapCLIError(model.ExitCorruptArchive, fmt.Sprintf("not a valid document package: %s", packagePath), err)
	}
	defer func() { _ = reader.Close() }()

	// Full replace: drop any previous extraction at this location.
	if err := os.RemoveAll(destDir); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to clear extraction directory", err)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to create extraction directory", err)
	}

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if err := extractEntry(entry, destDir); err != nil {
			return err
		}
	}
	return nil
}

// extractEntry writes a single archive entry to disk under destDir,
// creating parent directories as needed. Entry paths that would escape
// destDir are rejected.
func extractEntry(entry *zip.File, destDir string) error {
	// Archive entry names use forward slashes. Clean and re-anchor the
	// path so an entry like "../evil" cannot write outside destDir.
	target := filepath.Join(destDir, filepath.FromSlash(entry.Name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return model.NewCLIError(model.ExitCorruptArchive, fmt.Sprintf("package entry escapes extraction directory: %s", entry.Name))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to create entry directory", err)
	}

	src, err := entry.Open()
	if err != nil {
		return model.WrapCLIError(model.ExitCorruptArchive, fmt.Sprintf("failed to read package entry %s", entry.Name), err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(target)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to write package entry %s", entry.Name), err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to write package entry %s", entry.Name), err)
	}
	return dst.Close()
}

// Rebuild creates a new ZIP archive at archivePath from every regular
// file under sourceDir. Entry paths are relative to sourceDir with
// forward-slash separators regardless of host OS, and entries are
// deflate-compressed.
//
// The archive is written to a temporary sibling file first and renamed
// over archivePath in one step, so an interrupted rebuild never leaves a
// truncated archive at the final path. A stale temporary file from a
// prior failed attempt is removed before starting.
//
// filepath.WalkDir visits files in lexical order, so entry ordering is
// stable across calls on the same tree.
func Rebuild(sourceDir, archivePath string) error {
	tmpPath := archivePath + tmpSuffix
	if err := os.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return model.WrapCLIError(model.ExitGeneralError, "failed to remove stale temporary archive", err)
	}

	out, err := os.Create(tmpPath)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to create temporary archive", err)
	}

	if err := writeArchive(out, sourceDir); err != nil {
		_ = out.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return model.WrapCLIError(model.ExitGeneralError, "failed to finalize temporary archive", err)
	}

	// Atomic replace: the old archive (if any) survives intact until the
	// new one is fully written and closed.
	if err := os.Rename(tmpPath, archivePath); err != nil {
		_ = os.Remove(tmpPath)
		return model.WrapCLIError(model.ExitGeneralError, "failed to replace archive", err)
	}
	return nil
}

// writeArchive streams every regular file under sourceDir into a ZIP
// archive written to w.
func writeArchive(w io.Writer, sourceDir string) error {
	zw := zip.NewWriter(w)

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		header := &zip.FileHeader{
			Name:   filepath.ToSlash(rel),
			Method: zip.Deflate,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		_, copyErr := io.Copy(entry, src)
		_ = src.Close()
		return copyErr
	})
	if walkErr != nil {
		_ = zw.Close()
		return model.WrapCLIError(model.ExitGeneralError, "failed to write archive contents", walkErr)
	}

	if err := zw.Close(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to finalize archive", err)
	}
	return nil
}

// InstallFile copies the file at src to dest, creating dest's parent
// directories as needed. The bytes are written to a temporary file in
// dest's directory and renamed into place, so an existing file at dest is
// either fully replaced or left untouched.
func InstallFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return model.WrapCLIError(model.ExitNotFound, fmt.Sprintf("file not found: %s", src), err)
	}
	defer func() { _ = in.Close() }()

	destDir := filepath.Dir(dest)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to create destination directory", err)
	}

	// The temp file must live in the destination directory: rename is only
	// atomic within one filesystem.
	tmp, err := os.CreateTemp(destDir, filepath.Base(dest)+".*"+tmpSuffix)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to create temporary file", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to write %s", dest), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to write %s", dest), err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to replace %s", dest), err)
	}
	return nil
}
