package vba

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// sourceSuffixes lists the VBA source extensions in discovery order.
// Modules come first, then classes, then forms, so import ordering is
// deterministic across runs.
var sourceSuffixes = []string{".bas", ".cls", ".frm"}

// DiscoverSourceModules returns the VBA source files directly inside dir,
// grouped by extension (.bas, .cls, .frm) with each group sorted by
// filename. Files with any other extension are ignored.
func DiscoverSourceModules(dir string) ([]model.SourceModule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitNotFound, "failed to read source directory", err)
	}

	byExt := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := model.KindForExt(ext); ok {
			byExt[ext] = append(byExt[ext], entry.Name())
		}
	}

	var modules []model.SourceModule
	for _, suffix := range sourceSuffixes {
		names := byExt[suffix]
		sort.Strings(names)
		for _, name := range names {
			kind, _ := model.KindForExt(suffix)
			modules = append(modules, model.SourceModule{
				Path: filepath.Join(dir, name),
				Kind: kind,
			})
		}
	}
	return modules, nil
}

// CleanupOrphanedFrx deletes .frx form binaries in dir whose form no
// longer exists among the given component names. Exporting never rewrites
// .frx files for deleted forms, so without this step stale binaries
// accumulate next to the source files.
func CleanupOrphanedFrx(dir string, componentNames map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to scan for orphaned form binaries", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".frx") {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if !componentNames[stem] {
			// Best effort: a vanished file is already the desired state.
			_ = os.Remove(filepath.Join(dir, name))
		}
	}
	return nil
}
