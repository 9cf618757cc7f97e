// Package vba implements the VBA module sync engine: exporting a
// document's components to plain-text source files and importing edited
// source files back, through the office package's host abstraction.
//
// Design decisions:
//   - The engine never talks to COM or any platform API directly; it
//     operates purely on office.Host/office.Document, so it runs and
//     tests on any platform.
//   - Host and document handles are released on every exit path with
//     best-effort cleanup: a Close or Quit failure never masks the error
//     that ended the operation.
//   - Document modules (ThisWorkbook, sheet modules) are excluded by
//     construction: ListComponents only reports syncable kinds.
package vba

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shinji-kodama/vba-sync/internal/model"
	"github.com/shinji-kodama/vba-sync/internal/office"
)

// Export writes every syncable VBA component of the document to outDir,
// one file per component named <Name><ext> by kind. It returns the number
// of components exported.
func Export(app model.HostApp, docPath, outDir string) (int, error) {
	docPath, err := app.ValidateDocumentPath(docPath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, model.WrapCLIError(model.ExitGeneralError, "failed to create output directory", err)
	}
	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitGeneralError, "failed to resolve output directory", err)
	}

	host, err := office.Connect(app)
	if err != nil {
		return 0, err
	}
	defer func() { _ = host.Quit() }()

	doc, err := host.Open(docPath)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitHostUnavailable, fmt.Sprintf("failed to open %s", docPath), err)
	}
	defer func() { _ = doc.Close() }()

	components, err := doc.ListComponents()
	if err != nil {
		return 0, model.WrapCLIError(model.ExitHostUnavailable, "failed to list VBA components", err)
	}

	exported := 0
	for _, component := range components {
		if !component.Kind.IsValid() {
			continue
		}
		target := filepath.Join(outDir, component.Name+component.Kind.Ext())
		if err := doc.ExportComponent(component.Name, target); err != nil {
			return exported, model.WrapCLIError(
				model.ExitHostUnavailable,
				fmt.Sprintf("failed to export component %s", component.Name),
				err,
			)
		}
		exported++
	}
	return exported, nil
}

// Import replaces the document's VBA components with the source files
// found in srcDir. Existing components with the same name are removed
// first so the import never creates Module1_1-style duplicates.
//
// With clean set, syncable components that have no corresponding source
// file are removed from the document as well; document modules are never
// touched. After a successful import, orphaned .frx form binaries in
// srcDir are deleted. It returns the number of components imported.
func Import(app model.HostApp, docPath, srcDir string, clean bool) (int, error) {
	docPath, err := app.ValidateDocumentPath(docPath)
	if err != nil {
		return 0, err
	}
	if _, err := os.Stat(srcDir); err != nil {
		return 0, model.WrapCLIError(model.ExitNotFound, fmt.Sprintf("source directory not found: %s", srcDir), err)
	}
	srcDir, err = filepath.Abs(srcDir)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitGeneralError, "failed to resolve source directory", err)
	}

	sources, err := DiscoverSourceModules(srcDir)
	if err != nil {
		return 0, err
	}
	sourceNames := make(map[string]bool, len(sources))
	for _, source := range sources {
		sourceNames[source.ComponentName()] = true
	}

	host, err := office.Connect(app)
	if err != nil {
		return 0, err
	}
	defer func() { _ = host.Quit() }()

	doc, err := host.Open(docPath)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitHostUnavailable, fmt.Sprintf("failed to open %s", docPath), err)
	}
	defer func() { _ = doc.Close() }()

	components, err := doc.ListComponents()
	if err != nil {
		return 0, model.WrapCLIError(model.ExitHostUnavailable, "failed to list VBA components", err)
	}
	existing := make(map[string]bool, len(components))
	for _, component := range components {
		if component.Kind.IsValid() {
			existing[component.Name] = true
		}
	}

	imported := 0
	for _, source := range sources {
		name := source.ComponentName()
		if existing[name] {
			if err := doc.RemoveComponent(name); err != nil {
				return imported, model.WrapCLIError(
					model.ExitHostUnavailable,
					fmt.Sprintf("failed to replace component %s", name),
					err,
				)
			}
		}
		if err := doc.ImportComponent(source.Path); err != nil {
			return imported, model.WrapCLIError(
				model.ExitHostUnavailable,
				fmt.Sprintf("failed to import %s", source.Path),
				err,
			)
		}
		imported++
	}

	if clean {
		// Re-list: imports may have renamed or added components since the
		// snapshot above.
		components, err = doc.ListComponents()
		if err != nil {
			return imported, model.WrapCLIError(model.ExitHostUnavailable, "failed to list VBA components", err)
		}
		for _, component := range components {
			if component.Kind.IsValid() && !sourceNames[component.Name] {
				if err := doc.RemoveComponent(component.Name); err != nil {
					return imported, model.WrapCLIError(
						model.ExitHostUnavailable,
						fmt.Sprintf("failed to remove component %s", component.Name),
						err,
					)
				}
			}
		}
	}

	if err := doc.Save(); err != nil {
		return imported, model.WrapCLIError(model.ExitHostUnavailable, "failed to save document", err)
	}

	if err := CleanupOrphanedFrx(srcDir, sourceNames); err != nil {
		return imported, err
	}
	return imported, nil
}
