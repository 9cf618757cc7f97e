// Package ribbon synchronizes custom ribbon XML between an Office document
// package and a standalone XML file.
//
// Office stores ribbon customizations as a single XML entry inside the
// document's ZIP container, at one of two fixed locations depending on the
// schema generation:
//
//	customUI/customUI14.xml  (Office 2010+ schema, preferred)
//	customUI/customUI.xml    (Office 2007 legacy schema)
//
// Pull copies that entry out of the package; Push copies a user-supplied
// XML file into it and repacks the container via the opc package. Both
// operations stage the package in a scoped opc.Workspace so the caller's
// file is never touched until the rebuilt archive is complete.
package ribbon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shinji-kodama/vba-sync/internal/model"
	"github.com/shinji-kodama/vba-sync/internal/opc"
)

// candidatePaths lists the recognized ribbon entry locations in lookup
// order. customUI14.xml always takes precedence when both exist.
var candidatePaths = []string{
	filepath.Join("customUI", "customUI14.xml"),
	filepath.Join("customUI", "customUI.xml"),
}

// defaultTarget is the entry created by a push when the package has no
// existing ribbon entry and no override was given.
var defaultTarget = candidatePaths[0]

// validTargetNames are the filenames accepted for the push --target
// override.
var validTargetNames = map[string]bool{
	"customUI14.xml": true,
	"customUI.xml":   true,
}

// PushOptions carries the optional parameters of a Push.
type PushOptions struct {
	// OutputPackagePath, when non-empty, receives the rebuilt package.
	// When empty, the source package is updated in place.
	OutputPackagePath string

	// TargetName overrides the ribbon entry filename under customUI/.
	// Must be "customUI14.xml" or "customUI.xml" when set.
	TargetName string
}

// findExistingRibbon returns the workspace-relative path of the first
// candidate entry present under extractedRoot, or "" if neither exists.
func findExistingRibbon(extractedRoot string) string {
	for _, relative := range candidatePaths {
		if _, err := os.Stat(filepath.Join(extractedRoot, relative)); err == nil {
			return relative
		}
	}
	return ""
}

// Pull extracts the ribbon XML entry from the package at packagePath and
// writes it to outputXMLPath, creating parent directories as needed. The
// package itself is never modified. It returns the absolute path of the
// written XML file.
//
// Returns a model.CLIError with ExitRibbonNotFound if the package
// contains neither recognized ribbon entry.
func Pull(packagePath, outputXMLPath string) (string, error) {
	packagePath, err := filepath.Abs(packagePath)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve package path", err)
	}
	outputXMLPath, err = filepath.Abs(outputXMLPath)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve output path", err)
	}

	ws, err := opc.NewWorkspace()
	if err != nil {
		return "", err
	}
	defer ws.Close()

	_, extractedRoot, err := ws.StagePackage(packagePath)
	if err != nil {
		return "", err
	}

	existing := findExistingRibbon(extractedRoot)
	if existing == "" {
		return "", model.NewCLIError(
			model.ExitRibbonNotFound,
			"no ribbon XML found: expected customUI/customUI14.xml or customUI/customUI.xml in the document package",
		)
	}

	if err := opc.InstallFile(filepath.Join(extractedRoot, existing), outputXMLPath); err != nil {
		return "", err
	}
	return outputXMLPath, nil
}

// Push injects the XML file at xmlPath into the package at packagePath
// and repacks it. It returns the absolute path of the written package.
//
// Target entry resolution, in precedence order:
//  1. opts.TargetName, when set (placed under customUI/)
//  2. the location of an existing ribbon entry, preferring customUI14.xml
//  3. customUI/customUI14.xml
//
// The destination package is opts.OutputPackagePath when set, otherwise
// packagePath is replaced in place. Every entry other than the ribbon
// entry survives byte-identical; the destination is installed atomically,
// so a failed push leaves the original package intact.
func Push(packagePath, xmlPath string, opts PushOptions) (string, error) {
	packagePath, err := filepath.Abs(packagePath)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve package path", err)
	}
	xmlPath, err = filepath.Abs(xmlPath)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve ribbon XML path", err)
	}

	if _, err := os.Stat(xmlPath); err != nil {
		return "", model.WrapCLIError(model.ExitNotFound, fmt.Sprintf("ribbon XML not found: %s", xmlPath), err)
	}

	if opts.TargetName != "" && !validTargetNames[opts.TargetName] {
		return "", model.NewCLIError(
			model.ExitInvalidTarget,
			fmt.Sprintf("invalid target %q: must be customUI14.xml or customUI.xml", opts.TargetName),
		)
	}

	destination := packagePath
	if opts.OutputPackagePath != "" {
		destination, err = filepath.Abs(opts.OutputPackagePath)
		if err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve output package path", err)
		}
	}

	ws, err := opc.NewWorkspace()
	if err != nil {
		return "", err
	}
	defer ws.Close()

	stagedArchive, extractedRoot, err := ws.StagePackage(packagePath)
	if err != nil {
		return "", err
	}

	target := opts.TargetName
	switch {
	case target != "":
		target = filepath.Join("customUI", target)
	default:
		if existing := findExistingRibbon(extractedRoot); existing != "" {
			target = existing
		} else {
			target = defaultTarget
		}
	}

	if err := opc.InstallFile(xmlPath, filepath.Join(extractedRoot, target)); err != nil {
		return "", err
	}

	if err := opc.Rebuild(extractedRoot, stagedArchive); err != nil {
		return "", err
	}

	if err := opc.InstallFile(stagedArchive, destination); err != nil {
		return "", err
	}
	return destination, nil
}
