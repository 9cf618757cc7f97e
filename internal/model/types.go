// Package model defines the domain types for the vba-sync CLI.
//
// All entities in this package represent the core data structures shared
// across the application: the Office host application being driven, the
// kinds of VBA components that can round-trip through the filesystem, and
// the error taxonomy that maps failures to process exit codes.
package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HostApp identifies which Office host application owns a document.
// The host determines both the automation surface used for module sync
// and the set of document file extensions accepted as input.
type HostApp string

const (
	// AppExcel targets Excel workbooks and add-ins.
	AppExcel HostApp = "excel"

	// AppWord targets Word documents and templates.
	AppWord HostApp = "word"
)

// hostExtensions maps each host app to the document extensions it accepts.
// Extensions are lowercase and include the leading dot.
var hostExtensions = map[HostApp][]string{
	AppExcel: {".xlsm", ".xlsb", ".xlam", ".xls"},
	AppWord:  {".docm", ".dotm", ".doc"},
}

// String returns the string representation of HostApp.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (a HostApp) String() string {
	return string(a)
}

// IsValid checks whether the HostApp value is one of the supported hosts.
func (a HostApp) IsValid() bool {
	switch a {
	case AppExcel, AppWord:
		return true
	default:
		return false
	}
}

// Extensions returns the document file extensions accepted for this host,
// lowercase with leading dots, in display order.
func (a HostApp) Extensions() []string {
	return hostExtensions[a]
}

// ParseHostApp converts a string to a HostApp.
// Returns an error if the string does not match any supported host.
func ParseHostApp(s string) (HostApp, error) {
	app := HostApp(strings.ToLower(s))
	if !app.IsValid() {
		return "", fmt.Errorf("invalid host app: %q (valid: excel, word)", s)
	}
	return app, nil
}

// ValidateDocumentPath checks that the document exists and carries an
// extension supported by the given host app, then returns its absolute path.
//
// Returns a CLIError with ExitNotFound if the file is missing, or
// ExitUnsupportedFileType if the extension does not belong to the host.
func (a HostApp) ValidateDocumentPath(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", WrapCLIError(ExitNotFound, fmt.Sprintf("document not found: %s", path), err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, candidate := range a.Extensions() {
		if ext == candidate {
			supported = true
			break
		}
	}
	if !supported {
		return "", NewCLIError(
			ExitUnsupportedFileType,
			fmt.Sprintf("document must be a supported %s file (%s)", a, strings.Join(a.Extensions(), "/")),
		)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", WrapCLIError(ExitGeneralError, "failed to resolve document path", err)
	}
	return abs, nil
}

// ComponentKind classifies a VBA component by the on-disk source format
// it exports to. Document modules (e.g. ThisWorkbook, sheet modules) are
// intentionally absent: they cannot be removed or re-imported, so the
// sync engine never touches them.
type ComponentKind string

const (
	// KindModule is a standard module, exported as a .bas file.
	KindModule ComponentKind = "module"

	// KindClass is a class module, exported as a .cls file.
	KindClass ComponentKind = "class"

	// KindForm is a UserForm, exported as a .frm file (with a sibling
	// .frx binary holding the form layout).
	KindForm ComponentKind = "form"
)

// kindExtensions maps component kinds to their source file extensions.
var kindExtensions = map[ComponentKind]string{
	KindModule: ".bas",
	KindClass:  ".cls",
	KindForm:   ".frm",
}

// String returns the string representation of ComponentKind.
func (k ComponentKind) String() string {
	return string(k)
}

// IsValid checks whether the ComponentKind value is one of the
// predefined syncable kinds.
func (k ComponentKind) IsValid() bool {
	switch k {
	case KindModule, KindClass, KindForm:
		return true
	default:
		return false
	}
}

// Ext returns the source file extension for the kind, including the
// leading dot. Returns an empty string for unknown kinds.
func (k ComponentKind) Ext() string {
	return kindExtensions[k]
}

// KindForExt returns the ComponentKind for a source file extension
// (case-insensitive, leading dot expected). The second return value is
// false for extensions that are not VBA source files.
func KindForExt(ext string) (ComponentKind, bool) {
	switch strings.ToLower(ext) {
	case ".bas":
		return KindModule, true
	case ".cls":
		return KindClass, true
	case ".frm":
		return KindForm, true
	default:
		return "", false
	}
}

// SourceModule represents one VBA source file on disk, discovered in the
// working directory during an import or push-direction sync.
type SourceModule struct {
	// Path is the absolute filesystem path to the source file.
	Path string `json:"path"`

	// Kind is the component kind derived from the file extension.
	Kind ComponentKind `json:"kind"`
}

// ComponentName returns the VBA component name for the source file:
// the base filename without its extension.
func (m SourceModule) ComponentName() string {
	base := filepath.Base(m.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitNotFound indicates an input file or directory does not exist.
	ExitNotFound ExitCode = 2

	// ExitCorruptArchive indicates the document package is not a valid
	// ZIP archive.
	ExitCorruptArchive ExitCode = 3

	// ExitRibbonNotFound indicates neither recognized ribbon XML entry
	// exists in the package during a pull.
	ExitRibbonNotFound ExitCode = 4

	// ExitInvalidTarget indicates the --target override is not one of the
	// recognized ribbon entry filenames.
	ExitInvalidTarget ExitCode = 5

	// ExitUnsupportedFileType indicates the document extension does not
	// match the selected host app.
	ExitUnsupportedFileType ExitCode = 6

	// ExitHostUnavailable indicates the Office host application could not
	// be reached (no automation provider on this platform, or the host
	// failed while driving it).
	ExitHostUnavailable ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the exit code from an error. CLIErrors report their
// own code; nil maps to ExitSuccess; any other error maps to
// ExitGeneralError.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitGeneralError
}
