package office

import (
	"fmt"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// Host represents a connection to a running Office host application
// (Excel or Word). A Host owns at most the documents it opened and must
// be released with Quit when the operation finishes.
type Host interface {
	// Open opens the document at the given absolute path and returns a
	// handle to it.
	Open(path string) (Document, error)

	// Quit shuts the host application down. Callers invoke Quit during
	// cleanup and tolerate its failure.
	Quit() error
}

// Document is an open document inside a Host, exposing the VBA project
// operations the sync engine needs.
type Document interface {
	// ListComponents returns the document's VBA components. Components of
	// kinds the sync engine does not handle (e.g. document modules) are
	// omitted.
	ListComponents() ([]ComponentInfo, error)

	// ExportComponent writes the named component's source to destPath.
	ExportComponent(name, destPath string) error

	// ImportComponent adds the component stored at srcPath to the
	// document's VBA project.
	ImportComponent(srcPath string) error

	// RemoveComponent deletes the named component from the VBA project.
	RemoveComponent(name string) error

	// Save persists the document.
	Save() error

	// Close closes the document without saving. Callers invoke Close
	// during cleanup and tolerate its failure.
	Close() error
}

// ComponentInfo describes one VBA component of an open document.
type ComponentInfo struct {
	// Name is the component name as it appears in the VBA project.
	Name string `json:"name"`

	// Kind is the component kind, which determines the export file
	// extension.
	Kind model.ComponentKind `json:"kind"`
}

// Provider constructs a Host connection for one host application.
type Provider func() (Host, error)

// providers holds the registered Host constructors per host app. A
// platform-specific implementation registers itself from an init function
// in a build-constrained file; no locking is needed because registration
// happens during init and the CLI is single-threaded.
var providers = map[model.HostApp]Provider{}

// Register installs the Provider for a host app. The last registration
// for an app wins, which lets tests swap in a fake.
func Register(app model.HostApp, p Provider) {
	providers[app] = p
}

// Connect returns a Host for the given app using its registered provider.
//
// Returns a model.CLIError with ExitHostUnavailable when no provider is
// registered, which is the case on every non-Windows platform and on Windows
// builds without an automation provider compiled in.
func Connect(app model.HostApp) (Host, error) {
	p, ok := providers[app]
	if !ok {
		return nil, model.NewCLIError(
			model.ExitHostUnavailable,
			fmt.Sprintf("no %s automation provider available on this platform", app),
		)
	}

	host, err := p()
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitHostUnavailable,
			fmt.Sprintf("failed to connect to %s", app),
			err,
		)
	}
	return host, nil
}
