package opc

import (
	"os"
	"path/filepath"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// workspacePrefix names the temporary directories created for staged
// package operations, making leftovers from interrupted runs easy to spot.
const workspacePrefix = "vba-sync-ribbon-"

// Workspace is an ephemeral scratch directory holding the staged copy and
// extracted contents of exactly one document package. A Workspace belongs
// to a single pull or push operation and is never shared.
//
// Usage:
//
//	ws, err := opc.NewWorkspace()
//	if err != nil { /* handle */ }
//	defer ws.Close()  // Always close to remove the scratch directory
type Workspace struct {
	// root is the temporary directory owned by this workspace.
	root string
}

// NewWorkspace creates a fresh scratch directory under the system temp
// location.
func NewWorkspace() (*Workspace, error) {
	root, err := os.MkdirTemp("", workspacePrefix)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to create scratch workspace", err)
	}
	return &Workspace{root: root}, nil
}

// Root returns the absolute path of the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// StagePackage copies the package at packagePath into the workspace and
// extracts it. It returns the path of the staged archive copy and the
// root of the extracted tree.
//
// Staging a private copy first keeps the caller's package untouched while
// the extracted tree is mutated and the staged archive rebuilt.
func (w *Workspace) StagePackage(packagePath string) (stagedArchive, extractedRoot string, err error) {
	stagedArchive = filepath.Join(w.root, "package.zip")
	if err := InstallFile(packagePath, stagedArchive); err != nil {
		return "", "", err
	}

	extractedRoot = filepath.Join(w.root, "extracted")
	if err := Extract(stagedArchive, extractedRoot); err != nil {
		return "", "", err
	}
	return stagedArchive, extractedRoot, nil
}

// Close removes the workspace directory and everything in it. Removal is
// best-effort: Close is called on every exit path, including error paths,
// and a cleanup failure must never mask the operation's original error.
func (w *Workspace) Close() {
	if w.root != "" {
		_ = os.RemoveAll(w.root)
		w.root = ""
	}
}
