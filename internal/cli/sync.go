// Package cli — sync.go implements the "vba-sync sync" command, a
// convenience wrapper around export and import with a shared source
// folder and an explicit direction.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/vba-sync/internal/model"
	"github.com/shinji-kodama/vba-sync/internal/vba"
)

// syncFlags holds the flag values for the sync command.
type syncFlags struct {
	workbook  string // --workbook: path to the document package
	dir       string // --dir: shared source folder
	app       string // --app: office host (excel or word)
	direction string // --direction: pull or push
	clean     bool   // --clean: with push, remove components absent on disk
}

// NewSyncCommand creates the "sync" cobra command.
func NewSyncCommand() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync VBA source between a document and a shared folder",
		Long: `Convenience wrapper for export and import with a single shared folder.

Direction:
  pull  export the document's VBA components into the folder
  push  import the folder's source files into the document

Examples:
  vba-sync sync --workbook Book1.xlsm --dir src/vba --direction pull
  vba-sync sync --workbook Book1.xlsm --dir src/vba --direction push --clean`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(flags)
		},
	}

	cmd.Flags().StringVar(&flags.workbook, "workbook", "", "Path to the document package (default: project config)")
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Shared source folder (default: project config)")
	cmd.Flags().StringVar(&flags.app, "app", "", "Office host app: excel or word (default: excel)")
	cmd.Flags().StringVar(&flags.direction, "direction", "", "Sync direction: pull or push (required)")
	cmd.Flags().BoolVar(&flags.clean, "clean", false, "With --direction push, remove components not present on disk")
	_ = cmd.MarkFlagRequired("direction")

	return cmd
}

// runSync dispatches to the export or import engine based on --direction.
func runSync(flags *syncFlags) error {
	if flags.direction != "pull" && flags.direction != "push" {
		return model.NewCLIError(model.ExitGeneralError, "invalid --direction: must be pull or push")
	}

	cfg, err := projectConfig()
	if err != nil {
		return err
	}

	workbook := flags.workbook
	if workbook == "" {
		workbook = cfg.Workbook
	}
	if workbook == "" {
		return model.NewCLIError(model.ExitGeneralError, "no workbook given: use --workbook or set it in the project config")
	}

	dir := flags.dir
	if dir == "" {
		dir = cfg.Dir
	}
	if dir == "" {
		return model.NewCLIError(model.ExitGeneralError, "no source folder given: use --dir or set dir in the project config")
	}

	app, err := resolveApp(flags.app, cfg)
	if err != nil {
		return err
	}

	absDir, absErr := filepath.Abs(dir)
	if absErr != nil {
		absDir = dir
	}

	if flags.direction == "pull" {
		VerboseLog("Pulling VBA components from %s into %s", workbook, absDir)
		exported, err := vba.Export(app, workbook, dir)
		if err != nil {
			return err
		}
		printSuccess(
			map[string]interface{}{"direction": "pull", "exported": exported, "dir": absDir},
			"Pulled %d VBA components into %s", exported, absDir,
		)
		return nil
	}

	clean := flags.clean || cfg.Clean
	VerboseLog("Pushing VBA components from %s into %s (clean=%t)", absDir, workbook, clean)
	imported, err := vba.Import(app, workbook, dir, clean)
	if err != nil {
		return err
	}
	printSuccess(
		map[string]interface{}{"direction": "push", "imported": imported, "dir": absDir},
		"Pushed %d VBA components from %s", imported, absDir,
	)
	return nil
}
