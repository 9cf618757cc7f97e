// Package cli — export.go implements the "vba-sync export" command.
//
// Export pulls every syncable VBA component (.bas/.cls/.frm) out of a
// document package into a plain-text directory via the host application.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/vba-sync/internal/model"
	"github.com/shinji-kodama/vba-sync/internal/vba"
)

// exportFlags holds the flag values for the export command.
// These are bound to cobra flags in NewExportCommand.
type exportFlags struct {
	workbook string // --workbook: path to the document package
	out      string // --out: directory for exported source files
	app      string // --app: office host (excel or word)
}

// NewExportCommand creates the "export" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export VBA modules from a document to source files",
		Long: `Export all standard modules, class modules, and UserForms from a
document's VBA project into a directory of .bas/.cls/.frm files.

Examples:
  vba-sync export --workbook Book1.xlsm --out src/vba
  vba-sync export --workbook Report.docm --out src/vba --app word`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(flags)
		},
	}

	cmd.Flags().StringVar(&flags.workbook, "workbook", "", "Path to the document package (default: project config)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Directory for exported .bas/.cls/.frm files (default: project config)")
	cmd.Flags().StringVar(&flags.app, "app", "", "Office host app: excel or word (default: excel)")

	return cmd
}

// runExport validates inputs against the project config fallbacks and
// drives the export engine.
func runExport(flags *exportFlags) error {
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

	outDir := flags.out
	if outDir == "" {
		outDir = cfg.Dir
	}
	if outDir == "" {
		return model.NewCLIError(model.ExitGeneralError, "no output directory given: use --out or set dir in the project config")
	}

	app, err := resolveApp(flags.app, cfg)
	if err != nil {
		return err
	}

	VerboseLog("Exporting VBA components from %s (%s host)", workbook, app)
	exported, err := vba.Export(app, workbook, outDir)
	if err != nil {
		return err
	}

	absOut, absErr := filepath.Abs(outDir)
	if absErr != nil {
		absOut = outDir
	}

	printSuccess(
		map[string]interface{}{"exported": exported, "dir": absOut},
		"Exported %d VBA components to %s", exported, absOut,
	)
	return nil
}
