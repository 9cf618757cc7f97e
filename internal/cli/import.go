// Package cli — import.go implements the "vba-sync import" command.
//
// Import pushes edited .bas/.cls/.frm source files back into a document's
// VBA project, replacing same-named components and optionally removing
// components that no longer exist on disk (--clean).
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/vba-sync/internal/model"
	"github.com/shinji-kodama/vba-sync/internal/vba"
)

// importFlags holds the flag values for the import command.
type importFlags struct {
	workbook string // --workbook: path to the document package
	src      string // --src: directory containing source files
	app      string // --app: office host (excel or word)
	clean    bool   // --clean: remove components absent from --src
}

// NewImportCommand creates the "import" cobra command.
func NewImportCommand() *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import VBA source files into a document",
		Long: `Import .bas/.cls/.frm files from a directory into a document's VBA
project. Components with the same name are replaced. With --clean, modules,
classes, and forms not present in the source directory are removed from the
document; document modules are never touched.

Examples:
  vba-sync import --workbook Book1.xlsm --src src/vba
  vba-sync import --workbook Book1.xlsm --src src/vba --clean`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(flags)
		},
	}

	cmd.Flags().StringVar(&flags.workbook, "workbook", "", "Path to the document package (default: project config)")
	cmd.Flags().StringVar(&flags.src, "src", "", "Directory containing .bas/.cls/.frm files (default: project config)")
	cmd.Flags().StringVar(&flags.app, "app", "", "Office host app: excel or word (default: excel)")
	cmd.Flags().BoolVar(&flags.clean, "clean", false, "Remove document components not present in --src")

	return cmd
}

// runImport validates inputs against the project config fallbacks and
// drives the import engine.
func runImport(flags *importFlags) error {
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

	srcDir := flags.src
	if srcDir == "" {
		srcDir = cfg.Dir
	}
	if srcDir == "" {
		return model.NewCLIError(model.ExitGeneralError, "no source directory given: use --src or set dir in the project config")
	}

	clean := flags.clean || cfg.Clean

	app, err := resolveApp(flags.app, cfg)
	if err != nil {
		return err
	}

	VerboseLog("Importing VBA components into %s (%s host, clean=%t)", workbook, app, clean)
	imported, err := vba.Import(app, workbook, srcDir, clean)
	if err != nil {
		return err
	}

	absSrc, absErr := filepath.Abs(srcDir)
	if absErr != nil {
		absSrc = srcDir
	}

	printSuccess(
		map[string]interface{}{"imported": imported, "dir": absSrc},
		"Imported %d VBA components from %s", imported, absSrc,
	)
	return nil
}
