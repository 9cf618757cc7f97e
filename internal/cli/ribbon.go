// Package cli — ribbon.go implements the "vba-sync ribbon" command group:
// pull extracts the custom ribbon XML entry from a document package, push
// injects an XML file back into it.
//
// Unlike export/import, the ribbon commands never drive the Office host
// application — they operate directly on the document's ZIP container and
// therefore work on any platform.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/vba-sync/internal/ribbon"
)

// NewRibbonCommand creates the "ribbon" command group with its pull and
// push subcommands.
func NewRibbonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ribbon",
		Short: "Read or write custom ribbon XML in a document package",
		Long: `Work with the custom ribbon UI definition stored inside the document's
ZIP container (customUI/customUI14.xml or customUI/customUI.xml).

These commands do not require an Office installation.`,
	}

	cmd.AddCommand(newRibbonPullCommand())
	cmd.AddCommand(newRibbonPushCommand())

	return cmd
}

// ribbonPullFlags holds the flag values for "ribbon pull".
type ribbonPullFlags struct {
	workbook string // --workbook: path to the document package
	out      string // --out: path for the extracted XML file
}

// newRibbonPullCommand creates the "ribbon pull" cobra command.
func newRibbonPullCommand() *cobra.Command {
	flags := &ribbonPullFlags{}

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Extract ribbon XML from a document package",
		Long: `Copy the document's ribbon XML entry to a standalone file, byte for byte.
customUI/customUI14.xml is preferred when both schema generations exist.

Example:
  vba-sync ribbon pull --workbook Addin.xlam --out src/ribbon/customUI14.xml`,

		RunE: func(cmd *cobra.Command, args []string) error {
			VerboseLog("Pulling ribbon XML from %s", flags.workbook)
			out, err := ribbon.Pull(flags.workbook, flags.out)
			if err != nil {
				return err
			}
			printSuccess(
				map[string]interface{}{"xml": out},
				"Extracted ribbon XML to %s", out,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.workbook, "workbook", "", "Path to the document package")
	cmd.Flags().StringVar(&flags.out, "out", "", "Path for the extracted XML file")
	_ = cmd.MarkFlagRequired("workbook")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// ribbonPushFlags holds the flag values for "ribbon push".
type ribbonPushFlags struct {
	workbook    string // --workbook: path to the document package
	xml         string // --xml: ribbon XML file to inject
	outWorkbook string // --out-workbook: optional output package path
	target      string // --target: override entry filename under customUI/
}

// newRibbonPushCommand creates the "ribbon push" cobra command.
func newRibbonPushCommand() *cobra.Command {
	flags := &ribbonPushFlags{}

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Inject ribbon XML into a document package",
		Long: `Copy an XML file into the document's ribbon entry and repack the
container. Without --target, an existing ribbon entry keeps its location
(customUI14.xml preferred); a package with no ribbon entry gets
customUI/customUI14.xml. Every other entry in the package is preserved
byte for byte.

Examples:
  vba-sync ribbon push --workbook Addin.xlam --xml src/ribbon/customUI14.xml
  vba-sync ribbon push --workbook Addin.xlam --xml ui.xml --out-workbook Updated.xlam
  vba-sync ribbon push --workbook Addin.xlam --xml ui.xml --target customUI.xml`,

		RunE: func(cmd *cobra.Command, args []string) error {
			VerboseLog("Pushing ribbon XML %s into %s", flags.xml, flags.workbook)
			out, err := ribbon.Push(flags.workbook, flags.xml, ribbon.PushOptions{
				OutputPackagePath: flags.outWorkbook,
				TargetName:        flags.target,
			})
			if err != nil {
				return err
			}
			printSuccess(
				map[string]interface{}{"workbook": out},
				"Injected ribbon XML into %s", out,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.workbook, "workbook", "", "Path to the document package")
	cmd.Flags().StringVar(&flags.xml, "xml", "", "Path to the ribbon XML file")
	cmd.Flags().StringVar(&flags.outWorkbook, "out-workbook", "", "Output package path (default: update --workbook in place)")
	cmd.Flags().StringVar(&flags.target, "target", "", "Target filename under customUI/: customUI14.xml or customUI.xml")
	_ = cmd.MarkFlagRequired("workbook")
	_ = cmd.MarkFlagRequired("xml")

	return cmd
}
