// Package cli implements the cobra-based CLI commands for vba-sync.
//
// Each subcommand (export, import, sync, ribbon) is defined in its own
// file within this package. This file defines the root command that serves
// as the parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/vba-sync/internal/config"
	"github.com/shinji-kodama/vba-sync/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine consumption.
	// When false (default), output uses human-readable text format.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// errorColor highlights the "Error:" prefix on stderr in text mode.
// fatih/color degrades to plain text automatically when stderr is not
// a terminal.
var errorColor = color.New(color.FgRed, color.Bold)

// successColor highlights success summaries on stdout in text mode.
var successColor = color.New(color.FgGreen)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (export, import, sync, ribbon).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "vba-sync",
		Short: "Sync VBA source and ribbon XML between Office documents and plain files",
		Long: `vba-sync moves VBA source code and custom ribbon XML between an Office
document package (.xlsm/.xlsb/.xlam/.xls/.docm/.dotm/.doc) and a plain-text
working directory, so the content can live in version control and be edited
in an ordinary editor.

Module export/import drives the Office host application and therefore needs
a platform automation provider. Ribbon pull/push operates directly on the
document's ZIP container and works everywhere.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (export.go, import.go, etc.) and returns a *cobra.Command.
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewSyncCommand())
	rootCmd.AddCommand(NewRibbonCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes via the model error taxonomy.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(int(model.CodeOf(err)))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(err error) {
	if jsonOutput {
		// We write to stderr for errors, even in JSON mode, because stdout
		// is reserved for successful command output.
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
				"code":    int(model.CodeOf(err)),
			},
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorColor.Sprint("Error:"), err.Error())
	}
}

// printSuccess outputs a success summary to stdout in text mode, or the
// given payload as JSON in JSON mode.
func printSuccess(payload interface{}, format string, args ...interface{}) {
	if jsonOutput {
		data, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Println(string(data))
		return
	}
	successColor.Printf(format+"\n", args...)
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// projectConfig loads the optional vba-sync project file from the current
// working directory. A missing file yields a zero-value config, so flag
// values always have something to fall back to.
func projectConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if cfg.Workbook != "" || cfg.Dir != "" || cfg.App != "" {
		VerboseLog("Loaded project defaults from %s", cwd)
	}
	return cfg, nil
}

// resolveApp determines the host app from the --app flag, falling back to
// the project config default (which itself defaults to Excel).
func resolveApp(flagValue string, cfg *config.Config) (model.HostApp, error) {
	if flagValue != "" {
		app, err := model.ParseHostApp(flagValue)
		if err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError, "invalid --app value", err)
		}
		return app, nil
	}
	app, err := cfg.HostApp()
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "invalid app in project config", err)
	}
	return app, nil
}
