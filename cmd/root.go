// Package cmd provides the root command and CLI setup for dedupe.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	"github.com/mrdannyclark82/MillaCore-Fusion/internal/controller"
	"github.com/mrdannyclark82/MillaCore-Fusion/internal/domain"
)

var sourceFSAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var planStore adapter.PlanStore
var scanRunner adapter.ScanRunnerAdapter
var scanner domain.Scanner
var planner domain.Planner
var stubGenerator domain.StubGenerator
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command.
var rootDirFlag string
var reportPathFlag string
var excludePatterns []string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewJSONReportStore(sourceFSAdapter)
	planStore = adapter.NewYAMLPlanStore(sourceFSAdapter)
	scanRunner = adapter.NewLocalScanRunnerAdapter()
	scanner = domain.NewScanner(sourceFSAdapter, domain.NewExtractor())
	planner = domain.NewPlanner()
	stubGenerator = domain.NewStubGenerator(sourceFSAdapter)
	orchestrator = domain.NewOrchestrator(reportStore, scanRunner, ui, scanner)
	workflow = domain.NewWorkflow(
		reportStore,
		planStore,
		ui,
		scanner,
		planner,
		stubGenerator,
		orchestrator,
	)
}

const excludeHelp = `Excluded paths:
  - .git .hg .svn node_modules venv .venv __pycache__ are always pruned
  - --exclude takes doublestar globs relative to the root, e.g. "dist",
    "**/*.test.ts", "legacy/**" (can be repeated)`

const rootLongDescription = `dedupe finds functions that were copy-pasted verbatim across a mixed
Python and JavaScript/TypeScript tree, writes a report of the duplicate
groups, proposes where each one should be consolidated, and stages
placeholder stubs for the merge. It never modifies scanned source files.

` + excludeHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "dedupe",
		Short:         "Cross-language duplicate function detector",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a fresh root command with its persistent flags bound.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&rootDirFlag, rootFlagName, viper.GetString(rootConfigKey), "directory tree to scan")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVar(&reportPathFlag, reportFlagName, viper.GetString(reportConfigKey), "path of the JSON candidate report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude paths matching a glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// bindLocalFlags binds command-local flags when the command runs, so
// commands sharing a config key each feed it from their own flag.
func bindLocalFlags(bindings map[string]string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		for name, key := range bindings {
			bindFlagToConfig(cmd.Flags().Lookup(name), key)
		}
	}
}

// exitCode maps a command error to the process exit status. A scan that
// found duplicates exits 1 like any failure but prints no error banner.
func exitCode(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	return 1, !errors.Is(err, domain.ErrDuplicatesFound)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	code, printErr := exitCode(err)
	if printErr {
		rootCmd.PrintErrln("Error:", err)
	}

	if code != 0 {
		os.Exit(code)
	}
}
