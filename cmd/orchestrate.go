package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/domain"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

var orchestrateParallelFlag int
var orchestrateSourceFlag string
var orchestrateStubsDirFlag string

const orchestrateLongDescription = `Scan the tree, write the candidate report and stage one placeholder stub
per duplicated function name under --stubs-dir.

Existing stubs are never overwritten, so running it again is safe.

Candidate sources:
  - scan    run the scanner in-process (default)
  - exec    run "dedupe scan" as a subprocess and parse its text output
  - report  reuse the existing --report without scanning`

// orchestrateCmd represents the orchestrate command.
var orchestrateCmd = newOrchestrateCmd()

func newOrchestrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orchestrate",
		Short: "Scan, write the report and stage consolidation stubs",
		Long:  orchestrateLongDescription,
		Args:  cobra.NoArgs,
		PreRun: bindLocalFlags(map[string]string{
			parallelFlagName: parallelConfigKey,
			stubsDirFlagName: stubsDirConfigKey,
		}),
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := domain.ParseCandidateSource(orchestrateSourceFlag)
			if err != nil {
				return err
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			return workflow.Orchestrate(cmd.Context(), domain.OrchestrateArgs{
				ScanArgs: scanArgsFromConfig(),
				Source:   source,
				Report:   m.Path(viper.GetString(reportConfigKey)),
				StubsDir: m.Path(viper.GetString(stubsDirConfigKey)),
				WorkDir:  workDir,
			})
		},
	}

	configureOrchestrateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(orchestrateCmd)
}

func configureOrchestrateFlags(cmd *cobra.Command) {
	configureParallelFlag(cmd, &orchestrateParallelFlag)
	cmd.Flags().StringVar(&orchestrateSourceFlag, sourceFlagName, string(domain.SourceScan), "where candidates come from: scan, exec or report")
	cmd.Flags().StringVar(&orchestrateStubsDirFlag, stubsDirFlagName, viper.GetString(stubsDirConfigKey), "directory receiving the generated stubs")
}
