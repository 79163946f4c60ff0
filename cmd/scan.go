package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/domain"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

var scanParallelFlag int
var scanFormatFlag string
var scanWriteReportFlag bool

const scanLongDescription = `Scan the tree under --root for Python and JavaScript/TypeScript functions
whose header and body are byte-for-byte identical, and print every group of
two or more occurrences.

Exits 1 when at least one duplicate group is found so CI can gate on it.

` + excludeHelp

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "scan",
		Short:  "Find duplicated functions",
		Long:   scanLongDescription,
		Args:   cobra.NoArgs,
		PreRun: bindLocalFlags(map[string]string{parallelFlagName: parallelConfigKey}),
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(scanFormatFlag)
			if err != nil {
				return err
			}

			return workflow.Scan(cmd.Context(), domain.ScanCommandArgs{
				ScanArgs:    scanArgsFromConfig(),
				Format:      format,
				WriteReport: scanWriteReportFlag,
				Report:      m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	configureParallelFlag(cmd, &scanParallelFlag)
	cmd.Flags().StringVar(&scanFormatFlag, formatFlagName, string(domain.FormatText), "output format: text or json")
	cmd.Flags().BoolVar(&scanWriteReportFlag, writeReportFlagName, false, "also write the JSON report to --report")
}

func configureParallelFlag(cmd *cobra.Command, target *int) {
	cmd.Flags().IntVarP(target, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files processed in parallel")
}

func scanArgsFromConfig() domain.ScanArgs {
	return domain.ScanArgs{
		Root:    m.Path(viper.GetString(rootConfigKey)),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Threads: viper.GetInt(parallelConfigKey),
	}
}

func parseOutputFormat(value string) (domain.OutputFormat, error) {
	switch domain.OutputFormat(value) {
	case domain.FormatText, domain.FormatJSON:
		return domain.OutputFormat(value), nil
	}

	return "", fmt.Errorf("unknown format %q (want text or json)", value)
}
