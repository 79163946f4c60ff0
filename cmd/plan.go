package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/domain"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

var planOutputFlag string

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Propose a consolidation target for each duplicate",
		Long: `Read the candidate report and propose, for every duplicate, a canonical
occurrence (the shallowest path) and a shared target package chosen from the
file type. Nothing is modified; the plan is a proposal for manual review.`,
		Args:   cobra.NoArgs,
		PreRun: bindLocalFlags(map[string]string{outputFlagName: planOutputKey}),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Plan(cmd.Context(), domain.PlanArgs{
				Report: m.Path(viper.GetString(reportConfigKey)),
				Output: m.Path(viper.GetString(planOutputKey)),
			})
		},
	}

	cmd.Flags().StringVarP(&planOutputFlag, outputFlagName, "o", viper.GetString(planOutputKey), "also write the plan as YAML to this path")

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
