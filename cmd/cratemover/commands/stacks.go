package commands

import (
	"github.com/spf13/cobra"

	"cratemover/internal/report"
)

func stacksCmd() *cobra.Command {
	var after bool
	cmd := &cobra.Command{
		Use:   "stacks",
		Short: "Print the stacks parsed from the diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer in.Close()

			plan, err := appCtx.Load(in)
			if err != nil {
				return err
			}
			if after {
				if err := appCtx.Simulate(cmd.Context(), plan); err != nil {
					return err
				}
			}
			return report.Write(cmd.OutOrStdout(), plan.Stacks, appCfg.Output)
		},
	}
	cmd.Flags().BoolVar(&after, "after", false, "apply the moves before printing")
	cmd.Flags().StringP("output", "o", report.FormatYAML, "output format (yaml, json)")
	return cmd
}
