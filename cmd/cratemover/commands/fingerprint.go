package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	var initial bool
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a short digest of the final stack arrangement",
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
			if !initial {
				if err := appCtx.Simulate(cmd.Context(), plan); err != nil {
					return err
				}
			}
			fp := appCtx.Fingerprints.Fingerprint(plan.Stacks)
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&initial, "initial", false, "fingerprint the stacks before any move")
	return cmd
}
