package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratemover/internal/report"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Apply the moves and print the top crate of every lane",
		Args:  cobra.NoArgs,
		RunE:  runTops,
	}
}

func runTops(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	tops, err := appCtx.Tops(cmd.Context(), in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Tops(tops))
	return nil
}
