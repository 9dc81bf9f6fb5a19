package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"cratemover/internal/app"
	"cratemover/internal/input"
)

var (
	configPath string
	appCtx     *app.App
	appCfg     *app.Config
)

// Execute runs the CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cratemover",
		Short:         "Rearrange crate stacks and report the top crates",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			wire, err := app.NewWire(*cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCfg = cfg
			appCtx = app.New(wire)
			return nil
		},
		RunE: runTops,
	}

	// input and log-level are read back through viper in loadConfig.
	root.PersistentFlags().StringP("input", "i", input.Stdin, "input file (- for stdin)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./cratemover.yaml or ~/.config/cratemover/cratemover.yaml)")

	root.AddCommand(runCmd(), stacksCmd(), fingerprintCmd())
	return root
}

// openInput opens the configured input, falling back to the command's stdin.
func openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	return input.Open(appCfg.Input, cmd.InOrStdin())
}
