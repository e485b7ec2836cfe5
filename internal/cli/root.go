package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devshop/devapp/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	workspace string
	debug     bool
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	var target string

	cmd := &cobra.Command{
		Use:          "devapp",
		Short:        "Have a dev drive a machine",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.OutOrStdout(), opts)
			if err != nil {
				return err
			}
			defer app.close()

			kind, err := app.resolveTarget(target)
			if err != nil {
				return err
			}

			uc := usecase.NewRunDemo(app.machines, app.dev)
			return uc.Execute(cmd.Context(), kind)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .devapp/logs/devapp.log")
	cmd.Flags().StringVarP(&target, "target", "t", "", "Machine the dev drives (optional; defaults to workspace target, then desktop)")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(machinesCmd(&opts))
	cmd.AddCommand(codeCmd(&opts))
	return cmd
}
