package cli

import (
	"github.com/spf13/cobra"

	"github.com/devshop/devapp/internal/domain"
)

func codeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "code <machine>",
		Short: "Call a machine's own code directly (dev always fails)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseMachineKind(args[0])
			if err != nil {
				return err
			}

			app, err := loadApp(cmd.OutOrStdout(), *opts)
			if err != nil {
				return err
			}
			defer app.close()

			c, err := app.machines.Build(kind)
			if err != nil {
				return err
			}
			return c.Code()
		},
	}
}
