package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func machinesCmd(opts *globalOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "machines",
		Short: "Inspect the available machines",
	}

	c.AddCommand(machinesListCmd(opts))
	return c
}

func machinesListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.OutOrStdout(), *opts)
			if err != nil {
				return err
			}
			defer app.close()

			out := cmd.OutOrStdout()
			if app.root != "" {
				fmt.Fprintf(out, "Workspace: %s\n", app.root)
			}
			fmt.Fprintf(out, "Default:   %s\n\n", app.cfg.Defaults.Target)

			for _, r := range app.machines.Machines() {
				fmt.Fprintf(out, "- %s  (%s)\n", r.Kind, r.Summary)
			}
			return nil
		},
	}
}
