package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/infra/fsworkspace"
	"github.com/devshop/devapp/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var target string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a devapp workspace (devapp.yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			var kind domain.MachineKind
			if strings.TrimSpace(target) != "" {
				kind, err = domain.ParseMachineKind(target)
				if err != nil {
					return err
				}
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, kind, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready: %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().StringVarP(&target, "target", "t", "", "Default machine for the workspace (optional; desktop if omitted)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing devapp.yaml")
	return c
}
