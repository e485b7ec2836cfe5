package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/infra/logger"
	"github.com/devshop/devapp/internal/infra/machines"
	"github.com/devshop/devapp/internal/infra/workspacefinder"
	"github.com/devshop/devapp/internal/ports"
	"github.com/devshop/devapp/internal/usecase"
)

type appCtx struct {
	root string // empty when no workspace was found
	cfg  domain.Config

	dev      *usecase.Dev
	machines *machines.Registry

	cleanup func() error
}

// loadApp resolves the workspace (if any), sets up logging and wires the
// machines. Without a workspace or --debug nothing is logged.
func loadApp(out io.Writer, opts globalOptions) (*appCtx, error) {
	root, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if root != "" {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	}
	if opts.debug {
		cfg.Logging.Debug = true
	}

	app := &appCtx{root: root, cfg: cfg}

	if root != "" || opts.debug {
		logRoot := root
		if logRoot == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
			logRoot = wd
		}
		cleanup, _ := logger.Setup(logger.Config{
			Root:  logRoot,
			Dir:   cfg.Logging.Dir,
			Debug: cfg.Logging.Debug,
		})
		app.cleanup = cleanup
	}

	app.dev = usecase.NewDev(usecase.WithLogger(logger.L()))
	app.machines = machines.NewRegistry(out,
		machines.WithMachine(domain.MachineDev, "coordinator; its own code is unimplemented",
			func(io.Writer) ports.Computer { return app.dev }),
	)
	return app, nil
}

func (a *appCtx) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// resolveTarget prefers the flag value, then the workspace default.
func (a *appCtx) resolveTarget(flag string) (domain.MachineKind, error) {
	if strings.TrimSpace(flag) == "" {
		return a.cfg.Defaults.Target, nil
	}
	return domain.ParseMachineKind(flag)
}

// resolveWorkspaceRoot returns "" (and no error) when no flag is given and
// no devapp.yaml exists above the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}
