package usecase

import (
	"context"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/ports"
)

// RunDemo builds one desktop, one lap and the dev coordinator, then has the
// coordinator drive the selected target.
type RunDemo struct {
	machines ports.MachineFactory
	dev      *Dev
}

func NewRunDemo(mf ports.MachineFactory, dev *Dev) *RunDemo {
	if dev == nil {
		dev = NewDev()
	}
	return &RunDemo{
		machines: mf,
		dev:      dev,
	}
}

// Execute runs the demo against target. An empty target means desktop.
func (uc *RunDemo) Execute(ctx context.Context, target domain.MachineKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if target == "" {
		target = domain.MachineDesktop
	}

	desktop, err := uc.machines.Build(domain.MachineDesktop)
	if err != nil {
		return err
	}
	lap, err := uc.machines.Build(domain.MachineLap)
	if err != nil {
		return err
	}

	var chosen ports.Computer
	switch target {
	case domain.MachineDesktop:
		chosen = desktop
	case domain.MachineLap:
		chosen = lap
	case domain.MachineDev:
		chosen = uc.dev
	default:
		chosen, err = uc.machines.Build(target)
		if err != nil {
			return err
		}
	}

	return uc.dev.DevApp(chosen)
}
