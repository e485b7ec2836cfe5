package usecase

import (
	"errors"
	"fmt"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/ports"
)

type recordingComputer struct {
	name  string
	calls *[]string
	err   error
}

func (c recordingComputer) Code() error {
	*c.calls = append(*c.calls, c.name)
	return c.err
}

type fakeFactory struct {
	calls  *[]string
	built  []domain.MachineKind
	failOn domain.MachineKind
}

func (f *fakeFactory) Build(kind domain.MachineKind) (ports.Computer, error) {
	f.built = append(f.built, kind)
	if kind == f.failOn {
		return nil, &domain.OpError{
			Op:   "fake.build",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("machine %q: %w", kind, domain.ErrNotFound),
		}
	}
	return recordingComputer{name: string(kind), calls: f.calls}, nil
}

func (f *fakeFactory) Machines() []domain.MachineRef { return nil }

var errBoom = errors.New("boom")
