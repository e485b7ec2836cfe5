package ports

import "github.com/devshop/devapp/internal/domain"

// MachineFactory builds Computer variants by kind.
type MachineFactory interface {
	Build(kind domain.MachineKind) (Computer, error)
	Machines() []domain.MachineRef
}
