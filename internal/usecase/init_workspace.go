package usecase

import (
	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, target domain.MachineKind, force bool) error {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, Target: target}, force)
}
