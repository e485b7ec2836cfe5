package domain

// WorkspaceSpec describes a workspace to create.
type WorkspaceSpec struct {
	Root   string
	Target MachineKind // empty means the default target
}
