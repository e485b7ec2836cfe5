package domain

import (
	"fmt"
	"strings"
)

// MachineKind names a Computer variant.
type MachineKind string

const (
	MachineLap     MachineKind = "lap"
	MachineDesktop MachineKind = "desktop"
	MachineDev     MachineKind = "dev"
)

// Lines written by the working variants.
const (
	LapLine     = "Code,Run,Running..."
	DesktopLine = "Code,Run, Faster"
)

// MachineRef describes a registered variant for listings.
type MachineRef struct {
	Kind    MachineKind
	Summary string
}

// ParseMachineKind accepts a machine name in any case, surrounding spaces ignored.
func ParseMachineKind(s string) (MachineKind, error) {
	switch k := MachineKind(strings.ToLower(strings.TrimSpace(s))); k {
	case MachineLap, MachineDesktop, MachineDev:
		return k, nil
	default:
		return "", &OpError{
			Op:   "domain.parse_machine",
			Kind: KindNotFound,
			Err:  fmt.Errorf("unknown machine %q: %w", s, ErrNotFound),
		}
	}
}
