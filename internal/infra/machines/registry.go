package machines

import (
	"fmt"
	"io"
	"sort"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/ports"
)

// BuildFunc constructs a Computer writing to out.
type BuildFunc func(out io.Writer) ports.Computer

type entry struct {
	summary string
	build   BuildFunc
}

// Registry is a ports.MachineFactory keyed by domain.MachineKind.
type Registry struct {
	out     io.Writer
	entries map[domain.MachineKind]entry
}

var _ ports.MachineFactory = (*Registry)(nil)

type Option func(*Registry)

// WithMachine registers (or replaces) a variant.
func WithMachine(kind domain.MachineKind, summary string, fn BuildFunc) Option {
	return func(r *Registry) {
		if fn != nil {
			r.entries[kind] = entry{summary: summary, build: fn}
		}
	}
}

// NewRegistry registers lap and desktop, then applies opts.
func NewRegistry(out io.Writer, opts ...Option) *Registry {
	r := &Registry{
		out: out,
		entries: map[domain.MachineKind]entry{
			domain.MachineLap: {
				summary: fmt.Sprintf("prints %q", domain.LapLine),
				build:   func(w io.Writer) ports.Computer { return NewLap(w) },
			},
			domain.MachineDesktop: {
				summary: fmt.Sprintf("prints %q", domain.DesktopLine),
				build:   func(w io.Writer) ports.Computer { return NewDesktop(w) },
			},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Build(kind domain.MachineKind) (ports.Computer, error) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, &domain.OpError{
			Op:   "machines.build",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("machine %q: %w", kind, domain.ErrNotFound),
		}
	}
	return e.build(r.out), nil
}

func (r *Registry) Machines() []domain.MachineRef {
	out := make([]domain.MachineRef, 0, len(r.entries))
	for k, e := range r.entries {
		out = append(out, domain.MachineRef{Kind: k, Summary: e.summary})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
