package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/ports"
)

// Dev is a Computer whose own Code is not implemented. It coordinates other
// machines through DevApp.
type Dev struct {
	log *slog.Logger
}

var _ ports.Computer = (*Dev)(nil)

type DevOption func(*Dev)

func WithLogger(l *slog.Logger) DevOption {
	return func(d *Dev) {
		if l != nil {
			d.log = l
		}
	}
}

func NewDev(opts ...DevOption) *Dev {
	d := &Dev{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Code always fails with KindUnsupported and writes nothing.
func (d *Dev) Code() error {
	return &domain.OpError{
		Op:   "dev.code",
		Kind: domain.KindUnsupported,
		Err:  domain.ErrUnsupported,
	}
}

// DevApp invokes target.Code and returns its error as-is.
func (d *Dev) DevApp(target ports.Computer) error {
	if target == nil {
		return &domain.OpError{
			Op:   "dev.app",
			Kind: domain.KindInvalidTarget,
			Err:  domain.ErrInvalidTarget,
		}
	}

	d.log.Debug("dev.app.start", "target", fmt.Sprintf("%T", target))
	err := target.Code()
	if err != nil {
		d.log.Error("dev.app.failed", "target", fmt.Sprintf("%T", target), "error", err)
	}
	return err
}
