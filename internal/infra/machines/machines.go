package machines

import (
	"fmt"
	"io"
	"os"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/ports"
)

var (
	_ ports.Computer = (*Lap)(nil)
	_ ports.Computer = (*Desktop)(nil)
)

// Lap writes domain.LapLine.
type Lap struct {
	Out io.Writer // defaults to os.Stdout
}

func NewLap(out io.Writer) *Lap {
	return &Lap{Out: out}
}

func (l *Lap) Code() error {
	if l == nil {
		return nilMachine("machines.lap.code")
	}
	return writeLine(l.Out, "machines.lap.code", domain.LapLine)
}

// Desktop writes domain.DesktopLine.
type Desktop struct {
	Out io.Writer // defaults to os.Stdout
}

func NewDesktop(out io.Writer) *Desktop {
	return &Desktop{Out: out}
}

func (d *Desktop) Code() error {
	if d == nil {
		return nilMachine("machines.desktop.code")
	}
	return writeLine(d.Out, "machines.desktop.code", domain.DesktopLine)
}

func writeLine(w io.Writer, op, line string) error {
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return nil
}

func nilMachine(op string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidTarget,
		Err:  domain.ErrInvalidTarget,
	}
}
