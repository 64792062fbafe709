package clipboard

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"

	"github.com/gbr1/matrix-editor/internal/logging"
)

// OSC52 copies by writing an OSC52 escape sequence to the terminal. Reading
// back is not possible.
type OSC52 struct {
	out io.Writer
}

// NewOSC52 writes sequences to w, or to stderr when w is nil (stdout belongs
// to the TUI renderer).
func NewOSC52(w io.Writer) *OSC52 {
	if w == nil {
		w = os.Stderr
	}
	return &OSC52{out: w}
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func (*OSC52) Name() string { return BackendOSC52 }

func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return &Error{Op: "write", Backend: BackendOSC52, Err: err}
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		logging.Warnf("clipboard: OSC52 write failed: %v", err)
		return &Error{Op: "write", Backend: BackendOSC52, Err: err}
	}
	logging.Infof("clipboard: copied %d bytes via OSC52", len(text))
	return nil
}

func (*OSC52) ReadText(context.Context) (string, error) {
	return "", &Error{Op: "read", Backend: BackendOSC52, Err: ErrWriteOnly}
}
