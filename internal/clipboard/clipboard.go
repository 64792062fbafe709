// Package clipboard is the editor's clipboard port. The system backend wraps
// github.com/atotto/clipboard; terminals without a native clipboard can still
// receive copies through an OSC52 escape sequence.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/gbr1/matrix-editor/internal/logging"
)

var (
	ErrUnavailable = errors.New("clipboard unavailable")
	ErrWriteOnly   = errors.New("clipboard is write-only")
)

// Error records which clipboard operation failed.
type Error struct {
	Op      string // "read" or "write"
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Clipboard reads and writes plain text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
	ReadText(ctx context.Context) (string, error)
	Name() string
}

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendNone   = "none"
)

// New returns the named backend. "auto" prefers the system clipboard and
// falls back to OSC52, then to a clipboard that always fails.
func New(backend string) (Clipboard, error) {
	switch backend {
	case BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return NewOSC52(nil), nil
	case BackendNone:
		return None{}, nil
	case BackendAuto, "":
		if systemSupported() {
			logging.Infof("clipboard: using system backend")
			return System{}, nil
		}
		if osc52Supported() {
			logging.Infof("clipboard: system clipboard unsupported, using OSC52")
			return NewOSC52(nil), nil
		}
		logging.Warnf("clipboard: no backend available")
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}

// None is the clipboard used when nothing else works.
type None struct{}

func (None) Name() string { return BackendNone }

func (None) WriteText(context.Context, string) error {
	return &Error{Op: "write", Backend: BackendNone, Err: ErrUnavailable}
}

func (None) ReadText(context.Context) (string, error) {
	return "", &Error{Op: "read", Backend: BackendNone, Err: ErrUnavailable}
}
