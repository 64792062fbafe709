package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// System uses the platform clipboard (pbcopy, xclip/xsel/wl-clipboard, Win32).
type System struct{}

func systemSupported() bool { return !clipboard.Unsupported }

func (System) Name() string { return BackendSystem }

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return &Error{Op: "write", Backend: BackendSystem, Err: err}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return &Error{Op: "write", Backend: BackendSystem, Err: err}
	}
	return nil
}

func (System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Op: "read", Backend: BackendSystem, Err: err}
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", &Error{Op: "read", Backend: BackendSystem, Err: err}
	}
	return text, nil
}
