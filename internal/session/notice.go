package session

// Kind classifies a notice for rendering.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarn
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarn:
		return "warn"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a message for the user, the equivalent of a browser alert.
type Notice struct {
	Text string
	Kind Kind
}

// Notifier receives notices as they are produced.
type Notifier interface {
	Notify(Notice)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(Notice)

func (f NotifyFunc) Notify(n Notice) { f(n) }

const (
	msgCopied       = "Frame copied:\n"
	msgExported     = "Exported frame:\n"
	msgPasted       = "Frame pasted"
	msgInvalid      = "Invalid frame"
	msgReadFailed   = "Clipboard read failed: "
	msgWriteFailed  = "Clipboard write failed: "
	msgNoFrames     = "Storyboard is empty"
	msgFrameSaved   = "Frame saved"
	msgBoardCleared = "Storyboard cleared"
)
