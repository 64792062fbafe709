package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process clipboard. ReadErr and WriteErr, when set, are
// returned instead of touching the stored text.
type Memory struct {
	mu       sync.Mutex
	text     string
	ReadErr  error
	WriteErr error
}

func NewMemory(initial string) *Memory {
	return &Memory{text: initial}
}

func (*Memory) Name() string { return "memory" }

func (m *Memory) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return &Error{Op: "write", Backend: "memory", Err: m.WriteErr}
	}
	m.text = text
	return nil
}

func (m *Memory) ReadText(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", &Error{Op: "read", Backend: "memory", Err: m.ReadErr}
	}
	return m.text, nil
}

// Text returns what was last written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
