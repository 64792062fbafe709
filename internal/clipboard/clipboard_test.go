package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52_WritesEscapeSequence(t *testing.T) {
	t.Setenv("TMUX", "")
	var buf bytes.Buffer
	cb := NewOSC52(&buf)

	require.NoError(t, cb.WriteText(context.Background(), "0x00000000"))
	out := buf.String()
	assert.Contains(t, out, "\x1b]52;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("0x00000000")))

	_, err := cb.ReadText(context.Background())
	assert.ErrorIs(t, err, ErrWriteOnly)
}

func TestNone_AlwaysFails(t *testing.T) {
	var cb None
	err := cb.WriteText(context.Background(), "x")
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "write", ce.Op)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = cb.ReadText(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMemory(t *testing.T) {
	m := NewMemory("seed")
	got, err := m.ReadText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "seed", got)

	require.NoError(t, m.WriteText(context.Background(), "next"))
	assert.Equal(t, "next", m.Text())

	m.ReadErr = errors.New("permission denied")
	_, err = m.ReadText(context.Background())
	assert.EqualError(t, err, "memory read: permission denied")
}

func TestNew(t *testing.T) {
	for _, name := range []string{BackendSystem, BackendOSC52, BackendNone, BackendAuto} {
		cb, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, cb)
	}
	_, err := New("carrier-pigeon")
	assert.Error(t, err)
}
