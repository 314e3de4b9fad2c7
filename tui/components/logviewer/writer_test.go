package logviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamWriterKeepsPartialLines(t *testing.T) {
	w := NewStreamWriter(nil, "exec")

	n, err := w.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "sec", w.buffer.String())

	_, err = w.Write([]byte("ond\n"))
	require.NoError(t, err)
	assert.Empty(t, w.buffer.String())
}

func TestModelStreamedLineDoesNotWait(t *testing.T) {
	m := sized(t)
	next, cmd := m.Update(LogLineMsg{Source: "exec", Line: "sector 63 ok"})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "sector 63 ok")
}
