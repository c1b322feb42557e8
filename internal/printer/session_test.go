package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_HappyPath(t *testing.T) {
	s := NewSession()
	assert.Equal(t, SessionIdle, s.State())

	require.NoError(t, s.Begin())
	assert.Equal(t, SessionBuffering, s.State())

	s.Record(textLine(AlignLeft, SizeNormal, Style{}, "hello"))
	s.Record(feed(2))

	require.NoError(t, s.Commit())
	assert.Equal(t, SessionCommitted, s.State())
	assert.Len(t, s.Log(), 2)
}

func TestSession_Abort(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	require.NoError(t, s.Abort())
	assert.Equal(t, SessionAborted, s.State())
}

func TestSession_TerminalStatesRejectFurtherTransitions(t *testing.T) {
	committed := NewSession()
	require.NoError(t, committed.Begin())
	require.NoError(t, committed.Commit())
	assert.Error(t, committed.Begin())
	assert.Error(t, committed.Commit())
	assert.Error(t, committed.Abort())

	aborted := NewSession()
	require.NoError(t, aborted.Begin())
	require.NoError(t, aborted.Abort())
	assert.Error(t, aborted.Begin())
	assert.Error(t, aborted.Commit())
	assert.Error(t, aborted.Abort())
}

func TestSession_CannotCommitOrAbortBeforeBegin(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.Commit())
	assert.Error(t, s.Abort())
}

func TestSession_DoubleBegin(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin())
	assert.Error(t, s.Begin())
}
