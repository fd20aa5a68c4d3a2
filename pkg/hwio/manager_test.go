package hwio

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Second handle type so the manager holds two distinct registry types.
type otherHandle struct {
	name string
}

func (h otherHandle) Name() string { return h.name }

func TestManagerRegisterAndGet(t *testing.T) {
	m := NewManager()

	states := New[testHandle, NonClaiming]()
	states.Register(testHandle{name: "shoulder"})
	cmds := New[otherHandle, Claiming](WithClaimer(&fakeClaimer{}))

	m.RegisterInterface(states)
	m.RegisterInterface(cmds)

	assert.Len(t, m.InterfaceNames(), 2)

	got, err := GetInterface[*Registry[testHandle, NonClaiming]](m)
	require.NoError(t, err)
	assert.Same(t, states, got)
	assert.Equal(t, []string{"shoulder"}, got.Names())

	gotCmds, err := GetInterface[*Registry[otherHandle, Claiming]](m)
	require.NoError(t, err)
	assert.Same(t, cmds, gotCmds)
}

func TestManagerGetMissing(t *testing.T) {
	m := NewManager()

	_, err := GetInterface[*Registry[testHandle, NonClaiming]](m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInterfaceNotFound)
	assert.Contains(t, err.Error(), "Registry")
}

func TestManagerDuplicateReplaces(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	first := New[testHandle, NonClaiming]()
	second := New[testHandle, NonClaiming]()
	second.Register(testHandle{name: "elbow"})

	m.RegisterInterface(first)
	m.RegisterInterface(second)

	assert.Len(t, m.InterfaceNames(), 1)
	assert.Contains(t, buf.String(), "WARN")

	got, err := GetInterface[*Registry[testHandle, NonClaiming]](m)
	require.NoError(t, err)
	assert.Same(t, second, got)
}
