package hwio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/hwio/pkg/hwio"
	"github.com/randalmurphal/hwio/pkg/hwio/claims"
	"github.com/randalmurphal/hwio/pkg/hwio/config"
	"github.com/randalmurphal/hwio/pkg/hwio/joint"
)

// TestLayoutToControlLoop walks the full path a robot takes at startup:
// load a layout file, populate the interfaces, hand them to a manager,
// then run controller-style lookups with exclusive command claims and a
// persistent claim journal.
func TestLayoutToControlLoop(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "diffbot.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(`
robot: diffbot
joints:
  - name: wheel_left
    command: velocity
    params:
      reduction: 30
  - name: wheel_right
    command: velocity
    params:
      reduction: 30
  - name: caster_swivel
`), 0o644))

	layout, err := config.FromFile(layoutPath)
	require.NoError(t, err)
	assert.Equal(t, "diffbot", layout.Robot)

	journal, err := claims.NewSQLiteStore(filepath.Join(dir, "claims.db"))
	require.NoError(t, err)
	defer journal.Close()

	rec := claims.NewRecorder(
		claims.WithOwner("base_controller"),
		claims.WithJournal(journal),
	)

	// Initialization phase: build handles over driver storage, register
	// them, and expose the interfaces through a manager.
	data := joint.NewData(layout.JointNames())
	states := joint.NewStateInterface()
	cmds := joint.NewCommandInterface(rec)
	require.NoError(t, joint.Populate(layout, data, states, cmds))

	m := hwio.NewManager()
	m.RegisterInterface(states)
	m.RegisterInterface(cmds)
	assert.Len(t, m.InterfaceNames(), 2)

	// Controller startup: fetch interfaces by type, claim the wheels.
	gotCmds, err := hwio.GetInterface[*joint.CommandInterface](m)
	require.NoError(t, err)

	left, err := gotCmds.Get("wheel_left")
	require.NoError(t, err)
	right, err := gotCmds.Get("wheel_right")
	require.NoError(t, err)
	assert.Equal(t, []string{"wheel_left", "wheel_right"}, rec.Claims())

	// The caster has no command handle.
	_, err = gotCmds.Get("caster_swivel")
	assert.ErrorIs(t, err, hwio.ErrNotFound)

	// A rival controller cannot take a held wheel.
	_, err = gotCmds.Get("wheel_left")
	assert.ErrorIs(t, err, claims.ErrAlreadyClaimed)

	// Control cycle: command through the handles, observe through state.
	left.SetCommand(1.2)
	right.SetCommand(-1.2)
	i, _ := data.Index("wheel_left")
	assert.Equal(t, 1.2, data.Command[i])

	gotStates, err := hwio.GetInterface[*joint.StateInterface](m)
	require.NoError(t, err)
	data.Velocity[i] = 1.19
	sh, err := gotStates.Get("wheel_left")
	require.NoError(t, err)
	assert.Equal(t, 1.19, sh.Velocity())

	// Shutdown: release and check the audit trail.
	require.NoError(t, rec.Release("wheel_left"))
	events, err := journal.Events("wheel_left")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, claims.ActionClaim, events[0].Action)
	assert.Equal(t, claims.ActionRelease, events[1].Action)
	assert.Equal(t, "base_controller", events[0].Owner)
}
