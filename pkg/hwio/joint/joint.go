// Package joint provides concrete joint handles and their typed hwio
// interfaces.
//
// A StateHandle exposes a joint's position, velocity, and effort through
// pointers into driver-owned storage; a CommandHandle adds a command target.
// StateInterface lookups never claim the joint; CommandInterface lookups
// always do, so a controller that obtains a command handle holds the joint
// exclusively for the claim tracker in use.
package joint

import (
	"errors"
	"fmt"
)

// Sentinel errors for handle construction.
var (
	// ErrNilData indicates a handle was built over a nil data pointer.
	ErrNilData = errors.New("joint handle data pointer is nil")

	// ErrUnknownMode indicates a command mode outside position, velocity,
	// or effort.
	ErrUnknownMode = errors.New("unknown command mode")
)

// Mode selects which quantity a command handle drives.
type Mode string

// Command modes.
const (
	Position Mode = "position"
	Velocity Mode = "velocity"
	Effort   Mode = "effort"
)

// ParseMode converts a layout command string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Position, Velocity, Effort:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// StateHandle is a read-only view of one joint's state. The handle does not
// own the underlying storage; the pointers alias driver-owned values that
// the driver refreshes every control cycle. Handles are plain values and are
// copied in and out of registries.
type StateHandle struct {
	name string
	pos  *float64
	vel  *float64
	eff  *float64
}

// NewStateHandle builds a state handle over driver-owned storage.
// All three pointers must be non-nil.
func NewStateHandle(name string, pos, vel, eff *float64) (StateHandle, error) {
	if pos == nil || vel == nil || eff == nil {
		return StateHandle{}, fmt.Errorf("joint %q: %w", name, ErrNilData)
	}
	return StateHandle{name: name, pos: pos, vel: vel, eff: eff}, nil
}

// Name returns the joint's resource name.
func (h StateHandle) Name() string { return h.name }

// Position returns the current joint position.
func (h StateHandle) Position() float64 { return *h.pos }

// Velocity returns the current joint velocity.
func (h StateHandle) Velocity() float64 { return *h.vel }

// Effort returns the current joint effort.
func (h StateHandle) Effort() float64 { return *h.eff }

// CommandHandle is a StateHandle plus a writable command target. The mode is
// fixed at construction; a position-mode handle always commands position.
type CommandHandle struct {
	StateHandle
	cmd  *float64
	mode Mode
}

// NewCommandHandle builds a command handle on top of a state handle.
func NewCommandHandle(state StateHandle, cmd *float64, mode Mode) (CommandHandle, error) {
	if cmd == nil {
		return CommandHandle{}, fmt.Errorf("joint %q: %w", state.Name(), ErrNilData)
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return CommandHandle{}, fmt.Errorf("joint %q: %w", state.Name(), err)
	}
	return CommandHandle{StateHandle: state, cmd: cmd, mode: mode}, nil
}

// Mode returns the quantity this handle commands.
func (h CommandHandle) Mode() Mode { return h.mode }

// SetCommand sets the command target the driver will apply.
func (h CommandHandle) SetCommand(v float64) { *h.cmd = v }

// Command returns the current command target.
func (h CommandHandle) Command() float64 { return *h.cmd }
