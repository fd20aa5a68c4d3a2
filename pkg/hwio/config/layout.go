package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout indicates a layout that fails validation.
// Concrete validation failures wrap it with details.
var ErrInvalidLayout = errors.New("invalid layout")

// Command modes a joint may declare.
const (
	ModePosition = "position"
	ModeVelocity = "velocity"
	ModeEffort   = "effort"
)

// Layout describes the named hardware resources of one robot.
type Layout struct {
	// Robot is the robot's name.
	Robot string `yaml:"robot" json:"robot"`

	// Joints lists the robot's joints. Every joint gets a state handle;
	// joints with a Command mode also get a command handle.
	Joints []Joint `yaml:"joints" json:"joints"`
}

// Joint describes one joint resource.
type Joint struct {
	// Name is the unique resource name.
	Name string `yaml:"name" json:"name"`

	// Command is the command mode ("position", "velocity", "effort"),
	// or empty for a read-only joint.
	Command string `yaml:"command,omitempty" json:"command,omitempty"`

	// Params carries driver-specific parameters. Read through ParamSet.
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// ParamSet returns the joint's parameters as a typed accessor.
func (j Joint) ParamSet() Params {
	return NewParams(j.Params)
}

// Validate checks the layout for structural errors: empty robot name,
// empty or duplicate joint names, unknown command modes.
func (l Layout) Validate() error {
	if l.Robot == "" {
		return fmt.Errorf("%w: robot name is empty", ErrInvalidLayout)
	}

	seen := make(map[string]struct{}, len(l.Joints))
	for i, j := range l.Joints {
		if j.Name == "" {
			return fmt.Errorf("%w: joint %d has no name", ErrInvalidLayout, i)
		}
		if _, dup := seen[j.Name]; dup {
			return fmt.Errorf("%w: duplicate joint name %q", ErrInvalidLayout, j.Name)
		}
		seen[j.Name] = struct{}{}

		switch j.Command {
		case "", ModePosition, ModeVelocity, ModeEffort:
		default:
			return fmt.Errorf("%w: joint %q has unknown command mode %q",
				ErrInvalidLayout, j.Name, j.Command)
		}
	}
	return nil
}

// JointNames returns the names of all joints in declaration order.
func (l Layout) JointNames() []string {
	names := make([]string, 0, len(l.Joints))
	for _, j := range l.Joints {
		names = append(names, j.Name)
	}
	return names
}
