package joint

import (
	"fmt"

	"github.com/randalmurphal/hwio/pkg/hwio"
	"github.com/randalmurphal/hwio/pkg/hwio/config"
)

// StateInterface registers and looks up joint state handles.
// Lookups never claim the joint.
type StateInterface = hwio.Registry[StateHandle, hwio.NonClaiming]

// CommandInterface registers and looks up joint command handles.
// Every successful lookup claims the joint through the configured Claimer.
type CommandInterface = hwio.Registry[CommandHandle, hwio.Claiming]

// NewStateInterface creates an empty joint state interface.
func NewStateInterface(opts ...hwio.Option) *StateInterface {
	return hwio.New[StateHandle, hwio.NonClaiming](opts...)
}

// NewCommandInterface creates an empty joint command interface claiming
// through c.
func NewCommandInterface(c hwio.Claimer, opts ...hwio.Option) *CommandInterface {
	opts = append([]hwio.Option{hwio.WithClaimer(c)}, opts...)
	return hwio.New[CommandHandle, hwio.Claiming](opts...)
}

// Data is the driver-owned storage block the handles point into. The driver
// writes Position/Velocity/Effort and reads Command each control cycle;
// handles alias individual elements. Slices must not be reallocated after
// handles are built over them.
type Data struct {
	Position []float64
	Velocity []float64
	Effort   []float64
	Command  []float64

	index map[string]int
}

// NewData allocates storage for the named joints, in order.
func NewData(names []string) *Data {
	n := len(names)
	d := &Data{
		Position: make([]float64, n),
		Velocity: make([]float64, n),
		Effort:   make([]float64, n),
		Command:  make([]float64, n),
		index:    make(map[string]int, n),
	}
	for i, name := range names {
		d.index[name] = i
	}
	return d
}

// Index returns the storage slot for a joint name.
func (d *Data) Index(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Populate builds handles over d for every joint in the layout and registers
// them: a state handle per joint, plus a command handle for joints that
// declare a command mode. cmds may be nil when the layout has no commanded
// joints.
func Populate(l config.Layout, d *Data, states *StateInterface, cmds *CommandInterface) error {
	for _, j := range l.Joints {
		i, ok := d.Index(j.Name)
		if !ok {
			return fmt.Errorf("joint %q has no storage slot", j.Name)
		}

		state, err := NewStateHandle(j.Name, &d.Position[i], &d.Velocity[i], &d.Effort[i])
		if err != nil {
			return err
		}
		states.Register(state)

		if j.Command == "" {
			continue
		}
		if cmds == nil {
			return fmt.Errorf("joint %q declares a command mode but no command interface was given", j.Name)
		}
		mode, err := ParseMode(j.Command)
		if err != nil {
			return fmt.Errorf("joint %q: %w", j.Name, err)
		}
		cmd, err := NewCommandHandle(state, &d.Command[i], mode)
		if err != nil {
			return err
		}
		cmds.Register(cmd)
	}
	return nil
}
