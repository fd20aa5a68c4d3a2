/*
Package config loads robot resource layouts used to populate hwio registries
at startup.

# Layout Files

A layout names the robot and lists its joints. Each joint gets a state
handle; joints with a command mode additionally get a command handle.
Driver-specific parameters ride along untyped and are read through Params.

	robot: arm1
	joints:
	  - name: shoulder_pan
	    command: position
	    params:
	      reduction: 100
	      offset: 0.05
	  - name: wrist_imu_mount
	  - name: gripper
	    command: effort

Load a layout from YAML or JSON:

	layout, err := config.FromFile("robot.yaml")
	if err != nil {
	    log.Fatal(err)
	}

FromFile validates the layout: the robot name must be non-empty, joint names
must be non-empty and unique, and command modes must be one of "position",
"velocity", or "effort" (or absent).

# Parameters

Params wraps a joint's map[string]any and provides typed accessors that
handle missing keys and type mismatches gracefully by returning default
values:

	p := joint.ParamSet()
	reduction := p.Float("reduction", 1.0)
	settle := p.Duration("settle", 10*time.Millisecond)

Duration accepts strings parsed with time.ParseDuration or numbers
interpreted as seconds. Numeric accessors convert between int and float64
when the conversion is lossless.
*/
package config
