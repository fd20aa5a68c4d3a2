package hwio

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/hwio/pkg/hwio/observability"
)

// Manager aggregates the hardware interfaces a robot exposes, keyed by their
// concrete Go type. A hardware abstraction registers one interface per kind
// (joint state, joint command, ...) during initialization; controllers
// retrieve the interface they need with GetInterface.
//
// Like Registry, Manager performs no internal locking: register during a
// single-threaded initialization phase, look up afterwards.
type Manager struct {
	interfaces map[string]any
	logger     *slog.Logger
}

// NewManager creates an empty interface manager.
func NewManager(opts ...Option) *Manager {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Manager{
		interfaces: make(map[string]any),
		logger:     o.logger,
	}
}

// RegisterInterface stores iface under its concrete type. Registering a
// second interface of the same type replaces the first and logs a warning,
// mirroring Registry's duplicate-handle behavior.
func (m *Manager) RegisterInterface(iface any) {
	key := fmt.Sprintf("%T", iface)
	_, replaced := m.interfaces[key]
	m.interfaces[key] = iface

	if replaced {
		observability.LogDuplicateHandle(m.logger, "hwio.Manager", key)
	}
}

// InterfaceNames returns the type identities of all registered interfaces.
// The order is not guaranteed.
func (m *Manager) InterfaceNames() []string {
	names := make([]string, 0, len(m.interfaces))
	for name := range m.interfaces {
		names = append(names, name)
	}
	return names
}

// GetInterface returns the registered interface of type T. T must be the
// concrete type that was registered, typically a registry pointer.
// Returns ErrInterfaceNotFound (wrapped with the requested type) if no
// interface of that type was registered.
//
// Example:
//
//	states, err := hwio.GetInterface[*joint.StateInterface](m)
func GetInterface[T any](m *Manager) (T, error) {
	var zero T
	key := fmt.Sprintf("%T", zero)

	v, ok := m.interfaces[key]
	if !ok {
		return zero, fmt.Errorf("%s: %w", key, ErrInterfaceNotFound)
	}

	iface, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s: %w", key, ErrInterfaceNotFound)
	}
	return iface, nil
}
