package hwio

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry lookups.
var (
	// ErrNotFound indicates a lookup for a resource name with no
	// registered handle. Match with errors.Is; the concrete error is a
	// *NotFoundError carrying the name and registry type.
	ErrNotFound = errors.New("resource not found")

	// ErrNoClaimer indicates a claiming registry was constructed without
	// a Claimer. Use WithClaimer when instantiating with the Claiming
	// policy.
	ErrNoClaimer = errors.New("claiming registry has no claimer")
)

// Sentinel errors for interface management.
var (
	// ErrInterfaceNotFound indicates a Manager lookup for an interface
	// type that was never registered.
	ErrInterfaceNotFound = errors.New("hardware interface not found")
)

// NotFoundError reports a lookup for an unregistered resource name.
// It carries the requested name and the concrete registry type so the
// message can distinguish, for example, a missing joint-state handle
// from a missing joint-command handle.
type NotFoundError struct {
	// Resource is the requested resource name.
	Resource string
	// Interface is the concrete registry type identity.
	Interface string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find resource %q in %s", e.Resource, e.Interface)
}

// Unwrap returns ErrNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
