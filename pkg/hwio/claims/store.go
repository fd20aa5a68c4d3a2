package claims

import "time"

// Action identifies what a journal event records.
type Action string

// Journal event actions.
const (
	ActionClaim   Action = "claim"
	ActionRelease Action = "release"
)

// Event is one entry in the claim journal.
type Event struct {
	// ID uniquely identifies the event.
	ID string
	// Resource is the claimed or released resource name.
	Resource string
	// Owner is the party that performed the action.
	Owner string
	// Action is ActionClaim or ActionRelease.
	Action Action
	// Timestamp is when the action happened, in UTC.
	Timestamp time.Time
}

// Store persists claim journal events for auditing.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores an event. Events for the same resource are kept in
	// append order.
	Append(ev Event) error

	// Events returns all events for a resource in append order.
	// Returns an empty slice (not an error) if the resource has none.
	Events(resource string) ([]Event, error)

	// Close releases any resources (connections, files).
	Close() error
}
