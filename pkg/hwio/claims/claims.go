// Package claims provides claim-tracking collaborators for hwio registries.
//
// A Recorder implements hwio.Claimer: it marks resources as exclusively held
// and rejects claims for resources another party already holds. An optional
// journal (see Store) records every claim and release as an audit trail,
// either in memory or in SQLite.
package claims

import (
	"errors"
	"fmt"
)

// Sentinel errors for claim tracking.
var (
	// ErrAlreadyClaimed indicates a claim for a resource that is already
	// held. The concrete error is a *ClaimError.
	ErrAlreadyClaimed = errors.New("resource already claimed")

	// ErrNotClaimed indicates a release for a resource that is not held.
	ErrNotClaimed = errors.New("resource not claimed")

	// ErrStoreClosed indicates the journal store has been closed.
	ErrStoreClosed = errors.New("claim store closed")
)

// ClaimError reports a rejected claim or release.
type ClaimError struct {
	// Resource is the resource the operation targeted.
	Resource string
	// Owner is the party that attempted the operation.
	Owner string
	// Err is ErrAlreadyClaimed or ErrNotClaimed.
	Err error
}

// Error implements the error interface.
func (e *ClaimError) Error() string {
	return fmt.Sprintf("resource %q, owner %q: %v", e.Resource, e.Owner, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *ClaimError) Unwrap() error {
	return e.Err
}
