// Package hwio provides the identity and access-control layer between a
// robot's control loop and its hardware abstractions.
//
// The central type is Registry, a generic named-handle registry: it maps a
// unique resource name (a joint, sensor, or actuator identifier) to an opaque
// handle value. Concrete hardware interfaces (joint state, joint command) are
// built by instantiating Registry with their handle type.
//
// # Claim Policies
//
// Whether looking up a handle marks the underlying resource as exclusively
// held is selected at the type level, not per call. The second type parameter
// of Registry is a claim policy with two variants:
//
//	// Lookups do NOT claim the resource.
//	r := hwio.New[StateHandle, hwio.NonClaiming]()
//
//	// Lookups DO claim the resource through the configured Claimer.
//	r := hwio.New[CommandHandle, hwio.Claiming](hwio.WithClaimer(rec))
//
// A single registry instance therefore always behaves the same way with
// respect to claiming. What "claimed" means (exclusive, reentrant, journaled)
// is entirely up to the Claimer implementation; see the claims subpackage.
//
// # Concurrency
//
// Registry performs no internal locking and gives no guarantees under
// concurrent access. The intended usage is a non-concurrent initialization
// phase that calls Register, followed by lookups from a single control
// thread. Serialize access externally if that model does not fit.
//
// # Subpackages
//
//   - claims: claim tracking collaborators (in-memory recorder, audit journal
//     stores backed by memory or SQLite)
//   - joint: concrete joint state and command handles and their typed
//     interfaces
//   - config: YAML/JSON robot layout loading for registry population
//   - observability: slog helpers, OpenTelemetry metrics and tracing
package hwio
