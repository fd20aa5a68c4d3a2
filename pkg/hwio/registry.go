package hwio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/hwio/pkg/hwio/observability"
)

// Handle is an opaque value representing one hardware resource.
// The only requirement on a handle type is that it exposes a name.
// Handles are copied into and out of registries (value semantics);
// callers receive an independent snapshot, not a shared reference.
type Handle interface {
	Name() string
}

// Claimer records that a resource is now exclusively held. It is invoked by
// registries instantiated with the Claiming policy, after the resource is
// confirmed present and before the handle is returned. Whether claiming an
// already-held resource is an error, idempotent, or queued is decided by the
// implementation; any error it returns propagates unchanged to the Get caller.
type Claimer interface {
	Claim(name string) error
}

// Policy selects, at the type level, whether Get claims the resource.
// The two implementations are Claiming and NonClaiming; the interface is
// sealed so no others can exist.
type Policy interface {
	claim(c Claimer, name string) error
}

// Claiming makes Get call the registry's Claimer for every successful lookup.
type Claiming struct{}

func (Claiming) claim(c Claimer, name string) error {
	if c == nil {
		return ErrNoClaimer
	}
	return c.Claim(name)
}

// NonClaiming makes Get a pure lookup; the Claimer is never invoked.
type NonClaiming struct{}

func (NonClaiming) claim(Claimer, string) error { return nil }

// Registry maps resource names to handles of type H. The claim policy P is
// fixed per instance: a Registry[H, Claiming] always claims on Get, a
// Registry[H, NonClaiming] never does.
//
// Registry is NOT safe for concurrent use. Populate it during a
// single-threaded initialization phase, then look handles up from one
// control thread.
type Registry[H Handle, P Policy] struct {
	handles map[string]H
	claimer Claimer
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// New creates an empty registry for handle type H under claim policy P.
//
// Example:
//
//	states := hwio.New[joint.StateHandle, hwio.NonClaiming]()
//	cmds := hwio.New[joint.CommandHandle, hwio.Claiming](hwio.WithClaimer(rec))
func New[H Handle, P Policy](opts ...Option) *Registry[H, P] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Registry[H, P]{
		handles: make(map[string]H),
		claimer: o.claimer,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Register stores a handle under its name. If a handle with the same name is
// already registered, the stored value is replaced and a warning is logged
// identifying the resource and the concrete registry type. Register never
// fails; an empty name is a valid key like any other.
func (r *Registry[H, P]) Register(h H) {
	name := h.Name()
	_, replaced := r.handles[name]
	r.handles[name] = h

	if replaced {
		observability.LogDuplicateHandle(r.logger, r.typeID(), name)
	}
	r.metrics.RecordRegistration(context.Background(), r.typeID(), replaced)
}

// Get returns a copy of the handle registered under name.
//
// If no handle is registered under name, Get returns a *NotFoundError
// (errors.Is-matchable against ErrNotFound) carrying the name and the
// concrete registry type.
//
// Under the Claiming policy, Get additionally calls the Claimer after the
// name is confirmed present and before returning; any error from the
// Claimer propagates unchanged.
func (r *Registry[H, P]) Get(name string) (H, error) {
	start := time.Now()

	h, ok := r.handles[name]
	r.metrics.RecordLookup(context.Background(), r.typeID(), ok, time.Since(start))
	if !ok {
		observability.LogLookupMiss(r.logger, r.typeID(), name)
		var zero H
		return zero, &NotFoundError{Resource: name, Interface: r.typeID()}
	}

	var policy P
	if err := policy.claim(r.claimer, name); err != nil {
		var zero H
		return zero, err
	}

	return h, nil
}

// Names returns the names of all registered resources, each exactly once.
// The order is not guaranteed; callers must not rely on it.
func (r *Registry[H, P]) Names() []string {
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered resources.
func (r *Registry[H, P]) Len() int {
	return len(r.handles)
}

// typeID identifies the concrete registry instantiation in diagnostics.
func (r *Registry[H, P]) typeID() string {
	return fmt.Sprintf("%T", r)
}
