package claims

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/hwio/pkg/hwio/observability"
)

// Recorder tracks which resources are exclusively held. It implements
// hwio.Claimer, so it plugs directly into a Claiming registry:
//
//	rec := claims.NewRecorder(claims.WithOwner("arm_controller"))
//	cmds := hwio.New[joint.CommandHandle, hwio.Claiming](hwio.WithClaimer(rec))
//
// By default a claim for a held resource fails with ErrAlreadyClaimed;
// WithReentrant makes repeated claims idempotent instead. Recorder is safe
// for concurrent use, since claims may arrive from several controllers.
type Recorder struct {
	mu   sync.Mutex
	held map[string]struct{}

	owner     string
	reentrant bool
	journal   Store
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithOwner labels journal entries and log lines with the claiming party.
// Default: a random UUID.
func WithOwner(owner string) RecorderOption {
	return func(r *Recorder) {
		if owner != "" {
			r.owner = owner
		}
	}
}

// WithReentrant makes claiming an already-held resource succeed silently
// instead of failing with ErrAlreadyClaimed.
func WithReentrant() RecorderOption {
	return func(r *Recorder) {
		r.reentrant = true
	}
}

// WithJournal records every claim and release in the given store.
// Default: no journal.
func WithJournal(s Store) RecorderOption {
	return func(r *Recorder) {
		r.journal = s
	}
}

// WithLogger sets the logger for claim diagnostics.
// Default: slog.Default(). Pass nil to disable.
func WithLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder for claim counts.
// Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) RecorderOption {
	return func(r *Recorder) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithSpans sets the span manager used to trace claims.
// Default: observability.NoopSpanManager.
func WithSpans(sm observability.SpanManager) RecorderOption {
	return func(r *Recorder) {
		if sm != nil {
			r.spans = sm
		}
	}
}

// NewRecorder creates a claim recorder with no resources held.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		held:    make(map[string]struct{}),
		owner:   uuid.NewString(),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// Owner returns the label attached to this recorder's claims.
func (r *Recorder) Owner() string {
	return r.owner
}

// Claim implements hwio.Claimer. It marks name as held by this recorder's
// owner. Claiming a held resource fails with a *ClaimError wrapping
// ErrAlreadyClaimed unless the recorder is reentrant.
func (r *Recorder) Claim(name string) error {
	ctx, span := r.spans.StartClaimSpan(context.Background(), name)
	var err error
	defer func() { r.spans.EndSpanWithError(span, err) }()

	r.mu.Lock()
	_, held := r.held[name]
	if held && !r.reentrant {
		r.mu.Unlock()
		r.metrics.RecordClaim(ctx, name, true)
		observability.LogClaimDenied(r.logger, name, r.owner)
		err = &ClaimError{Resource: name, Owner: r.owner, Err: ErrAlreadyClaimed}
		return err
	}
	r.held[name] = struct{}{}
	r.mu.Unlock()

	if !held {
		if jerr := r.append(name, ActionClaim); jerr != nil {
			// An unjournaled claim must not be held.
			r.mu.Lock()
			delete(r.held, name)
			r.mu.Unlock()
			err = fmt.Errorf("journal claim: %w", jerr)
			return err
		}
	}

	r.metrics.RecordClaim(ctx, name, false)
	observability.LogClaim(r.logger, name, r.owner)
	return nil
}

// Release removes the claim on name. Releasing a resource that is not held
// fails with a *ClaimError wrapping ErrNotClaimed.
func (r *Recorder) Release(name string) error {
	r.mu.Lock()
	_, held := r.held[name]
	if !held {
		r.mu.Unlock()
		return &ClaimError{Resource: name, Owner: r.owner, Err: ErrNotClaimed}
	}
	delete(r.held, name)
	r.mu.Unlock()

	// A failed journal append must not resurrect the claim.
	if err := r.append(name, ActionRelease); err != nil {
		observability.LogJournalError(r.logger, name, "release", err)
	}

	observability.LogRelease(r.logger, name, r.owner)
	return nil
}

// Held reports whether name is currently claimed.
func (r *Recorder) Held(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.held[name]
	return ok
}

// Claims returns the names of all held resources, sorted.
func (r *Recorder) Claims() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.held))
	for name := range r.held {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset releases all claims without journaling, e.g. between control cycles
// when conflict checking starts over.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.held)
}

// append writes a journal event if a journal is configured.
func (r *Recorder) append(resource string, action Action) error {
	if r.journal == nil {
		return nil
	}
	return r.journal.Append(Event{
		ID:        uuid.NewString(),
		Resource:  resource,
		Owner:     r.owner,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}
