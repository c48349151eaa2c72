package form

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/observe"
)

// Form is the controller for one logical form: a stable façade over the field
// store, the status store, and the validation engine. A Form is created once
// per logical form and lives for the form's lifetime; all field churn happens
// within it. All methods are safe for concurrent use.
type Form struct {
	id  string
	log *slog.Logger

	mu     sync.RWMutex
	fields *fieldStore
	status *statusStore

	revision uint64
	signal   *observe.Value[uint64]

	// validateMu serializes validation passes per controller so two
	// overlapping Validate calls cannot interleave writes to the status
	// store.
	validateMu sync.Mutex

	closeOnce sync.Once
	closed    chan struct{}
}

// Option configures a Form during construction.
type Option func(*config)

type config struct {
	initial Values
	log     *slog.Logger
	buffer  int
}

// WithInitialValues seeds the field store before the form is returned.
func WithInitialValues(values Values) Option {
	return func(c *config) {
		c.initial = values
	}
}

// WithLogger attaches a structured logger for debug-level tracing of
// mutations and validation outcomes. Nil loggers are ignored; the default
// discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSubscriberBuffer sets the channel buffer for revision subscribers
// created by Watch. Values below 1 are ignored.
func WithSubscriberBuffer(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.buffer = n
		}
	}
}

// New creates a Form controller.
func New(opts ...Option) *Form {
	cfg := &config{
		log:    slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)})),
		buffer: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &Form{
		id:     uuid.NewString(),
		log:    cfg.log,
		fields: newFieldStore(cfg.initial),
		status: newStatusStore(),
		signal: observe.NewValue(uint64(0), observe.WithBuffer(cfg.buffer)),
		closed: make(chan struct{}),
	}
	f.log = f.log.With(slog.String("form_id", f.id))
	return f
}

// ID returns the controller's unique identifier.
func (f *Form) ID() string {
	return f.id
}

// UpdateOption adjusts how a single UpdateField call behaves.
type UpdateOption func(*updateConfig)

type updateConfig struct {
	keepError bool
}

// KeepError preserves the field's standing error and status across the write.
// Without it, UpdateField optimistically clears the error so a stale message
// does not persist once the user edits the field.
func KeepError() UpdateOption {
	return func(c *updateConfig) {
		c.keepError = true
	}
}

// UpdateField writes a field value. Last write wins; intermediate values are
// not merged. Unless KeepError is given, the field's error is cleared and its
// status returns to unvalidated — an optimistic clear, not a re-validation.
func (f *Form) UpdateField(name string, value any, opts ...UpdateOption) {
	cfg := updateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f.mu.Lock()
	f.fields.setValue(name, value)
	if !cfg.keepError {
		f.status.reset(name)
	}
	rev := f.bumpLocked()
	f.mu.Unlock()

	f.publish(rev)
	f.log.Debug("field updated", slog.String("field", name), slog.Bool("keep_error", cfg.keepError))
}

// UpdateFieldRules replaces the field's rule chain wholesale and resets the
// field to unvalidated, so an error produced under the previous rule set
// cannot leak into the new one.
func (f *Form) UpdateFieldRules(name string, rules []Rule) {
	f.mu.Lock()
	f.fields.setRules(name, rules)
	f.status.reset(name)
	rev := f.bumpLocked()
	f.mu.Unlock()

	f.publish(rev)
	f.log.Debug("field rules updated", slog.String("field", name), slog.Int("rules", len(rules)))
}

// DeleteField removes the field from every mapping: value, rules, error,
// touched, validating, and status. Consumers never observe a partially
// deleted field.
func (f *Form) DeleteField(name string) {
	f.mu.Lock()
	f.fields.delete(name)
	f.status.delete(name)
	rev := f.bumpLocked()
	f.mu.Unlock()

	f.publish(rev)
	f.log.Debug("field deleted", slog.String("field", name))
}

// SetTouched marks whether the field has received a blur/interaction event.
// Views typically gate error display on this flag; the controller itself
// stores errors regardless of it.
func (f *Form) SetTouched(name string, touched bool) {
	f.mu.Lock()
	f.status.setTouched(name, touched)
	rev := f.bumpLocked()
	f.mu.Unlock()

	f.publish(rev)
}

// Values returns a copy of the current field values.
func (f *Form) Values() Values {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fields.snapshot()
}

// Value returns the field's current value, or nil for unknown fields.
func (f *Form) Value(name string) any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fields.value(name)
}

// Fields returns all registered field names in sorted order.
func (f *Form) Fields() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fields.names()
}

// Errors returns a copy of the current field errors, keyed by field name.
// Only fields with a standing error are present.
func (f *Form) Errors() map[string]ValidationError {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.errorsSnapshot()
}

// Err returns the field's standing error, if any.
func (f *Form) Err(name string) (ValidationError, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.err(name)
}

// Touched reports whether the field has received a blur/interaction event.
func (f *Form) Touched(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.isTouched(name)
}

// Validating reports whether a rule chain is currently in flight for the
// field.
func (f *Form) Validating(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.isValidating(name)
}

// Status returns the field's explicit validation state.
func (f *Form) Status(name string) Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.status(name)
}

// IsValid reports whether no field has a standing error. Fields never
// validated count as valid; use Status to distinguish them.
func (f *Form) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status.isValid()
}

// Revision returns the current revision counter. It advances exactly when
// observable state changes, so reactive consumers can cheaply detect staleness.
func (f *Form) Revision() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.revision
}

// Watch returns a stream of revision numbers, one per observable state
// change. The subscription ends when ctx is cancelled or the form is closed;
// slow consumers may miss intermediate revisions but always converge on the
// latest one they can keep up with.
func (f *Form) Watch(ctx context.Context) <-chan uint64 {
	return f.signal.Subscribe(ctx)
}

// ValidateAsync runs Validate on a separate goroutine and returns a future
// for its outcome. An abandoned future's validation still runs to completion;
// there is no cancellation of an in-flight pass beyond what ctx provides to
// individual rule checks.
func (f *Form) ValidateAsync(ctx context.Context, names ...string) *async.Future[Values] {
	return async.Go(ctx, func(ctx context.Context) (Values, error) {
		return f.Validate(ctx, names...)
	})
}

// Close shuts down change notification. Idempotent. State queries and
// mutations remain usable, but validation calls fail with ErrFormClosed and
// watchers are released.
func (f *Form) Close() {
	f.closeOnce.Do(func() {
		close(f.closed)
		f.signal.Close()
	})
}

func (f *Form) isClosed() bool {
	select {
	case <-f.closed:
		return true
	default:
		return false
	}
}

// bumpLocked advances the revision counter; callers hold f.mu. The counter
// wraps naturally on overflow, which consumers must treat as just another
// change.
func (f *Form) bumpLocked() uint64 {
	f.revision++
	return f.revision
}

func (f *Form) publish(rev uint64) {
	f.signal.Set(rev)
}
