package form

import (
	"context"
	"log/slog"
)

// Validate runs the rule chains for the named fields, or for every field in
// the value store when no names are given. Fields run sequentially in the
// order given (sorted order when defaulted); within a field, rules run in
// registration order against the field's current value, re-read before each
// check so an edit made while an asynchronous check is in flight is seen by
// the next rule.
//
// The first failing rule anywhere in the batch stores its ValidationError,
// aborts the remaining fields, and is returned as the call's error. Fields
// with no registered rules pass trivially and are excluded from the result.
// On success the returned Values holds the validated value of every field
// that had at least one rule.
func (f *Form) Validate(ctx context.Context, names ...string) (Values, error) {
	targets := names
	if len(targets) == 0 {
		f.mu.RLock()
		targets = f.fields.names()
		f.mu.RUnlock()
	}
	return f.runValidation(ctx, targets, false)
}

// ValidateFields validates exactly the given fields: an empty slice validates
// nothing and returns an empty Values. Validate is the variant that treats an
// empty target list as "all fields".
func (f *Form) ValidateFields(ctx context.Context, names []string) (Values, error) {
	return f.runValidation(ctx, names, false)
}

// ValidateAll is the collect-all-errors variant of Validate: every target
// field is evaluated even when an earlier one fails, and all failures are
// returned together as ValidationErrors. Per field, the first failing rule
// still wins. Infrastructure failures of a rule check abort immediately.
func (f *Form) ValidateAll(ctx context.Context, names ...string) (Values, error) {
	targets := names
	if len(targets) == 0 {
		f.mu.RLock()
		targets = f.fields.names()
		f.mu.RUnlock()
	}
	return f.runValidation(ctx, targets, true)
}

// runValidation is the validation engine. Passes are serialized per
// controller by validateMu so overlapping calls cannot interleave their
// writes to the status store; a second call simply waits its turn.
func (f *Form) runValidation(ctx context.Context, targets []string, collectAll bool) (Values, error) {
	if f.isClosed() {
		return nil, ErrFormClosed
	}

	f.validateMu.Lock()
	defer f.validateMu.Unlock()

	result := make(Values, len(targets))
	var failures ValidationErrors

	for _, name := range targets {
		f.mu.RLock()
		chain := f.fields.ruleChain(name)
		f.mu.RUnlock()

		// Rule-less fields pass trivially but contribute nothing.
		if len(chain) == 0 {
			continue
		}

		verr, err := f.validateChain(ctx, name, chain)
		if err != nil {
			// Infrastructure failure of a check: propagated unchanged,
			// not stored, not retried.
			return nil, err
		}
		if verr != nil {
			if !collectAll {
				return nil, *verr
			}
			failures = append(failures, *verr)
			continue
		}

		f.mu.RLock()
		result[name] = f.fields.value(name)
		f.mu.RUnlock()
	}

	if len(failures) > 0 {
		return nil, failures
	}
	return result, nil
}

// validateChain runs one field's rule chain. The validating flag covers the
// whole pass and is cleared on every exit path. A rule failure is stored in
// the status store exactly once and returned for the caller to surface; it is
// never raised twice.
func (f *Form) validateChain(ctx context.Context, name string, chain []Rule) (*ValidationError, error) {
	f.setValidating(name, true)

	for _, rule := range chain {
		f.mu.RLock()
		value := f.fields.value(name)
		f.mu.RUnlock()

		ok, err := rule.Check(ctx, value)
		if err != nil {
			f.setValidating(name, false)
			return nil, err
		}
		if !ok {
			verr := rule.failure(name, value)

			f.mu.Lock()
			f.status.setError(verr)
			f.status.setValidating(name, false)
			rev := f.bumpLocked()
			f.mu.Unlock()
			f.publish(rev)

			f.log.Debug("field failed validation",
				slog.String("field", name),
				slog.String("message", verr.Message))
			return &verr, nil
		}
	}

	f.mu.Lock()
	f.status.markValid(name)
	f.status.setValidating(name, false)
	rev := f.bumpLocked()
	f.mu.Unlock()
	f.publish(rev)

	f.log.Debug("field passed validation", slog.String("field", name))
	return nil, nil
}

func (f *Form) setValidating(name string, validating bool) {
	f.mu.Lock()
	f.status.setValidating(name, validating)
	rev := f.bumpLocked()
	f.mu.Unlock()
	f.publish(rev)
}
