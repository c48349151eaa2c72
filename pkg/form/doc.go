// Package form implements a renderer-agnostic form state and validation
// engine: field values, per-field rule chains, asynchronous rule execution,
// error and touched/validating tracking, and a revision-based change signal
// for reactive consumers.
//
// # Architecture
//
// A Form controller owns all state for one logical form. It composes three
// internal pieces: a field store (values and rule chains), a status store
// (errors, touched, validating, and an explicit per-field validation status),
// and the validation engine that runs rule chains sequentially with
// first-failure short-circuiting. Field bindings created with Bind give each
// rendered input a narrow view over one field.
//
// Core building blocks:
//   - Form             – controller façade; one per logical form
//   - Rule / CheckFunc – one validation rule; checks may block
//   - ValidationError  – a single field failure, carrying the offending value
//   - Field            – per-field binding with write-through edits
//   - Status           – tri-state unvalidated/valid/invalid per field
//
// # Usage
//
//	f := form.New(form.WithInitialValues(form.Values{"email": ""}))
//	defer f.Close()
//
//	f.UpdateFieldRules("email", []form.Rule{rules.Required(), rules.Email()})
//
//	if _, err := f.Validate(ctx); err != nil {
//	    if verr, ok := form.AsValidationError(err); ok {
//	        // show verr.Message next to verr.Field
//	    }
//	}
//
// # Concurrency
//
// All Form methods are safe for concurrent use. Validation passes are
// serialized per controller, so overlapping Validate calls queue instead of
// interleaving their status writes. There is no cancellation of an in-flight
// pass and no timeout: a hung rule check hangs its Validate call, so checks
// should bound their own latency through the context they receive.
//
// # Error Handling
//
// Rule failures are stored once in the controller and surfaced once as the
// validation call's error, either a single ValidationError (Validate) or an
// aggregated ValidationErrors (ValidateAll). Infrastructure failures of a
// check propagate unchanged and are never stored as field errors. Misuse,
// such as binding an empty field name, panics.
package form
