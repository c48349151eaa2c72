package form

import "context"

// Field is a per-field view over a Form: it exposes one field's value, error,
// and interaction state, and funnels edits back into the controller. Bind
// registers the field's rule chain first and sets its initial value second,
// so the rule-registration reset cannot clobber state derived from the value
// write.
type Field struct {
	form            *Form
	name            string
	destroyOnDetach bool
	validateOnBlur  bool
}

// FieldOption configures a binding created by Bind.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	rules           []Rule
	initial         any
	destroyOnDetach bool
	validateOnBlur  bool
}

// WithRules sets the field's rule chain, replacing any chain registered by a
// previous binding of the same name.
func WithRules(rules ...Rule) FieldOption {
	return func(c *fieldConfig) {
		c.rules = rules
	}
}

// WithInitialValue sets the value written when the binding attaches. Without
// it the binding materializes the field with a nil value.
func WithInitialValue(value any) FieldOption {
	return func(c *fieldConfig) {
		c.initial = value
	}
}

// DestroyOnDetach removes the field's state from the form when the binding
// detaches. Without it the value survives detachment, which is what lets
// multi-step forms re-mount fields without losing input.
func DestroyOnDetach() FieldOption {
	return func(c *fieldConfig) {
		c.destroyOnDetach = true
	}
}

// ValidateOnBlur runs the field's rule chain whenever Blur is called.
func ValidateOnBlur() FieldOption {
	return func(c *fieldConfig) {
		c.validateOnBlur = true
	}
}

// Bind attaches a field to the form and returns its binding. Binding with an
// empty name is a programming error and panics; so is binding on a nil form.
func (f *Form) Bind(name string, opts ...FieldOption) *Field {
	if f == nil {
		panic("form: Bind called on a nil form")
	}
	if name == "" {
		panic("form: Bind requires a non-empty field name")
	}

	cfg := fieldConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Rules first, then the value: registering rules resets the field's
	// error and status, so the order matters.
	f.UpdateFieldRules(name, cfg.rules)
	f.UpdateField(name, cfg.initial)

	return &Field{
		form:            f,
		name:            name,
		destroyOnDetach: cfg.destroyOnDetach,
		validateOnBlur:  cfg.validateOnBlur,
	}
}

// Name returns the bound field's name.
func (fd *Field) Name() string {
	return fd.name
}

// Value returns the field's current value.
func (fd *Field) Value() any {
	return fd.form.Value(fd.name)
}

// Err returns the field's standing error, if any.
func (fd *Field) Err() (ValidationError, bool) {
	return fd.form.Err(fd.name)
}

// Touched reports whether the field has received a blur event.
func (fd *Field) Touched() bool {
	return fd.form.Touched(fd.name)
}

// Validating reports whether the field's rule chain is in flight.
func (fd *Field) Validating() bool {
	return fd.form.Validating(fd.name)
}

// Status returns the field's explicit validation state.
func (fd *Field) Status() Status {
	return fd.form.Status(fd.name)
}

// SetValue writes the value through to the controller, clearing any standing
// error for the field.
func (fd *Field) SetValue(value any) {
	fd.form.UpdateField(fd.name, value)
}

// Blur marks the field touched and, when the binding was created with
// ValidateOnBlur, runs its rule chain. The returned error is the validation
// outcome; it is nil when no on-blur validation is configured.
func (fd *Field) Blur(ctx context.Context) error {
	fd.form.SetTouched(fd.name, true)
	if !fd.validateOnBlur {
		return nil
	}
	_, err := fd.Validate(ctx)
	return err
}

// Validate runs this field's rule chain on demand and returns the validated
// value on success.
func (fd *Field) Validate(ctx context.Context) (any, error) {
	values, err := fd.form.ValidateFields(ctx, []string{fd.name})
	if err != nil {
		return nil, err
	}
	return values[fd.name], nil
}

// Detach ends the binding. With DestroyOnDetach the field's state is removed
// from the form; otherwise the value stays put for a later re-bind.
func (fd *Field) Detach() {
	if fd.destroyOnDetach {
		fd.form.DeleteField(fd.name)
	}
}
