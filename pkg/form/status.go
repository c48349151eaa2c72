package form

// Status is the explicit per-field validation state. It distinguishes a field
// that has never been validated from one that was validated and passed, which
// the error mapping alone cannot express.
type Status uint8

const (
	StatusUnvalidated Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}

// statusStore holds derived validation state: current errors, touched and
// validating flags, and the per-field Status. A field has an entry in errors
// only while a rule failure is standing; absence means unvalidated or
// passing, which statuses disambiguates. The enclosing Form serializes
// access.
type statusStore struct {
	errors     map[string]ValidationError
	touched    map[string]bool
	validating map[string]bool
	statuses   map[string]Status
}

func newStatusStore() *statusStore {
	return &statusStore{
		errors:     make(map[string]ValidationError),
		touched:    make(map[string]bool),
		validating: make(map[string]bool),
		statuses:   make(map[string]Status),
	}
}

func (s *statusStore) setError(err ValidationError) {
	s.errors[err.Field] = err
	s.statuses[err.Field] = StatusInvalid
}

func (s *statusStore) markValid(name string) {
	delete(s.errors, name)
	s.statuses[name] = StatusValid
}

// reset returns the field to the unvalidated state, dropping any standing
// error. Used both on rule re-registration and on the optimistic clear that
// follows a user edit.
func (s *statusStore) reset(name string) {
	delete(s.errors, name)
	s.statuses[name] = StatusUnvalidated
}

func (s *statusStore) err(name string) (ValidationError, bool) {
	err, ok := s.errors[name]
	return err, ok
}

func (s *statusStore) setTouched(name string, touched bool) {
	s.touched[name] = touched
}

func (s *statusStore) isTouched(name string) bool {
	return s.touched[name]
}

func (s *statusStore) setValidating(name string, validating bool) {
	if validating {
		s.validating[name] = true
	} else {
		delete(s.validating, name)
	}
}

func (s *statusStore) isValidating(name string) bool {
	return s.validating[name]
}

func (s *statusStore) status(name string) Status {
	return s.statuses[name]
}

// isValid reports whether no field has a standing error. Fields that were
// never validated count as valid; callers needing the stricter notion should
// consult per-field statuses.
func (s *statusStore) isValid() bool {
	return len(s.errors) == 0
}

func (s *statusStore) delete(name string) {
	delete(s.errors, name)
	delete(s.touched, name)
	delete(s.validating, name)
	delete(s.statuses, name)
}

func (s *statusStore) errorsSnapshot() map[string]ValidationError {
	errs := make(map[string]ValidationError, len(s.errors))
	for name, err := range s.errors {
		errs[name] = err
	}
	return errs
}
