package setting

import "errors"

// ErrMalformed indicates the supplied context/domains do not match the
// network's signature: a variable is missing, or an unknown variable was
// supplied.
var ErrMalformed = errors.New("setting: malformed setting")

// ErrDomainViolation indicates a value - supplied in context or derived by
// an equation - is not a member of its variable's declared domain.
var ErrDomainViolation = errors.New("setting: value outside declared domain")
