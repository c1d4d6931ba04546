package prevet

import (
	"github.com/prevet-dev/prevet/domain/entities"
	"github.com/prevet-dev/prevet/domain/ports"
)

// Credential fails when the credential check collaborator reports the
// username/password pair invalid. Any non-true result counts as invalid
// and the check does not retry.
type Credential struct {
	checker  ports.CredentialChecker
	username string
	password string
	err      *entities.ValidationError
}

// NewCredential creates the check for the given pair.
func NewCredential(checker ports.CredentialChecker, username, password string) Credential {
	return Credential{checker: checker, username: username, password: password}
}

// WithError returns a copy of the check that attaches the given error
// instead of the default one.
func (v Credential) WithError(err *entities.ValidationError) Credential {
	v.err = err
	return v
}

// Validate implements Validator.
func (v Credential) Validate(failFast bool) (Decision, error) {
	if v.checker.Check(v.username, v.password) {
		return decide(nil, failFast)
	}
	err := v.err
	if err == nil {
		err = entities.NewValidationErrorf("Credentials for user %s are invalid.", v.username)
	}
	return decide(err, failFast)
}
