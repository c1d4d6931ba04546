package prevet

import (
	"github.com/go-playground/validator/v10"

	"github.com/prevet-dev/prevet/domain/entities"
)

// validate is a package-level singleton; creating a validator per call is
// expensive and reusing one is the library's recommendation.
var validate = validator.New()

// AddressFormat fails when the address does not parse as an IPv4 or IPv6
// literal.
type AddressFormat struct {
	address string
	err     *entities.ValidationError
}

// NewAddressFormat creates the check with the default error message,
// which embeds the offending address.
func NewAddressFormat(address string) AddressFormat {
	return AddressFormat{address: address}
}

// WithError returns a copy of the check that attaches the given error
// instead of the default one.
func (v AddressFormat) WithError(err *entities.ValidationError) AddressFormat {
	v.err = err
	return v
}

// Validate implements Validator.
func (v AddressFormat) Validate(failFast bool) (Decision, error) {
	if validate.Var(v.address, "required,ip") == nil {
		return decide(nil, failFast)
	}
	err := v.err
	if err == nil {
		err = entities.NewValidationErrorf("IP %s is invalid.", v.address)
	}
	return decide(err, failFast)
}
