package prevet

import (
	"strings"

	"github.com/prevet-dev/prevet/domain/entities"
)

// NonEmptyParam fails when the parameter is absent or, after trimming
// surrounding whitespace, has zero length.
type NonEmptyParam struct {
	param string
	err   *entities.ValidationError
}

// NewNonEmptyParam creates the check with the error to attach on failure.
// A nil err falls back to a generic required-parameter message.
func NewNonEmptyParam(param string, err *entities.ValidationError) NonEmptyParam {
	return NonEmptyParam{param: param, err: err}
}

// Validate implements Validator.
func (v NonEmptyParam) Validate(failFast bool) (Decision, error) {
	if strings.TrimSpace(v.param) != "" {
		return decide(nil, failFast)
	}
	err := v.err
	if err == nil {
		err = entities.NewValidationError("required parameter is missing or empty")
	}
	return decide(err, failFast)
}
