package prevet

import (
	"github.com/prevet-dev/prevet/domain/entities"
	"github.com/prevet-dev/prevet/domain/ports"
)

// Reachability fails when the probe reports the address unreachable. The
// probe itself is a collaborator; any non-true probe result counts as
// unreachable and the check does not retry.
type Reachability struct {
	prober  ports.Prober
	address string
	port    int
	err     *entities.ValidationError
}

// NewReachability creates the check for an address with no specific port.
func NewReachability(prober ports.Prober, address string) Reachability {
	return Reachability{prober: prober, address: address}
}

// WithPort returns a copy of the check that probes the given port.
func (v Reachability) WithPort(port int) Reachability {
	v.port = port
	return v
}

// WithError returns a copy of the check that attaches the given error
// instead of the default one.
func (v Reachability) WithError(err *entities.ValidationError) Reachability {
	v.err = err
	return v
}

// Validate implements Validator.
func (v Reachability) Validate(failFast bool) (Decision, error) {
	if v.prober.Probe(v.address, v.port) {
		return decide(nil, failFast)
	}
	err := v.err
	if err == nil {
		if v.port != 0 {
			err = entities.NewValidationErrorf("Address %s is not reachable on port %d.", v.address, v.port)
		} else {
			err = entities.NewValidationErrorf("Address %s is not reachable.", v.address)
		}
	}
	return decide(err, failFast)
}
