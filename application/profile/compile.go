package profile

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/prevet-dev/prevet"
	"github.com/prevet-dev/prevet/application/config"
	"github.com/prevet-dev/prevet/domain/entities"
	"github.com/prevet-dev/prevet/domain/errors"
	"github.com/prevet-dev/prevet/domain/ports"
)

// validate is a package-level singleton; creating a validator per call is
// expensive and reusing one is the library's recommendation.
var validate = validator.New()

// Dependencies holds the collaborators compiled checks delegate to.
type Dependencies struct {
	// Prober backs "reachable" checks. Required when the profile uses them.
	Prober ports.Prober

	// Credentials backs "credential" checks. Required when the profile
	// uses them.
	Credentials ports.CredentialChecker

	// Prompter, when set and interactive, supplies credentials that a
	// "credential" check omits from the profile.
	Prompter ports.CredentialPrompter
}

// CompiledGroup is a named, ordered list of ready-to-run checks.
type CompiledGroup struct {
	Name   string
	Checks []prevet.Validator
}

// Compile turns a validated profile document into runnable check groups.
// Checks are constructed but not executed.
func Compile(doc *Document, deps Dependencies) ([]CompiledGroup, error) {
	groups := make([]CompiledGroup, 0, len(doc.Groups))
	for _, spec := range doc.Groups {
		cg := CompiledGroup{Name: spec.Name, Checks: make([]prevet.Validator, 0, len(spec.Checks))}
		for i, check := range spec.Checks {
			v, err := compileCheck(check, deps)
			if err != nil {
				return nil, fmt.Errorf("group %q check %d: %w", spec.Name, i, err)
			}
			cg.Checks = append(cg.Checks, v)
		}
		groups = append(groups, cg)
	}
	return groups, nil
}

func compileCheck(cfg config.Config, deps Dependencies) (prevet.Validator, error) {
	typ, err := config.MustGetString(cfg, "type")
	if err != nil {
		return nil, err
	}

	switch typ {
	case "nonempty":
		return compileNonEmpty(cfg)
	case "address":
		return compileAddress(cfg)
	case "reachable":
		return compileReachable(cfg, deps)
	case "credential":
		return compileCredential(cfg, deps)
	default:
		return nil, &errors.ConfigError{
			Field: "type",
			Err:   fmt.Errorf("unknown check type %q", typ),
		}
	}
}

func compileNonEmpty(cfg config.Config) (prevet.Validator, error) {
	name, err := config.MustGetString(cfg, "name")
	if err != nil {
		return nil, err
	}
	param := config.GetStringDefault(cfg, "param", "")
	checkErr := entities.NewValidationErrorf("Parameter %s must not be empty.", name)
	if msg := config.GetStringDefault(cfg, "message", ""); msg != "" {
		checkErr = entities.NewValidationError(msg)
	}
	return prevet.NewNonEmptyParam(param, checkErr), nil
}

func compileAddress(cfg config.Config) (prevet.Validator, error) {
	address, err := config.MustGetString(cfg, "address")
	if err != nil {
		return nil, err
	}
	check := prevet.NewAddressFormat(address)
	if msg := config.GetStringDefault(cfg, "message", ""); msg != "" {
		check = check.WithError(entities.NewValidationError(msg))
	}
	return check, nil
}

// reachableConfig carries the "reachable" check fields; tags document the
// accepted ranges and drive struct validation.
type reachableConfig struct {
	Type    string `json:"type" validate:"required"`
	Host    string `json:"host" validate:"required"`
	Port    int    `json:"port" validate:"omitempty,min=1,max=65535"`
	Message string `json:"message"`
}

func compileReachable(cfg config.Config, deps Dependencies) (prevet.Validator, error) {
	if deps.Prober == nil {
		return nil, &errors.ConfigError{
			Field: "type",
			Err:   fmt.Errorf("profile uses reachable checks but no prober is configured"),
		}
	}

	var rc reachableConfig
	if err := decodeCheckConfig(cfg, &rc); err != nil {
		return nil, err
	}

	check := prevet.NewReachability(deps.Prober, rc.Host)
	if rc.Port != 0 {
		check = check.WithPort(rc.Port)
	}
	if rc.Message != "" {
		check = check.WithError(entities.NewValidationError(rc.Message))
	}
	return check, nil
}

// credentialConfig carries the "credential" check fields. Username and
// password may be omitted together when an interactive prompter supplies
// them at compile time.
type credentialConfig struct {
	Type     string `json:"type" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
	Realm    string `json:"realm"`
	Message  string `json:"message"`
}

func compileCredential(cfg config.Config, deps Dependencies) (prevet.Validator, error) {
	if deps.Credentials == nil {
		return nil, &errors.ConfigError{
			Field: "type",
			Err:   fmt.Errorf("profile uses credential checks but no credential checker is configured"),
		}
	}

	var cc credentialConfig
	if err := decodeCheckConfig(cfg, &cc); err != nil {
		return nil, err
	}

	if cc.Username == "" && cc.Password == "" {
		if deps.Prompter == nil || !deps.Prompter.IsInteractive() {
			return nil, &errors.ConfigError{
				Field: "username",
				Err:   fmt.Errorf("credential check omits username/password and no interactive prompter is available"),
			}
		}
		realm := cc.Realm
		if realm == "" {
			realm = "target"
		}
		username, password, err := deps.Prompter.PromptForCredentials(realm)
		if err != nil {
			return nil, &errors.ConfigError{Field: "username", Err: err}
		}
		cc.Username, cc.Password = username, password
	}

	check := prevet.NewCredential(deps.Credentials, cc.Username, cc.Password)
	if cc.Message != "" {
		check = check.WithError(entities.NewValidationError(cc.Message))
	}
	return check, nil
}

// decodeCheckConfig maps a config into a typed struct through JSON, then
// runs struct-tag validation on the result.
func decodeCheckConfig(cfg config.Config, target any) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return &errors.ConfigError{Err: err}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &errors.ConfigError{Err: err}
	}
	if err := validate.Struct(target); err != nil {
		return &errors.ConfigError{Err: err}
	}
	return nil
}
