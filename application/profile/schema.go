package profile

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/prevet-dev/prevet/domain/errors"
)

// documentSchema constrains the shape of a profile document. Check-level
// field validation happens at compile time; the schema pins the envelope
// and the known check types.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["groups"],
  "additionalProperties": false,
  "properties": {
    "groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "checks"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "checks": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["type"],
              "properties": {
                "type": {"enum": ["nonempty", "address", "reachable", "credential"]}
              }
            }
          }
        }
      }
    }
  }
}`

var compiledDocumentSchema = jsonschema.MustCompileString("profile.schema.json", documentSchema)

// ValidateDocument checks a decoded profile document against the profile
// schema. The document is normalized through JSON so YAML and JSON inputs
// validate identically.
func ValidateDocument(doc any) error {
	normalized, err := normalize(doc)
	if err != nil {
		return &errors.ProfileError{Err: err}
	}
	if err := compiledDocumentSchema.Validate(normalized); err != nil {
		return &errors.ProfileError{Err: err}
	}
	return nil
}

func normalize(doc any) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
