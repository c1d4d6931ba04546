// Package profile loads, validates, and compiles validation profiles:
// YAML documents declaring named groups of checks to run against a target
// environment.
package profile

import (
	"os"

	"github.com/prevet-dev/prevet/application/config"
	"github.com/prevet-dev/prevet/domain/errors"
	"github.com/prevet-dev/prevet/domain/ports"
)

// Document is a parsed validation profile.
type Document struct {
	Groups []GroupSpec `yaml:"groups" json:"groups"`
}

// GroupSpec declares one named group of checks. Checks run in declaration
// order; that order carries through to the group's report.
type GroupSpec struct {
	Name   string          `yaml:"name" json:"name"`
	Checks []config.Config `yaml:"checks" json:"checks"`
}

// Load reads a profile document from disk, validates it against the
// profile schema, and parses it.
func Load(path string, p ports.ProfileParser) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ProfileError{Path: path, Err: err}
	}
	doc, err := Parse(data, p)
	if err != nil {
		if pe, ok := err.(*errors.ProfileError); ok && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse validates raw profile bytes against the profile schema and
// unmarshals them into a Document.
func Parse(data []byte, p ports.ProfileParser) (*Document, error) {
	// Validate the raw document first so typos in unknown fields surface
	// before they are silently dropped by struct decoding.
	var raw any
	if err := p.Parse(data, &raw); err != nil {
		return nil, &errors.ProfileError{Err: err}
	}
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := p.Parse(data, &doc); err != nil {
		return nil, &errors.ProfileError{Err: err}
	}
	return &doc, nil
}
