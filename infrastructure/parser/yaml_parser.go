// Package parser provides profile document parsers.
package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/prevet-dev/prevet/domain/ports"
)

// YAMLProfileParser implements ports.ProfileParser for YAML documents.
type YAMLProfileParser struct{}

// NewYAMLProfileParser creates a new YAMLProfileParser.
func NewYAMLProfileParser() ports.ProfileParser {
	return &YAMLProfileParser{}
}

// Parse unmarshals YAML bytes into the target value.
func (p *YAMLProfileParser) Parse(data []byte, target any) error {
	return yaml.Unmarshal(data, target)
}
