package saf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// schema describes the raw document shape. Structural checks beyond field
// types and required keys are done by Model.Validate.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "nodes", "materials", "cross_sections", "members"],
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "x", "y", "z"],
        "properties": {
          "name": {"type": "string"},
          "x": {"type": "number"},
          "y": {"type": "number"},
          "z": {"type": "number"}
        }
      }
    },
    "materials": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type", "e"],
        "properties": {
          "name": {"type": "string"},
          "type": {"type": "string"},
          "e": {"type": "number"},
          "g": {"type": "number"},
          "density": {"type": "number"},
          "yield_strength": {"type": "number"}
        }
      }
    },
    "cross_sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "material", "profile"],
        "properties": {
          "name": {"type": "string"},
          "material": {"type": "string"},
          "profile": {"type": "string"},
          "color": {"type": "string"},
          "layer": {"type": "string"}
        }
      }
    },
    "members": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "beg_node", "end_node", "cross_section"],
        "properties": {
          "name": {"type": "string"},
          "beg_node": {"type": "string"},
          "end_node": {"type": "string"},
          "cross_section": {"type": "string"},
          "type": {"type": "string", "enum": ["beam", "column"]}
        }
      }
    }
  }
}`

// ValidateDocument checks a raw JSON document against the interchange
// schema, before any unmarshalling.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		msg := errs[0].String()
		if len(errs) > 1 {
			msg = fmt.Sprintf("%s (and %d more)", msg, len(errs)-1)
		}
		return errorf("document does not match schema: %s", msg)
	}
	return nil
}

// LoadFromFile reads, schema-checks, unmarshals and validates a model.
func LoadFromFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveToFile validates and writes a model as indented JSON.
func (m *Model) SaveToFile(path string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
