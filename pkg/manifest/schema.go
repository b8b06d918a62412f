package manifest

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/matzehuels/mermaid/pkg/errors"
)

// manifestSchemaJSON is the JSON Schema for manifest validation.
// Embedded as a constant to avoid filesystem dependencies. Enum sets that
// are large or flavor-specific (shapes, themes, arrow names) are left as
// free strings here; Build reports those with precise messages.
const manifestSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://matzehuels.github.io/mermaid/schemas/manifest.json",
  "type": "object",
  "required": ["kind"],
  "properties": {
    "kind": {
      "type": "string",
      "enum": ["flowchart", "class", "er"]
    },
    "name": { "type": "string" },
    "config": { "$ref": "#/$defs/config" },
    "classes": {
      "type": "array",
      "items": { "$ref": "#/$defs/class" }
    },
    "nodes": {
      "type": "array",
      "items": { "$ref": "#/$defs/node" }
    },
    "edges": {
      "type": "array",
      "items": { "$ref": "#/$defs/edge" }
    }
  },
  "additionalProperties": false,
  "$defs": {
    "config": {
      "type": "object",
      "properties": {
        "title": { "type": "string" },
        "direction": { "type": "string" },
        "renderer": { "type": "string", "enum": ["dagre", "elk"] },
        "theme": { "type": "string" },
        "look": { "type": "string" },
        "html_labels": { "type": "boolean" },
        "markdown_auto_wrap": { "type": "boolean" },
        "curve": { "type": "string" },
        "hide_empty_members_box": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "class": {
      "type": "object",
      "required": ["name", "styles"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "styles": {
          "type": "array",
          "minItems": 1,
          "items": { "$ref": "#/$defs/style" }
        }
      },
      "additionalProperties": false
    },
    "style": {
      "type": "object",
      "required": ["property", "value"],
      "properties": {
        "property": { "type": "string", "minLength": 1 },
        "value": { "type": "string" }
      },
      "additionalProperties": false
    },
    "node": {
      "type": "object",
      "required": ["id", "label"],
      "properties": {
        "id": {
          "type": "string",
          "pattern": "^[A-Za-z0-9_-]+$"
        },
        "label": { "type": "string", "minLength": 1 },
        "classes": {
          "type": "array",
          "items": { "type": "string" }
        },
        "styles": {
          "type": "array",
          "items": { "$ref": "#/$defs/style" }
        },
        "shape": { "type": "string" },
        "subnodes": {
          "type": "array",
          "items": { "type": "string" }
        },
        "direction": { "type": "string" },
        "annotation": { "type": "string" },
        "attributes": {
          "type": "array",
          "items": { "$ref": "#/$defs/attribute" }
        },
        "methods": {
          "type": "array",
          "items": { "$ref": "#/$defs/method" }
        },
        "link": { "$ref": "#/$defs/link" }
      },
      "additionalProperties": false
    },
    "attribute": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "type": { "type": "string", "minLength": 1 },
        "visibility": { "type": "string" }
      },
      "additionalProperties": false
    },
    "method": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "visibility": { "type": "string" },
        "args": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
              "name": { "type": "string", "minLength": 1 },
              "type": { "type": "string", "minLength": 1 }
            },
            "additionalProperties": false
          }
        },
        "returns": { "type": "string" }
      },
      "additionalProperties": false
    },
    "link": {
      "type": "object",
      "required": ["url"],
      "properties": {
        "url": { "type": "string", "minLength": 1 },
        "tooltip": { "type": "string" },
        "new_tab": { "type": "boolean" },
        "anchor": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "edge": {
      "type": "object",
      "required": ["source", "target"],
      "properties": {
        "source": { "type": "string", "minLength": 1 },
        "target": { "type": "string", "minLength": 1 },
        "label": { "type": "string" },
        "line": { "type": "string", "enum": ["solid", "thick", "dashed"] },
        "left_arrow": { "type": "string" },
        "right_arrow": { "type": "string" },
        "left_multiplicity": { "type": "string" },
        "right_multiplicity": { "type": "string" },
        "cardinality": {
          "type": "string",
          "enum": ["zero-or-one", "one-to-one", "zero-or-more", "one-or-more"]
        },
        "length": { "type": "integer", "minimum": 1, "maximum": 255 },
        "curve": { "type": "string" },
        "classes": {
          "type": "array",
          "items": { "type": "string" }
        },
        "styles": {
          "type": "array",
          "items": { "$ref": "#/$defs/style" }
        }
      },
      "additionalProperties": false
    }
  }
}`

const schemaURL = "https://matzehuels.github.io/mermaid/schemas/manifest.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded schema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.AssertFormat()

		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(manifestSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshal manifest schema: %w", err)
			return
		}
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add manifest schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// ValidateJSON checks raw JSON manifest data against the embedded schema.
// Violations are reported with their instance locations, one per finding.
func ValidateJSON(data []byte) error {
	compiled, err := compiledSchema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "manifest schema unavailable")
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "manifest is not valid JSON")
	}

	if err := compiled.Validate(doc); err != nil {
		return toSchemaError(err)
	}
	return nil
}

// toSchemaError converts a jsonschema.ValidationError into a structured
// error listing every violation with its location.
func toSchemaError(err error) error {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "manifest schema validation failed")
	}

	violations := collectViolations(verr)
	switch len(violations) {
	case 0:
		return errors.New(errors.ErrCodeInvalidManifest, "%s", verr.Error())
	case 1:
		return errors.New(errors.ErrCodeInvalidManifest, "%s", violations[0])
	default:
		return errors.New(errors.ErrCodeInvalidManifest, "%d schema violations: %s",
			len(violations), strings.Join(violations, "; "))
	}
}

// collectViolations walks a ValidationError tree and collects leaf error
// messages with their instance locations.
func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/"
		if len(verr.InstanceLocation) > 0 {
			loc = "/" + strings.Join(verr.InstanceLocation, "/")
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Error())}
	}

	var violations []string
	for _, cause := range verr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}
