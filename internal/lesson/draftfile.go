package lesson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const draftSchemaURL = "schema://lesson-draft.json"

// draftSchema describes the shape of a request file. It only checks types
// and keys; required fields are left to Validate.
var draftSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subject":     map[string]any{"type": "string"},
		"topic":       map[string]any{"type": "string"},
		"level":       map[string]any{"type": "string"},
		"duration":    map[string]any{"type": "string"},
		"context":     map[string]any{"type": "string"},
		"methodology": map[string]any{"type": "string"},
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// DraftFileError indicates a request file that could not be read as a draft.
type DraftFileError struct {
	Path string
	Err  error
}

func (e *DraftFileError) Error() string {
	return fmt.Sprintf("request file %s: %v", e.Path, e.Err)
}

func (e *DraftFileError) Unwrap() error { return e.Err }

type draftFile struct {
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	Context     string `json:"context"`
	Methodology string `json:"methodology"`
}

// LoadDraft reads a lesson draft from a JSON or YAML file. The format is
// chosen by extension (.yaml/.yml, anything else is JSON).
func LoadDraft(path string) (Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, &DraftFileError{Path: path, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		data, err = yamlToJSON(data)
		if err != nil {
			return Draft{}, &DraftFileError{Path: path, Err: err}
		}
	}

	d, err := ParseDraftJSON(data)
	if err != nil {
		return Draft{}, &DraftFileError{Path: path, Err: err}
	}
	return d, nil
}

// ParseDraftJSON decodes and shape-checks a JSON draft document.
func ParseDraftJSON(data []byte) (Draft, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Draft{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := draftValidator()
	if err != nil {
		return Draft{}, fmt.Errorf("compile draft schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Draft{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var f draftFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}

	level, err := ParseLevel(f.Level)
	if err != nil {
		return Draft{}, err
	}

	return Draft{
		Subject:     f.Subject,
		Topic:       f.Topic,
		Level:       level,
		Duration:    f.Duration,
		Context:     f.Context,
		Methodology: f.Methodology,
	}, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return out, nil
}

func draftValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not a Go map with typed slices.
		raw, err := json.Marshal(draftSchema)
		if err != nil {
			compileErr = err
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(draftSchemaURL, def); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(draftSchemaURL)
	})
	return compiledSchema, compileErr
}
