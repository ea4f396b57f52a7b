// Package validation checks catalog documents against their JSON schemas
// before they are decoded.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// SchemaValidator validates catalog documents against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
	ValidateYAML(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator with an empty schema cache
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON or YAML file, chosen by extension
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadData, dataPath, err)
	}

	switch strings.ToLower(filepath.Ext(dataPath)) {
	case ".yaml", ".yml":
		return v.ValidateYAML(data, schemaPath)
	default:
		return v.ValidateBytes(data, schemaPath)
	}
}

// ValidateBytes validates a JSON document
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrMsgParseData, err)
	}
	return v.validate(doc, schemaPath)
}

// ValidateYAML validates a YAML document. It is round-tripped through JSON so
// the schema sees the same value types as for JSON input.
func (v *validator) ValidateYAML(data []byte, schemaPath string) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrMsgParseData, err)
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrMsgParseData, err)
	}
	return v.ValidateBytes(asJSON, schemaPath)
}

func (v *validator) validate(doc interface{}, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, schemaPath, err)
	}
	if err := schema.Validate(doc); err != nil {
		return formatValidationError(schemaPath, err)
	}
	return nil
}

// loadSchema compiles a schema once and caches it by path
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	resolved, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

// formatValidationError flattens the validation tree into one line per leaf,
// sorted by location so output is stable
func formatValidationError(schemaPath string, err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrMsgSchemaFailed, err)
	}

	var lines []string
	collectLeaves(verr, &lines)
	sort.Strings(lines)
	return fmt.Errorf("%w: %s (%s):\n%s", domain.ErrInvalidConfig, ErrMsgSchemaFailed, filepath.Base(schemaPath), strings.Join(lines, "\n"))
}

func collectLeaves(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, describe(err))
		return
	}
	for _, cause := range err.Causes {
		collectLeaves(cause, lines)
	}
}

func describe(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	keyword := "schema"
	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keyword)
}

// resolveSchemaPath finds a relative schema path from the working directory
// or any parent up to the module root, so tests in nested packages resolve it too
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for dir := cwd; ; {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, rootMarker)); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s: %s (searched from %s)", ErrMsgSchemaMissing, schemaPath, cwd)
}
