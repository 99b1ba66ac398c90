// internal/schema/schema.go
package schema

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// The JSON Schema documents (Draft 2020-12) that gate everything read from disk
// or the wire, before the typed decoder or the patch engine sees it.
//
//go:embed schemas/*.json
var files embed.FS

const (
	baseURL    = "https://mockup.local/schemas/"
	specURL    = baseURL + "spec.schema.json"
	patchesURL = baseURL + "patches.schema.json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Violation is one schema failure at a JSON Pointer into the instance.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error lists every violation found in a document.
type Error struct {
	Document   string
	Violations []Violation
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s failed schema validation with %d violation(s)", e.Document, len(e.Violations))
	for _, v := range e.Violations {
		path := v.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(&sb, "\n  %s: %s", path, v.Message)
	}
	return sb.String()
}

// Validator holds the compiled schemas. It is safe for concurrent use.
type Validator struct {
	spec    *jsonschema.Schema
	patches *jsonschema.Schema
}

// NewValidator compiles the embedded schema documents.
func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	for _, name := range []string{"spec.schema.json", "patches.schema.json"} {
		raw, err := files.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		if err := c.AddResource(baseURL+name, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("failed to load schema %s: %w", name, err)
		}
	}

	spec, err := c.Compile(specURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile spec schema: %w", err)
	}
	patches, err := c.Compile(patchesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile patch schema: %w", err)
	}
	return &Validator{spec: spec, patches: patches}, nil
}

var defaultValidator = sync.OnceValues(NewValidator)

// DecodeSpec validates raw against the spec schema and decodes it.
func DecodeSpec(raw []byte) (*schemas.DesignSpec, error) {
	v, err := defaultValidator()
	if err != nil {
		return nil, err
	}
	return v.DecodeSpec(raw)
}

// DecodePatches validates raw against the patch list schema and decodes it.
func DecodePatches(raw []byte) ([]schemas.Patch, error) {
	v, err := defaultValidator()
	if err != nil {
		return nil, err
	}
	return v.DecodePatches(raw)
}

// DecodeSpec validates raw against the spec schema and decodes it.
func (v *Validator) DecodeSpec(raw []byte) (*schemas.DesignSpec, error) {
	if err := validate(v.spec, "spec", raw); err != nil {
		return nil, err
	}
	var spec schemas.DesignSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode spec: %w", err)
	}
	return &spec, nil
}

// DecodePatches validates raw against the patch list schema and decodes it.
func (v *Validator) DecodePatches(raw []byte) ([]schemas.Patch, error) {
	if err := validate(v.patches, "patch list", raw); err != nil {
		return nil, err
	}
	var patches []schemas.Patch
	if err := json.Unmarshal(raw, &patches); err != nil {
		return nil, fmt.Errorf("failed to decode patches: %w", err)
	}
	return patches, nil
}

func validate(s *jsonschema.Schema, document string, raw []byte) error {
	var inst any
	if err := json.Unmarshal(raw, &inst); err != nil {
		return fmt.Errorf("%s is not valid JSON: %w", document, err)
	}
	err := s.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%s validation failed: %w", document, err)
	}
	return &Error{Document: document, Violations: flatten(ve)}
}

// flatten collects the leaf causes of a validation error tree, which are the
// individual failures; inner nodes only say that a subschema did not match.
func flatten(ve *jsonschema.ValidationError) []Violation {
	var out []Violation
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, Violation{Path: e.InstanceLocation, Message: e.Message})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
