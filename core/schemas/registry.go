// Package schemas mirrors the relational data model into validated Go shapes.
//
// Every entity has a record type, partial and optional-defaults variants,
// selection and include shapes, where, where-unique, order-by and group-by
// filters, checked and unchecked create and update payloads, and the
// argument envelopes of each operation. Models reference each other through
// pointer fields, so cyclic relations resolve lazily at decode time.
//
// A Registry indexes the shapes by model and shape name for callers that only
// know them at runtime, such as the HTTP bridge and the tooling CLI.
package schemas

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

var (
	ErrModelNotFound = errors.New("model not found")
	ErrShapeNotFound = errors.New("shape not found")
)

// Registry indexes every model and validates payloads against its shapes.
// It is safe for concurrent use.
type Registry struct {
	models    []*Model
	byName    map[string]*Model
	validator *validation.Validator
}

// NewRegistry builds a registry holding every model.
func NewRegistry() *Registry {
	models := allModels()
	r := &Registry{
		models: models,
		byName: make(map[string]*Model, len(models)),
	}
	for _, m := range models {
		r.byName[strings.ToLower(m.Name)] = m
	}
	r.validator = newValidator(models)
	return r
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the shared registry.
func Default() *Registry {
	return defaultRegistry()
}

// Models returns the models in declaration order.
func (r *Registry) Models() []*Model {
	return slices.Clone(r.models)
}

// Model looks a model up by name, ignoring case.
func (r *Registry) Model(name string) (*Model, error) {
	m, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrModelNotFound)
	}
	return m, nil
}

// New returns a pointer to a zero value of model's shape.
func (r *Registry) New(model string, shape Shape) (any, error) {
	m, err := r.Model(model)
	if err != nil {
		return nil, err
	}
	return m.New(shape)
}

// Parse decodes data into model's shape and validates it. Decoding and rule
// failures are both returned as validation.Issues.
func (r *Registry) Parse(model string, shape Shape, data []byte) (any, error) {
	v, err := r.New(model, shape)
	if err != nil {
		return nil, err
	}
	if err := query.DecodeStrict(data, v); err != nil {
		return nil, validation.FromDecodeError(err)
	}
	if err := r.validator.Struct(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks an already decoded shape.
func (r *Registry) Validate(v any) error {
	return r.validator.Struct(v)
}

// Describe returns the descriptor of every model.
func (r *Registry) Describe() []Descriptor {
	out := make([]Descriptor, len(r.models))
	for i, m := range r.models {
		out[i] = m.Describe()
	}
	return out
}

// Parse decodes and validates data as T using the shared registry.
func Parse[T any](data []byte) (*T, error) {
	v := new(T)
	if err := query.DecodeStrict(data, v); err != nil {
		return nil, validation.FromDecodeError(err)
	}
	if err := Default().Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// =============================================================================
// Validator wiring
// =============================================================================

func newValidator(models []*Model) *validation.Validator {
	uniques := make([]any, 0, len(models))
	for _, m := range models {
		if c, ok := m.shapes[ShapeWhereUnique]; ok {
			uniques = append(uniques, c())
		}
	}

	return validation.MustNew(
		validation.WithValuerTypes(query.ValidationTypes()...),
		validation.WithValuerTypes(query.FieldUpdate[Role]{}),
		validation.WithStructRule(uniqueSelectorRule, uniques...),
	)
}

// uniqueSelector is implemented by every where-unique input.
type uniqueSelector interface {
	uniqueKeys() []string
	hasUniqueKey() bool
}

func uniqueSelectorRule(sl validator.StructLevel) {
	current := sl.Current().Interface()
	w, ok := current.(uniqueSelector)
	if !ok || w.hasUniqueKey() {
		return
	}
	sl.ReportError(current, "", "", validation.UniqueSelectorTag, strings.Join(w.uniqueKeys(), " "))
}
