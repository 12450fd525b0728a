// Package validation wraps go-playground/validator with the custom rules and
// the error shape used across the service.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator runs struct tag rules and reports failures as Issues. It is safe
// for concurrent use.
type Validator struct {
	engine *validator.Validate
}

type structRule struct {
	fn    validator.StructLevelFunc
	types []any
}

type options struct {
	rules       map[string]validator.Func
	structRules []structRule
	valuerTypes []any
}

// Option configures a Validator.
type Option func(*options)

// WithRule registers a field rule under tag.
func WithRule(tag string, fn validator.Func) Option {
	return func(o *options) {
		o.rules[tag] = fn
	}
}

// WithStructRule registers a struct level rule for each of types.
func WithStructRule(fn validator.StructLevelFunc, types ...any) Option {
	return func(o *options) {
		o.structRules = append(o.structRules, structRule{fn: fn, types: types})
	}
}

// WithValuerTypes marks wrapper types whose field rules apply to the value
// they carry. Each type must implement Valuer.
func WithValuerTypes(types ...any) Option {
	return func(o *options) {
		o.valuerTypes = append(o.valuerTypes, types...)
	}
}

// Valuer is implemented by wrappers that carry an optional value. A nil
// return means "no value", which omitempty rules skip.
type Valuer interface {
	ValidationValue() any
}

// New builds a Validator with the built-in rules (cuid, slug, enum) and
// JSON field names in issue paths.
func New(opts ...Option) (*Validator, error) {
	o := &options{
		rules: map[string]validator.Func{
			"cuid": isCUID,
			"slug": isSlug,
			"enum": isEnum,
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	engine := validator.New(validator.WithRequiredStructEnabled())
	engine.RegisterTagNameFunc(jsonName)

	for tag, fn := range o.rules {
		if err := engine.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register rule %s: %w", tag, err)
		}
	}
	for _, sr := range o.structRules {
		engine.RegisterStructValidation(sr.fn, sr.types...)
	}
	if len(o.valuerTypes) > 0 {
		engine.RegisterCustomTypeFunc(unwrapValuer, o.valuerTypes...)
	}

	return &Validator{engine: engine}, nil
}

// MustNew is New for package level validators.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates s. Rule failures are returned as Issues; any other error
// means s could not be validated at all.
func (v *Validator) Struct(s any) error {
	err := v.engine.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return toIssues(verrs, rootName(s))
	}
	return fmt.Errorf("validate: %w", err)
}

// Var validates a single value against tag.
func (v *Validator) Var(field any, tag string) error {
	err := v.engine.Var(field, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return toIssues(verrs, "")
	}
	return fmt.Errorf("validate: %w", err)
}

func unwrapValuer(field reflect.Value) any {
	if vv, ok := field.Interface().(Valuer); ok {
		return vv.ValidationValue()
	}
	return nil
}

// inlineSegment stands in for fields tagged path:"inline". They hold one of
// several alternative shapes and are left out of issue paths.
const inlineSegment = "~"

func jsonName(fld reflect.StructField) string {
	if fld.Tag.Get("path") == "inline" {
		return inlineSegment
	}
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func rootName(s any) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

func toIssues(verrs validator.ValidationErrors, root string) Issues {
	out := make(Issues, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Issue{
			Path:    issuePath(fe.Namespace(), root),
			Code:    codeFor(fe.Tag()),
			Message: messageFor(fe),
			Param:   fe.Param(),
		})
	}
	return out
}

func issuePath(ns, root string) string {
	if root != "" {
		if ns == root {
			return ""
		}
		ns = strings.TrimPrefix(ns, root+".")
	}
	ns = strings.TrimSuffix(ns, ".")
	if !strings.Contains(ns, inlineSegment) {
		return ns
	}
	segs := strings.Split(ns, ".")
	out := segs[:0]
	for _, s := range segs {
		if s != inlineSegment {
			out = append(out, s)
		}
	}
	return strings.Join(out, ".")
}
