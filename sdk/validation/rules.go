package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// cuidPattern accepts collision resistant ids: a leading "c" followed by at
// least eight characters that are neither whitespace nor hyphens.
var cuidPattern = regexp.MustCompile(`(?i)^c[^\s-]{8,}$`)

// IsCUID reports whether s looks like a cuid.
func IsCUID(s string) bool {
	return cuidPattern.MatchString(s)
}

func isCUID(fl validator.FieldLevel) bool {
	return IsCUID(fl.Field().String())
}

// IsSlug reports whether s is already in slug form.
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

func isSlug(fl validator.FieldLevel) bool {
	return IsSlug(fl.Field().String())
}

// enumValue is implemented by string enums.
type enumValue interface {
	IsValid() bool
}

func isEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	if e, ok := field.Interface().(enumValue); ok {
		return e.IsValid()
	}
	return true
}
