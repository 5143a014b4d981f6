// Package validation wraps go-playground/validator behind a small surface
// that reports every violated rule instead of stopping at the first.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// Report violations under the wire name of the field, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldViolation is one violated rule on a struct field. Field carries the
// json name of the field, Tag the validate rule that failed.
type FieldViolation struct {
	Field string
	Tag   string
}

// Violations validates a struct against its validate tags and returns every
// violation found. A field with several failing rules reports the first one;
// distinct fields are never hidden behind each other.
func Violations(req any) []FieldViolation {
	err := defaultValidator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldViolation{{Tag: "invalid"}}
	}
	out := make([]FieldViolation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldViolation{Field: fe.Field(), Tag: fe.ActualTag()})
	}
	return out
}
