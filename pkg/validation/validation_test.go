package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vetgate/pkg/validation"
)

type testRequest struct {
	Name     string   `json:"name" validate:"required,notblank"`
	Kinds    []string `json:"kinds" validate:"required,min=1"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Language string   `json:"language" validate:"required,oneof=FR EN"`
	Note     string   `json:"note,omitempty"`
}

func violationByField(violations []validation.FieldViolation, field string) (validation.FieldViolation, bool) {
	for _, v := range violations {
		if v.Field == field {
			return v, true
		}
	}
	return validation.FieldViolation{}, false
}

func TestViolationsReportsEveryField(t *testing.T) {
	violations := validation.Violations(&testRequest{
		Name:     "   ",
		Email:    "not-an-email",
		Language: "DE",
	})
	require.Len(t, violations, 4)

	name, ok := violationByField(violations, "name")
	require.True(t, ok)
	require.Equal(t, "notblank", name.Tag)

	kinds, ok := violationByField(violations, "kinds")
	require.True(t, ok)
	require.Equal(t, "required", kinds.Tag)

	email, ok := violationByField(violations, "email")
	require.True(t, ok)
	require.Equal(t, "email", email.Tag)

	language, ok := violationByField(violations, "language")
	require.True(t, ok)
	require.Equal(t, "oneof", language.Tag)
}

func TestViolationsUsesJSONFieldNames(t *testing.T) {
	violations := validation.Violations(&testRequest{Kinds: []string{"a"}, Language: "FR"})
	require.Len(t, violations, 1)
	require.Equal(t, "name", violations[0].Field, "wire names, not Go names")
}

func TestViolationsEmptyForValidStruct(t *testing.T) {
	require.Empty(t, validation.Violations(&testRequest{
		Name:     "Jordan",
		Kinds:    []string{"a"},
		Language: "EN",
	}))
}

// TestOmitemptySkipsAbsentValues verifies an empty optional field is treated
// as absent rather than invalid.
func TestOmitemptySkipsAbsentValues(t *testing.T) {
	violations := validation.Violations(&testRequest{
		Name:     "Jordan",
		Kinds:    []string{"a"},
		Email:    "",
		Language: "EN",
	})
	require.Empty(t, violations)
}

func TestMinCatchesEmptyList(t *testing.T) {
	violations := validation.Violations(&testRequest{
		Name:     "Jordan",
		Kinds:    []string{},
		Language: "EN",
	})
	require.Len(t, violations, 1)
	require.Equal(t, "kinds", violations[0].Field)
	require.Equal(t, "min", violations[0].Tag)
}
