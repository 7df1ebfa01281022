// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	ID    string   `validate:"required"`
	Title string   `validate:"required,min=5"`
	Price float64  `validate:"required,gt=0"`
	Tags  []string `validate:"min=2,dive,required"`
}

func TestGetValidationErrorsCollectsAllViolations(t *testing.T) {
	err := ValidateStruct(&sampleRecord{Title: "abc", Tags: []string{"one"}})
	require.Error(t, err)

	violations := GetValidationErrors(err)
	require.Len(t, violations, 4)

	fields := make(map[string]string)
	for _, v := range violations {
		fields[v.Field] = v.Tag
	}

	assert.Equal(t, "required", fields["id"])
	assert.Equal(t, "min", fields["title"])
	assert.Equal(t, "required", fields["price"])
	assert.Equal(t, "min", fields["tags"])
}

func TestGetValidationErrorsNestedPath(t *testing.T) {
	type inner struct {
		URL string `validate:"required"`
	}
	type outer struct {
		Items []inner `validate:"min=1,dive"`
	}

	err := ValidateStruct(&outer{Items: []inner{{}}})
	require.Error(t, err)

	violations := GetValidationErrors(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "items[0].url", violations[0].Field)
}

func TestGetValidationErrorsValidStruct(t *testing.T) {
	err := ValidateStruct(&sampleRecord{ID: "x", Title: "valid title", Price: 10, Tags: []string{"a", "b"}})
	assert.NoError(t, err)
	assert.Empty(t, GetValidationErrors(err))
}

func TestValidationMessages(t *testing.T) {
	err := ValidateStruct(&sampleRecord{ID: "x", Title: "ab", Price: -1, Tags: []string{"a", "b"}})
	require.Error(t, err)

	messages := make(map[string]string)
	for _, v := range GetValidationErrors(err) {
		messages[v.Field] = v.Message
	}

	assert.Equal(t, "Title must be at least 5 characters", messages["title"])
	assert.Equal(t, "Price must be greater than 0", messages["price"])
}
