package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalInt(t *testing.T) {
	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("  "))
	assert.Nil(t, ParseOptionalInt("abc"))

	result := ParseOptionalInt(" 150000 ")
	require.NotNil(t, result)
	assert.Equal(t, 150000, *result)
}

func TestValidateStructReportsFields(t *testing.T) {
	type sample struct {
		Email string `validate:"required,email"`
		Count int    `validate:"min=1,max=1000"`
	}

	errs := ValidateStruct(&sample{Email: "nope", Count: 0})
	require.Len(t, errs, 2)
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Count")

	assert.Nil(t, ValidateStruct(&sample{Email: "a@b.kz", Count: 5}))
}
