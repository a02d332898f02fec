package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name" validate:"required"`
	Urgency string `json:"urgency" validate:"omitempty,urgency"`
	Role    string `json:"role" validate:"required,role"`
	Age     int    `json:"age" validate:"gte=0,lte=120"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "John", Urgency: "high", Role: "client", Age: 30}))

	err := v.Validate(&sample{Urgency: "tomorrow", Role: "judge", Age: 200})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"name":    "required",
		"urgency": "urgency",
		"role":    "role",
		"age":     "lte=120",
	}, fields)
}

func TestFieldErrors_OtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
