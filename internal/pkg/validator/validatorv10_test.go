package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Kind    string `json:"kind"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Country string `json:"country" validate:"required_if=Kind seller"`
	Note    string
}

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    signup
		wantKeys []string
	}{
		{
			name:  "valid user",
			input: signup{Name: "Ann", Email: "ann@example.com"},
		},
		{
			name:     "missing name and bad email",
			input:    signup{Email: "nope"},
			wantKeys: []string{"name", "email"},
		},
		{
			name:     "seller without country",
			input:    signup{Kind: "seller", Name: "Ann", Email: "ann@example.com"},
			wantKeys: []string{"country"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if len(tt.wantKeys) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Values(), len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				assert.NotEmpty(t, verr.Values()[k], k)
			}
		})
	}
}

func TestV10ValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
	assert.JSONEq(t, `{"name":"name is a required field"}`, V10ValidationError{"name": "name is a required field"}.Error())
}

func TestV10Validator_NonStruct(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Validate("not a struct")

	var verr V10ValidationError
	assert.Error(t, err)
	assert.False(t, errors.As(err, &verr))
}
