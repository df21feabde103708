package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPrice(t *testing.T) {
	for _, ok := range []string{"100", "100.5", "100.50", "0", "0.01", "12345678901234.99"} {
		assert.True(t, ValidPrice(ok), ok)
	}
	for _, bad := range []string{"100.555", "-5", "abc", "", "1.", ".5", "1e3", "123456789012345"} {
		assert.False(t, ValidPrice(bad), bad)
	}
}

type priceHolder struct {
	Name  string `json:"provider_name" validate:"required,max=5"`
	Price string `json:"price" validate:"required,price"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestRegisteredPriceTag(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(priceHolder{Name: "acme", Price: "100.50"}))

	err := v.Struct(priceHolder{Name: "acme", Price: "100.555"})
	require.Error(t, err)
	assert.Equal(t, PriceMessage, Message(err, nil))
}

func TestMessageUsesJSONNamesAndOverrides(t *testing.T) {
	v := newValidator(t)
	msgs := Messages{"provider_name.required": "Provider name cannot be empty"}

	err := v.Struct(priceHolder{Price: "1"})
	require.Error(t, err)
	assert.Equal(t, "Provider name cannot be empty", Message(err, msgs))

	err = v.Struct(priceHolder{Name: "toolongname", Price: "1"})
	require.Error(t, err)
	assert.Equal(t, "The provider_name field must not exceed 5 characters", Message(err, msgs))
}

func TestIsRuleFailure(t *testing.T) {
	v := newValidator(t)
	assert.True(t, IsRuleFailure(v.Struct(priceHolder{Price: "1"})))
	assert.False(t, IsRuleFailure(assert.AnError))
}

func TestMessageForNonValidatorError(t *testing.T) {
	assert.Equal(t, "Invalid request data", Message(assert.AnError, nil))
}
