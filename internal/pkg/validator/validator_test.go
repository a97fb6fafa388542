package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string  `validate:"required,email"`
	Discount float64 `validate:"gte=0,lte=100"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "a@b.kz", Discount: 10}))

	errs := Validate(sample{Email: "nope", Discount: 120})
	assert.Equal(t, "email", errs["Email"])
	assert.Equal(t, "lte", errs["Discount"])
}
