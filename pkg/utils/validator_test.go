package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Count *int   `validate:"required"`
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(sampleRequest{})
	assert.Equal(t, map[string]string{
		"Name":  "This field is required",
		"Count": "This field is required",
	}, errs)
}

func TestValidateStructValid(t *testing.T) {
	count := 0
	errs := ValidateStruct(sampleRequest{Name: "ok", Count: &count})
	assert.Nil(t, errs)
}
