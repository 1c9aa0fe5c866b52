package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Visibility_InputType(t *testing.T) {
	assert.Equal(t, "password", Masked.InputType())
	assert.Equal(t, "text", Plain.InputType())
}

func Test_Visibility_Toggle__should_alternate_between_masked_and_plain(t *testing.T) {
	v := Masked
	for i := 0; i < 4; i++ {
		next := v.Toggle()
		assert.NotEqual(t, v, next)
		assert.NotEqual(t, v.InputType(), next.InputType())
		v = next
	}
	assert.Equal(t, Masked, v)
}
