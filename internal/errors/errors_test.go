package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "[NOT_FOUND] preset not found: cereal", NotFound("preset", "cereal").Error())
	assert.Equal(t, "[PARSING_ERROR] decode job: unexpected EOF", Parsing("decode job", io.ErrUnexpectedEOF).Error())
}

func TestIsTypeThroughWrapping(t *testing.T) {
	inner := Validation("width_mm must be greater than 0", nil)
	wrapped := fmt.Errorf("load job.hcl: %w", inner)

	assert.True(t, IsType(wrapped, TypeValidation))
	assert.False(t, IsType(wrapped, TypeParsing))
	assert.Equal(t, TypeValidation, TypeOf(wrapped))
	assert.Equal(t, TypeInternal, TypeOf(io.EOF))
}

func TestWithContext(t *testing.T) {
	err := Input("bad sweep").WithContext("param", "colors")
	assert.Equal(t, "colors", err.Context["param"])
	assert.True(t, err.OfType(TypeInput))
}

func TestFields(t *testing.T) {
	err := Validation("width_mm must be greater than 0", nil).
		WithFields(map[string]string{"width_mm": "width_mm must be greater than 0"})
	assert.Equal(t, "width_mm must be greater than 0", err.Fields()["width_mm"])
	assert.Nil(t, Input("bad").Fields())
}
