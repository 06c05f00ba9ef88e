package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorText(t *testing.T) {
	assert.Equal(t, "Unknown face", New(ErrUnknownFace).Error())
	assert.Equal(t, "Unknown face: neon", New(ErrUnknownFace).WithDetail("neon").Error())
	assert.Equal(t, "bad width: boom", Wrap(ErrInvalidConfig, fmt.Errorf("boom")).WithMessage("bad width").Error())
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("layout: %w", New(ErrDegenerateLayout).WithDetail("0x0"))
	assert.True(t, Is(err, New(ErrDegenerateLayout)))
	assert.False(t, Is(err, New(ErrInvalidConfig)))
	assert.Equal(t, ErrDegenerateLayout, CodeOf(err))
	assert.Equal(t, Code(""), CodeOf(fmt.Errorf("plain")))
}
