package tooldoc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocstringError(t *testing.T) {
	err := &DocstringError{Tool: "get_weather", Reason: "no entries found"}
	assert.Equal(t, `tool "get_weather": malformed docstring: no entries found`, err.Error())
	assert.ErrorIs(t, err, ErrMalformedDocstring)
}

func TestParameterTypeError(t *testing.T) {
	err := &ParameterTypeError{Tool: "plot", Param: "point", Reason: "tuple not supported"}
	assert.Equal(t, `tool "plot": parameter "point": tuple not supported`, err.Error())
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSystemError(t *testing.T) {
	inner := errors.New("marshal exploded")
	err := &SystemError{Err: inner}
	assert.Equal(t, "internal system error during tool execution", err.Error())
	assert.Same(t, inner, err.Unwrap())
}

func TestErrorsIs_As(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		sentinel    error
		isMalformed bool
		isUnsup     bool
	}{
		{"docstring direct", &DocstringError{Tool: "t"}, ErrMalformedDocstring, true, false},
		{"parameter direct", &ParameterTypeError{Tool: "t", Param: "p"}, ErrUnsupportedType, false, true},
		{"docstring wrapped", fmt.Errorf("build: %w", &DocstringError{Tool: "t"}), ErrMalformedDocstring, true, false},
		{"parameter wrapped", fmt.Errorf("build: %w", &ParameterTypeError{Tool: "t"}), ErrUnsupportedType, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.isMalformed, IsMalformedDocstring(tt.err))
			assert.Equal(t, tt.isUnsup, IsUnsupportedType(tt.err))
		})
	}
}

func TestIsSystemError(t *testing.T) {
	require.True(t, IsSystemError(&SystemError{Err: errors.New("x")}))
	require.True(t, IsSystemError(fmt.Errorf("wrap: %w", &SystemError{Err: ErrTimeout})))
	require.False(t, IsSystemError(&DocstringError{Tool: "t"}))
	require.False(t, IsSystemError(ErrToolNotFound))
}
