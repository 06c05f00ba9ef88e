// Package errors provides coded errors shared by the watchface components.
package errors

import (
	"errors"
	"fmt"
)

var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Code identifies an error category.
type Code string

const (
	ErrInvalidConfig    Code = "invalid_configuration"
	ErrDegenerateLayout Code = "degenerate_layout"
	ErrMissingReading   Code = "missing_reading"
	ErrUnknownFace      Code = "unknown_face"
	ErrRender           Code = "render_failed"
	ErrEncode           Code = "encode_failed"
	ErrUnavailable      Code = "unavailable"
)

var messages = map[Code]string{
	ErrInvalidConfig:    "Invalid configuration",
	ErrDegenerateLayout: "Display bounds too small for the dial",
	ErrMissingReading:   "No clock reading yet",
	ErrUnknownFace:      "Unknown face",
	ErrRender:           "Render failed",
	ErrEncode:           "Failed to encode image",
	ErrUnavailable:      "Not available",
}

// Message returns the default text for a code.
func Message(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return string(code)
}

// Error is a coded error with optional cause and detail.
type Error struct {
	code   Code
	msg    string
	err    error
	detail any
}

func (e *Error) Error() string {
	msg := e.msg
	if msg == "" {
		msg = Message(e.code)
	}
	if e.detail != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.detail)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.err }

// Is matches another *Error by code, so errors.Is(err, New(code)) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code == e.code
}

// WithMessage returns a copy carrying msg instead of the default text.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.msg = msg
	return &cp
}

// WithDetail returns a copy carrying a detail value.
func (e *Error) WithDetail(detail any) *Error {
	cp := *e
	cp.detail = detail
	return &cp
}

func New(code Code) *Error {
	return &Error{code: code}
}

func Wrap(code Code, err error) *Error {
	return &Error{code: code, err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}
