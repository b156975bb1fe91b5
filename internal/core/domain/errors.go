package domain

import (
	"errors"
	"strings"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrProfileNotFound = errors.New("profile not found")

// FieldError is a single validation failure on a named input field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationError aggregates field-level input failures. It renders at the
// HTTP boundary as {"errors":[{"msg":...,"param":...}, ...]} with status 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Msg)
	}
	return strings.Join(msgs, "; ")
}
