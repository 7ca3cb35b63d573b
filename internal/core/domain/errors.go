package domain

import (
	"errors"
	"strings"
)

var ErrDuplicateName = errors.New("name already exists")
var ErrDuplicateEmail = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("missing or invalid bearer token")

// ValidationError carries one message per violated input rule.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
