package models

import (
	"fmt"
	"strings"
)

// Username is a value object representing a valid display handle.
// Encapsulates validation rules: trimmed, 1 <= len <= 50.
type Username string

const maxUsernameLength = 50

// NewUsername constructs a valid Username or returns an error if constraints are violated.
func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("username must not be empty")
	}
	if len(s) > maxUsernameLength {
		return "", fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	return Username(s), nil
}

// String returns the underlying string value.
func (u Username) String() string {
	return string(u)
}
