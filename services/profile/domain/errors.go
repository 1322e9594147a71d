// Package domain contains the profile context's sentinel errors.
package domain

import "errors"

// ErrInvalidUsername indicates a username that fails the profile naming rules.
var ErrInvalidUsername = errors.New("invalid username")
