package domain

import "errors"

// Sentinel errors for the social domain. Use errors.Is() to check these.
var (
	// ErrAuthRequired indicates a mutating action was attempted without a
	// signed-in actor. Refused locally, before any gateway call.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSelfFollow indicates an actor tried to follow their own profile.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrEmptyComment indicates the comment text is empty after trimming.
	ErrEmptyComment = errors.New("comment text must not be empty")
)
