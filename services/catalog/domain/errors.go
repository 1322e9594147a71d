package domain

import "errors"

var (
	// ErrItemNotFound is returned when an item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrCollectionNotFound is returned when a collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrInvalidItem is returned when item fields fail validation.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidCollectionName is returned when a collection name is empty or too long.
	ErrInvalidCollectionName = errors.New("invalid collection name")
	// ErrCollectionExists is returned when inserting a collection whose
	// (owner, name) pair is already taken.
	ErrCollectionExists = errors.New("collection already exists")
	// ErrNotOwner is returned when a user attempts to modify an item or
	// collection they do not own.
	ErrNotOwner = errors.New("not the owner")
)
