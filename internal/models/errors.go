package models

import "errors"

var (
	// ErrDuplicateTag is returned when a photo already holds a tag with the
	// same name and value.
	ErrDuplicateTag = errors.New("photo already has this tag")

	// ErrNotMultiple is returned when a second value is added under a tag
	// name that only allows a single value.
	ErrNotMultiple = errors.New("tag does not allow multiple values")

	// ErrDuplicateAlbum is returned when a user already has an album with
	// the exact same name.
	ErrDuplicateAlbum = errors.New("album with this name already exists")

	// ErrAlbumNotFound is returned when a user has no album with the given
	// name.
	ErrAlbumNotFound = errors.New("album not found")
)
