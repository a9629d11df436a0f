// Package data implements the photo library's store: the in-memory graph of
// users, albums, photos and tags, its consistency rules, the search engine,
// and the load-or-initialize snapshot lifecycle.
package data

import "errors"

// Store-level errors. Together with the entity-level errors in the models
// package they form the closed set callers are expected to check with
// errors.Is; operations never fail any other way.
var (
	// ErrUserNotFound is returned when no stored user has the given
	// username.
	ErrUserNotFound = errors.New("user not found")

	// ErrPhotoNotFound is returned when an album holds no photo with the
	// given ID.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrProtectedAccount is returned on any attempt to delete the built-in
	// admin account.
	ErrProtectedAccount = errors.New("the admin account cannot be deleted")

	// ErrPhotosDropped is returned by VerifyPhotoFiles when photos whose
	// backing files are gone had to be removed.
	ErrPhotosDropped = errors.New("photos with missing files were removed")

	// ErrPersistence wraps failures to write the snapshot file. In-memory
	// state is never rolled back on a failed save.
	ErrPersistence = errors.New("failed to persist the library")
)
