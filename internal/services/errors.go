// Package services defines the business logic for the library catalog.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Catalog-related errors.
var (
	// ErrBookNotFound indicates that the requested catalog record does not
	// exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrMissingField is returned when a create/update request omits one of
	// the required catalog fields (author, title, year).
	ErrMissingField = errors.New("author, title and year are required")

	// ErrInvalidYear is returned when the publication year is not a
	// four-digit number.
	ErrInvalidYear = errors.New("year must be a four-digit number")
)
