package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a service failure; handlers map it to an HTTP status and
// clients receive it as the "code" field.
type Kind string

const (
	KindBadRequest      Kind = "BAD_REQUEST"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindUpstream        Kind = "UPSTREAM_FAILURE"
	KindInternal        Kind = "INTERNAL"
)

// Error is a failure whose Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the classification of err, KindInternal when unclassified.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

var (
	// auth
	ErrMissingSignupFields = newError(KindBadRequest, "All fields are required")
	ErrMissingCredentials  = newError(KindBadRequest, "Email and password are required")
	ErrUserExists          = newError(KindConflict, "User already exists")
	ErrUserNotFound        = newError(KindNotFound, "User not found")
	ErrInvalidPassword     = newError(KindBadRequest, "Invalid password")
	ErrInvalidToken        = newError(KindUnauthenticated, "Invalid or expired token")

	// profile & watchlist
	ErrProfileFieldsRequired  = newError(KindBadRequest, "Name and email are required")
	ErrEmailInUse             = newError(KindConflict, "Email already in use")
	ErrMovieIDRequired        = newError(KindBadRequest, "Movie ID is required")
	ErrWatchlistEntryNotFound = newError(KindNotFound, "Watchlist entry not found")

	// ownership
	ErrForbidden = newError(KindForbidden, "Access denied")

	// collections
	ErrTitleRequired       = newError(KindBadRequest, "Title is required")
	ErrCollectionNotFound  = newError(KindNotFound, "Collection not found")
	ErrItemAlreadyExists   = newError(KindConflict, "Item already in collection")
	ErrItemNotInCollection = newError(KindNotFound, "Item not found in collection")

	// reviews
	ErrReviewFieldsRequired = newError(KindBadRequest, "Movie ID and content are required.")
	ErrReviewNotFound       = newError(KindNotFound, "Review not found")

	// movies
	ErrInvalidMovieID = newError(KindBadRequest, "Invalid movie ID")
)

// errUnknownGenre lists the supported names so clients can correct the request.
func errUnknownGenre(name string, supported []string) *Error {
	names := append([]string(nil), supported...)
	sort.Strings(names)
	return newError(KindBadRequest, fmt.Sprintf("Unknown genre '%s'. Supported: %s", name, strings.Join(names, ", ")))
}
