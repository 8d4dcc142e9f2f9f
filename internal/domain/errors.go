package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrNoData marks an upstream "nothing for you" response, surfaced to
	// clients as a 404 rather than a failure.
	ErrNoData = errors.New("no data")
)
