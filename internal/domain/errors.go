package domain

import "errors"

var (
	// ErrInvalidCategory is the only error the boundary API surfaces to a
	// caller; everything else degrades to reduced data.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrSourceUnavailable marks a feed or market endpoint that could not be
	// reached or parsed. Always recovered locally.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrStorageUnavailable marks an unreadable or unwritable client-local
	// state store. Treated as empty state, never fatal.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
