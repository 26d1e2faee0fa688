package domain

import "errors"

var (
	// ErrLinkNotFound is returned when no link matches a short code or
	// target URL lookup.
	ErrLinkNotFound = errors.New("link not found")

	// ErrInvalidURL is returned for malformed, missing, or oversized
	// target URLs. It never reaches the persistence layer.
	ErrInvalidURL = errors.New("invalid target url")

	// ErrDuplicateTargetURL maps the store's unique constraint on
	// target_url. It is internal-only: the creation path resolves it by
	// re-reading the winning record.
	ErrDuplicateTargetURL = errors.New("target url already exists")
)
