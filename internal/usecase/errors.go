package usecase

import "errors"

var (
	// ErrInvalidInput marks requests rejected before any upstream call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable marks failures of the fantasy data feed that
	// make a comparison impossible.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
