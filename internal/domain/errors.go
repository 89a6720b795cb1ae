package domain

import "errors"

var (
	// ErrValidation signals a malformed or contradictory request.
	ErrValidation = errors.New("validation failed")
	// ErrCandidateNotFound signals a missing candidate document.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrProfileNotFound signals a missing search profile.
	ErrProfileNotFound = errors.New("search profile not found")
	// ErrIndexUnavailable signals a document index transport failure.
	ErrIndexUnavailable = errors.New("document index unavailable")
	// ErrUpstreamUnavailable signals a failed call to an external collaborator.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
