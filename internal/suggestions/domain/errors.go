package domain

import "errors"

var (
	// ErrNoCredential means the AI API key is missing. It is raised before
	// any network call is attempted.
	ErrNoCredential = errors.New("ai credential is not configured")

	// ErrEmptyResult means the model response contained no parseable
	// suggestions. An empty list is a failure, not an empty success.
	ErrEmptyResult = errors.New("model response contained no suggestions")

	// ErrNoChange means an apply produced output that was empty or identical
	// to the input source, so nothing was written back.
	ErrNoChange = errors.New("model returned no usable change")

	// ErrInFlight means a generate or apply is already running for the
	// document.
	ErrInFlight = errors.New("request already in flight for this document")
)
