package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrLocationNotFound    = errors.New("location not found")
	ErrNoPlacesFound       = errors.New("no places found")
	ErrProviderUnavailable = errors.New("upstream provider unavailable")
	ErrMalformedLLMOutput  = errors.New("malformed model output")
)
