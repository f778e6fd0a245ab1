package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrConfig     = errors.New("classifier not configured")
	ErrClassifier = errors.New("classification failed")
	ErrNotFound   = errors.New("not found")
)
