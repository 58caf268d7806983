package repository

import (
	"errors"
	"fmt"
)

// ErrMalformedData marks persisted data that exists but cannot be decoded.
var ErrMalformedData = errors.New("malformed persisted data")

// MalformedDataError reports which collection failed to decode and where.
type MalformedDataError struct {
	Collection string
	Path       string
	Err        error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("%s: cannot decode %s: %v", e.Collection, e.Path, e.Err)
}

// Unwrap exposes the decoder error.
func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformedData.
func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}
