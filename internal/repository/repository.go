package repository

import "errors"

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("record not found")
