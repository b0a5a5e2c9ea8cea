package usecase

import "errors"

// ErrInvalidCommand marks commands rejected by validation before any
// delivery is attempted. Callers match it with errors.Is.
var ErrInvalidCommand = errors.New("validation failed")
