package model

import "errors"

// ErrValidation is returned for malformed or out of range event fields.
var ErrValidation = errors.New("validation error")
