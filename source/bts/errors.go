package bts

import "errors"

// ErrInvalidDump is returned when a vocabulary member is not a JSON array.
var ErrInvalidDump = errors.New("invalid dump")
