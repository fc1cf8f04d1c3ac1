package graph

import "errors"

// ErrUnmappedPredicate is returned when a relation type has no inverse.
var ErrUnmappedPredicate = errors.New("relation type has no inverse")
