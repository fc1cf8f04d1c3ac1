package main

import (
	"errors"

	"github.com/c360studio/lexmerge/source/bts"
	"github.com/c360studio/lexmerge/storage"
	"github.com/c360studio/lexmerge/tree"
	"github.com/c360studio/lexmerge/validate"
	"github.com/c360studio/lexmerge/workflow"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK       = 0
	exitFailure  = 1
	exitFindings = 2
	exitUsage    = 3
	exitLoad     = 4
	exitWrite    = 5
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

// exitCode maps err to a process exit code. An explicit code wins over the
// classification of wrapped sentinel errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}

	var verr *workflow.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrInvalidArchive),
		errors.Is(err, bts.ErrInvalidDump),
		errors.Is(err, tree.ErrLoad):
		return exitLoad
	case errors.Is(err, tree.ErrSave):
		return exitWrite
	case errors.Is(err, validate.ErrUnknownFormat),
		errors.Is(err, workflow.ErrPatchOrder),
		errors.Is(err, workflow.ErrUnknownStep),
		errors.As(err, &verr):
		return exitUsage
	}
	return exitFailure
}
