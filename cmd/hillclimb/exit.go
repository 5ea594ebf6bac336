package main

import "errors"

// Exit codes reported by the hillclimb command.
const (
	exitFailure = 1 // the search or the input failed
	exitUsage   = 2 // flags, environment or profile were unusable
)

// ExitError carries the process exit code for an error returned by the command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageError marks err as a usage failure.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: exitUsage, Message: err.Error(), Err: err}
}

// exitStatus maps an error returned by the command to a message and exit code.
func exitStatus(err error) (string, int) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Message, exitErr.Code
	}
	return err.Error(), exitFailure
}
