package datastore

import (
	"fmt"
)

// Error represents a general error in the datastore package.
type Error struct {
	Message string
	Path    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s '%s': %v", e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s '%s'", e.Message, e.Path)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WrapPathError wraps an existing error with a message and the file it concerns.
func WrapPathError(err error, message, path string) error {
	return &Error{Message: message, Path: path, Err: err}
}
