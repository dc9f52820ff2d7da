// Package service implements the resource semantics of the emulator on top
// of the document store.
//
// Handlers pass parsed resource IDs and raw request bodies in and get
// documents or sentinel errors from the models package back.
package service

import (
	"fmt"
)

// Error pairs a models sentinel with the message returned to the client.
type Error struct {
	// Err is the sentinel used to pick the status code and error code.
	Err error

	// Message is the human-readable message for the error envelope.
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf builds an *Error with a formatted message.
func errorf(sentinel error, format string, args ...any) error {
	return &Error{Err: sentinel, Message: fmt.Sprintf(format, args...)}
}
