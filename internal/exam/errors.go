package exam

import "errors"

// Sentinel errors for caller contract violations. These never surface to
// the end user when the presentation layer enforces its own input
// constraints before calling the engine.
var (
	// ErrMissingParam is returned by Start when a required session
	// parameter is empty.
	ErrMissingParam = errors.New("missing session parameter")

	// ErrSessionOver is returned by mutating calls after submission.
	ErrSessionOver = errors.New("session already submitted")

	// ErrInvalidOption is returned when an answer's option index is out
	// of range for its question.
	ErrInvalidOption = errors.New("option index out of range")

	// ErrUnknownQuestion is returned when the question ID is not part of
	// the session's question set.
	ErrUnknownQuestion = errors.New("question not in session")
)
