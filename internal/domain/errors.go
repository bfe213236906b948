package domain

import "errors"

var (
	// ErrInvalidIdentity is returned when Begin is given an empty or
	// malformed email address. It is the only error meant for end users.
	ErrInvalidIdentity = errors.New("identity must be a valid email address")
	// ErrSessionNotFound is returned when an operation targets a session
	// that was never created.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrIndexOutOfRange indicates navigation to a question index outside
	// [0, QuestionCount). It signals a caller bug; session state is untouched.
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrSessionActive is returned when Begin is called on a session that
	// already left the start phase. Reset first.
	ErrSessionActive = errors.New("quiz session already active")
	// ErrNoResults is returned when results are requested before submission.
	ErrNoResults = errors.New("quiz has not been submitted")
)
