package services

import "errors"

// Battle errors. Every one of these leaves the session's persisted state
// exactly as it was before the failing call, so retrying the identical
// operation is always safe. The core never retries on its own.
var (
	ErrInvalidRole            = errors.New("unknown role")
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionNotActive       = errors.New("session is not active")
	ErrInvalidTurn            = errors.New("unknown or already answered turn")
	ErrEmptyAnswer            = errors.New("answer must not be empty")
	ErrQuestionSource         = errors.New("question source unavailable")
	ErrGradingService         = errors.New("grading service failed")
	ErrConcurrentModification = errors.New("session was modified concurrently")
)
