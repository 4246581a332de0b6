package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrNoActiveCareer        = errors.New("no active career")
	ErrMatchNotActive        = errors.New("match not active")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
