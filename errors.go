package chidi

import (
	"errors"
)

var (
	// ErrScopeNotFound is returned when no scope has been stored on the
	// request context. This means the request scope middleware is not
	// installed upstream of the caller.
	ErrScopeNotFound = errors.New("scope not found on context")

	// ErrInvalidScope is returned when the context slot holds a value that is
	// not a [di.Scope].
	ErrInvalidScope = errors.New("value on context is not a di.Scope")
)
