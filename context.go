package chidi

import (
	"context"
	"reflect"

	"github.com/StevanFreeborn/chidi/internal/errors"
	"github.com/sectrean/di-kit"
)

type scopeContextKey struct{}

// WithScope returns a new [context.Context] that carries the provided
// [di.Scope].
//
// This is called by the request scope middleware. It only needs to be called
// directly when wiring a scope outside of the middleware, for example in
// tests.
func WithScope(ctx context.Context, s di.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// ScopeFromContext returns the [di.Scope] stored on the [context.Context],
// if present.
func ScopeFromContext(ctx context.Context) di.Scope {
	if s, ok := ctx.Value(scopeContextKey{}).(di.Scope); ok {
		return s
	}
	return nil
}

// scopeFromContext reads the scope slot and reports how it was misconfigured
// when the scope is not usable.
func scopeFromContext(ctx context.Context) (di.Scope, error) {
	val := ctx.Value(scopeContextKey{})
	if val == nil {
		return nil, ErrScopeNotFound
	}

	s, ok := val.(di.Scope)
	if !ok {
		return nil, ErrInvalidScope
	}

	return s, nil
}

// Resolve a service of type Service from the [di.Scope] stored on the
// [context.Context].
//
// If no scope is stored on the context, or the stored value is not a
// [di.Scope], a configuration error is returned which matches
// [ErrScopeNotFound] or [ErrInvalidScope]. Errors from the container itself,
// such as resolving an unregistered type, are returned as-is.
func Resolve[Service any](ctx context.Context, opts ...di.ResolveOption) (Service, error) {
	t := reflect.TypeFor[Service]()
	var val Service

	s, err := scopeFromContext(ctx)
	if err != nil {
		return val, errors.Wrapf(err, "resolve %s from context", t)
	}

	anyVal, err := s.Resolve(ctx, t, opts...)
	if anyVal != nil {
		val = anyVal.(Service)
	}

	return val, err
}

// MustResolve resolves a service of type Service from the [di.Scope] stored
// on the [context.Context].
//
// If the service cannot be resolved, this function panics.
func MustResolve[Service any](ctx context.Context, opts ...di.ResolveOption) Service {
	val, err := Resolve[Service](ctx, opts...)
	if err != nil {
		panic(err)
	}
	return val
}

// Invoke calls fn with parameters resolved from the [di.Scope] stored on the
// [context.Context]. See [di.Invoke] for the supported function signatures.
func Invoke(ctx context.Context, fn any, opts ...di.InvokeOption) error {
	s, err := scopeFromContext(ctx)
	if err != nil {
		return errors.Wrapf(err, "invoke %T", fn)
	}

	return di.Invoke(ctx, s, fn, opts...)
}
