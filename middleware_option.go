package chidi

import (
	"github.com/StevanFreeborn/chidi/internal/errors"
	"github.com/sectrean/di-kit"
)

// ScopeMiddlewareOption configures the middleware returned by
// [NewRequestScopeMiddleware].
type ScopeMiddlewareOption interface {
	applyScopeMiddleware(*scopeMiddleware) error
}

type scopeMiddlewareOption func(*scopeMiddleware) error

func (o scopeMiddlewareOption) applyScopeMiddleware(m *scopeMiddleware) error {
	return o(m)
}

// WithScopeOptions sets [di.ContainerOption]s to use when creating each
// request scope. Use this to register request-specific services.
func WithScopeOptions(opts ...di.ContainerOption) ScopeMiddlewareOption {
	return scopeMiddlewareOption(func(m *scopeMiddleware) error {
		m.scopeOpts = append(m.scopeOpts, opts...)
		return nil
	})
}

// WithNewScopeErrorHandler sets the handler called when creating a new scope
// fails.
func WithNewScopeErrorHandler(h NewScopeErrorHandler) ScopeMiddlewareOption {
	return scopeMiddlewareOption(func(m *scopeMiddleware) error {
		if h == nil {
			return errors.New("WithNewScopeErrorHandler: h is nil")
		}

		m.newScopeHandler = h
		return nil
	})
}

// WithScopeCloseErrorHandler sets the handler called when closing the scope
// fails after the request has completed.
func WithScopeCloseErrorHandler(h ScopeCloseErrorHandler) ScopeMiddlewareOption {
	return scopeMiddlewareOption(func(m *scopeMiddleware) error {
		if h == nil {
			return errors.New("WithScopeCloseErrorHandler: h is nil")
		}

		m.closeHandler = h
		return nil
	})
}
