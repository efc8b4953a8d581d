package chidi

import (
	"log/slog"
	"net/http"
)

// HandlerFunc adapts a function taking a resolved service into an
// [http.HandlerFunc]. The service is resolved from the request scope before
// fn is called.
//
// If the service cannot be resolved, the error handler is called instead of
// fn. The default error handler logs the error to [slog.Default] and writes a
// 500 Internal Server Error response; use [WithResolveErrorHandler] to
// replace it.
func HandlerFunc[Service any](fn func(w http.ResponseWriter, r *http.Request, svc Service), opts ...HandlerOption) http.HandlerFunc {
	cfg := newHandlerConfig(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		svc, err := Resolve[Service](r.Context())
		if err != nil {
			cfg.errHandler(w, r, err)
			return
		}

		fn(w, r, svc)
	}
}

// InvokeHandler adapts a function into an [http.HandlerFunc] by resolving all
// of its parameters from the request scope, like [Invoke]. The function may
// accept a [context.Context] and the [*http.Request] registered with the
// scope, and may return an error.
//
// Functions that need the [http.ResponseWriter] should use [HandlerFunc]
// instead; the response writer is not registered with the scope.
//
// A resolution error or an error returned by fn is passed to the error
// handler.
func InvokeHandler(fn any, opts ...HandlerOption) http.HandlerFunc {
	cfg := newHandlerConfig(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		err := Invoke(r.Context(), fn)
		if err != nil {
			cfg.errHandler(w, r, err)
		}
	}
}

// ResolveErrorHandler writes an error response when a handler adapter fails
// to resolve its services, or when the adapted function returns an error.
type ResolveErrorHandler = func(w http.ResponseWriter, r *http.Request, err error)

func defaultResolveErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error handling request", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// HandlerOption configures [HandlerFunc] and [InvokeHandler].
type HandlerOption interface {
	applyHandler(*handlerConfig)
}

type handlerOption func(*handlerConfig)

func (o handlerOption) applyHandler(cfg *handlerConfig) {
	o(cfg)
}

// WithResolveErrorHandler sets the error handler for [HandlerFunc] and
// [InvokeHandler]. A nil handler restores the default.
func WithResolveErrorHandler(h ResolveErrorHandler) HandlerOption {
	return handlerOption(func(cfg *handlerConfig) {
		if h == nil {
			h = defaultResolveErrorHandler
		}
		cfg.errHandler = h
	})
}

type handlerConfig struct {
	errHandler ResolveErrorHandler
}

func newHandlerConfig(opts []HandlerOption) *handlerConfig {
	cfg := &handlerConfig{
		errHandler: defaultResolveErrorHandler,
	}
	for _, opt := range opts {
		opt.applyHandler(cfg)
	}

	return cfg
}
