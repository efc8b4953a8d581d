package chidi

import (
	"log/slog"
	"net/http"

	"github.com/StevanFreeborn/chidi/internal/errors"
	"github.com/go-chi/chi/v5"
	"github.com/sectrean/di-kit"
)

// NewRequestScopeMiddleware returns middleware that creates a new child scope
// of the parent container for each request. The scope is closed after the
// request has been processed, on every exit path, including a panicking
// downstream handler.
//
// The current [*http.Request] is registered with each scope so it can be used
// as a dependency for scoped services. When the middleware is mounted on a
// chi router, the [*chi.Context] route context is registered as well.
//
// The scope is stored on the request context and can be accessed with
// [ScopeFromContext], [Resolve], [MustResolve], or [Invoke].
//
// Available options:
//   - [WithScopeOptions] sets [di.ContainerOption]s to use when creating each
//     request scope.
//   - [WithNewScopeErrorHandler] sets the handler called when creating a
//     scope fails.
//   - [WithScopeCloseErrorHandler] sets the handler called when closing a
//     scope fails.
func NewRequestScopeMiddleware(parent *di.Container, opts ...ScopeMiddlewareOption) (func(http.Handler) http.Handler, error) {
	if parent == nil {
		return nil, errors.New("chidi.NewRequestScopeMiddleware: parent is nil")
	}

	mw := &scopeMiddleware{
		parent:          parent,
		newScopeHandler: defaultNewScopeErrorHandler,
		closeHandler:    defaultScopeCloseErrorHandler,
	}

	for _, opt := range opts {
		err := opt.applyScopeMiddleware(mw)
		if err != nil {
			return nil, errors.Wrap(err, "chidi.NewRequestScopeMiddleware")
		}
	}

	return func(next http.Handler) http.Handler {
		return &scopeHandler{mw: mw, next: next}
	}, nil
}

// NewScopeErrorHandler writes an error response to the client when creating
// the request scope fails.
//
// The default handler logs the error to [slog.Default] and writes a
// 500 Internal Server Error response.
type NewScopeErrorHandler = func(w http.ResponseWriter, r *http.Request, err error)

func defaultNewScopeErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error creating request scope", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ScopeCloseErrorHandler handles errors from closing the request scope after
// the request has completed. The response has usually been written by the
// time it is called.
//
// The default handler logs the error to [slog.Default].
type ScopeCloseErrorHandler = func(r *http.Request, err error)

func defaultScopeCloseErrorHandler(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error closing request scope", "error", err)
}

type scopeMiddleware struct {
	parent          *di.Container
	scopeOpts       []di.ContainerOption
	newScopeHandler NewScopeErrorHandler
	closeHandler    ScopeCloseErrorHandler
}

// scopeHandler is created per wrapped handler so the same middleware can wrap
// multiple handlers.
type scopeHandler struct {
	mw   *scopeMiddleware
	next http.Handler
}

func (h *scopeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts := make([]di.ContainerOption, 0, len(h.mw.scopeOpts)+2)
	opts = append(opts, h.mw.scopeOpts...)
	opts = append(opts, di.WithService(r))

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		opts = append(opts, di.WithService(rctx))
	}

	scope, err := h.mw.parent.NewScope(opts...)
	if err != nil {
		if h.mw.newScopeHandler != nil {
			h.mw.newScopeHandler(w, r, err)
		}
		return
	}

	ctx := WithScope(r.Context(), scope)

	// Close the scope on every exit path. If the handler panics, the panic
	// continues unwinding after the scope is closed; a close error is only
	// reported to the close handler, never in place of the panic.
	defer func() {
		closeErr := scope.Close(ctx)
		if closeErr != nil && h.mw.closeHandler != nil {
			h.mw.closeHandler(r, closeErr)
		}
	}()

	h.next.ServeHTTP(w, r.WithContext(ctx))
}
