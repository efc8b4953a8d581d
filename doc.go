/*
Package chidi attaches di-kit container scopes to HTTP requests.

The middleware returned by [NewRequestScopeMiddleware] creates a child scope
of the parent container for each request, stores it on the request context,
and closes it when the request is done. Handlers resolve services from the
request scope with [Resolve], [MustResolve], or [Invoke], or are adapted from
plain functions with [HandlerFunc] and [InvokeHandler].

Example:

	c, err := di.NewContainer(
		di.WithService(NewUserStore),
		di.WithService(NewRequestTracer, di.Scoped),
	)
	if err != nil {
		log.Fatal(err)
	}

	scopeMiddleware, err := chidi.NewRequestScopeMiddleware(c)
	if err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(scopeMiddleware)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		tracer := chidi.MustResolve[*RequestTracer](r.Context())
		// ...
	})

The scope is only valid while the request is being handled. Background work
that outlives the request must not resolve services from the request scope;
once the scope is closed those calls fail with the container's closed error.
*/
package chidi
